package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

func (c *Client) ListFamily(ctx context.Context) ([]model.FamilyMember, error) {
	var out struct {
		Members []model.FamilyMember `json:"members"`
		Total   int                  `json:"total"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/family/members", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

func (c *Client) GetFamilyMember(ctx context.Context, id string) (*model.FamilyMember, error) {
	var out struct {
		Member model.FamilyMember `json:"member"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/family/members/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Member, nil
}

func (c *Client) AddFamilyMember(ctx context.Context, in model.FamilyMemberInput) (*StatusResult, error) {
	var out StatusResult
	if err := c.doJSON(ctx, http.MethodPost, "/family/members", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFamilyMember(ctx context.Context, id string, in model.FamilyMemberInput) error {
	return c.doJSON(ctx, http.MethodPut, "/family/members/"+url.PathEscape(id), nil, in, nil)
}

// RemoveFamilyMember unlinks a member from the caller's account; the
// member's own account is kept.
func (c *Client) RemoveFamilyMember(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/family/members/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) AdminListFamilies(ctx context.Context) ([]model.Family, error) {
	var out struct {
		Families []model.Family `json:"families"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/family/admin/all", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Families, nil
}

func (c *Client) AdminAddFamilyMember(ctx context.Context, userID string, in model.FamilyMemberInput) (*StatusResult, error) {
	var out StatusResult
	if err := c.doJSON(ctx, http.MethodPost, "/family/admin/members/"+url.PathEscape(userID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminRemoveFamilyMember unlinks a member; with deleteAccount the member's
// account is deleted as well.
func (c *Client) AdminRemoveFamilyMember(ctx context.Context, id string, deleteAccount bool) error {
	q := url.Values{"delete_account": {strconv.FormatBool(deleteAccount)}}
	return c.doJSON(ctx, http.MethodDelete, "/family/admin/members/"+url.PathEscape(id), q, nil, nil)
}
