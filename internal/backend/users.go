package backend

import (
	"context"
	"net/http"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateMe(ctx context.Context, upd model.UserUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/users/me", nil, upd, nil)
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	in := map[string]string{"currentPassword": current, "newPassword": next}
	return c.doJSON(ctx, http.MethodPost, "/users/change-password", nil, in, nil)
}

func (c *Client) CancelMembership(ctx context.Context, reason string) error {
	return c.doJSON(ctx, http.MethodPost, "/users/cancel-membership", nil, map[string]string{"reason": reason}, nil)
}
