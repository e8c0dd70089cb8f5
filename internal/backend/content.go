package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// NewsPage is one page of news as returned by the backend.
type NewsPage struct {
	News  []model.NewsItem `json:"news"`
	Total int              `json:"total"`
}

func (c *Client) ListNews(ctx context.Context, limit, skip int) (*NewsPage, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}, "skip": {strconv.Itoa(skip)}}
	var out NewsPage
	if err := c.doJSON(ctx, http.MethodGet, "/news/", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListGallery(ctx context.Context) ([]model.Album, error) {
	var out struct {
		Items []model.Album `json:"items"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/gallery/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) ListStories(ctx context.Context) ([]model.Story, error) {
	var out struct {
		Stories []model.Story `json:"stories"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/stories/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Stories, nil
}

func (c *Client) Settings(ctx context.Context) (*model.Settings, error) {
	var out model.Settings
	if err := c.doJSON(ctx, http.MethodGet, "/settings/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Branding returns the public branding, or the defaults if the backend has
// none configured.
func (c *Client) Branding(ctx context.Context) (model.Branding, error) {
	b := model.DefaultBranding()
	if err := c.doJSON(ctx, http.MethodGet, "/public/branding", nil, nil, &b); err != nil {
		return model.DefaultBranding(), err
	}
	return b, nil
}

func (c *Client) SubmitContact(ctx context.Context, msg model.ContactMessage) error {
	return c.doJSON(ctx, http.MethodPost, "/contact/", nil, msg, nil)
}
