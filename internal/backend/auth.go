package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// Login exchanges credentials for a bearer token. Wrong credentials come
// back as a 401 *APIError carrying the backend's message.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	in := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, errNoToken
	}
	return &out, nil
}

// StatusResult is the {success, message} body most mutations return.
type StatusResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) Register(ctx context.Context, reg model.Registration) (*StatusResult, error) {
	var out StatusResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyEmail(ctx context.Context, token string) (*StatusResult, error) {
	var out StatusResult
	q := url.Values{"token": {token}}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/verify-email", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword asks the backend to email a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	q := url.Values{"email": {email}}
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", q, nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	q := url.Values{"token": {token}, "new_password": {newPassword}}
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", q, nil, nil)
}
