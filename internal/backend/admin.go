package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// Export formats accepted by the member export endpoint.
const (
	ExportPDF   = "pdf"
	ExportExcel = "excel"
	ExportXML   = "xml"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out struct {
		Users []model.User `json:"users"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) UserDetails(ctx context.Context, id string) (*model.UserDetails, error) {
	var out model.UserDetails
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(id)+"/details", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SuspendUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(id)+"/suspend", nil, nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) Statistics(ctx context.Context) (*model.Statistics, error) {
	var out model.Statistics
	if err := c.doJSON(ctx, http.MethodGet, "/admin/statistics", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportMembers streams the full member export in format (pdf, excel, xml).
func (c *Client) ExportMembers(ctx context.Context, format string) (*Download, error) {
	switch format {
	case ExportPDF, ExportExcel, ExportXML:
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	return c.download(ctx, "/admin/export/members/"+format, nil)
}

func filterQuery(f model.MemberFilter) url.Values {
	q := url.Values{}
	if f.InvoiceID != "" {
		q.Set("invoice_id", f.InvoiceID)
	}
	if f.PaymentStatus != "" && f.PaymentStatus != "all" {
		q.Set("payment_status", f.PaymentStatus)
	}
	if f.TrainingGroup != "" && f.TrainingGroup != "all" {
		q.Set("training_group", f.TrainingGroup)
	}
	return q
}

// FilteredMembers asks the backend for members matching f.
func (c *Client) FilteredMembers(ctx context.Context, f model.MemberFilter) ([]model.User, error) {
	var out struct {
		Members []model.User `json:"members"`
		Total   int          `json:"total"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/admin/members/filtered", filterQuery(f), nil, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

// ExportFilteredMembers streams the Excel export of members matching f.
func (c *Client) ExportFilteredMembers(ctx context.Context, f model.MemberFilter) (*Download, error) {
	q := filterQuery(f)
	q.Set("export_format", "excel")
	return c.download(ctx, "/admin/members/filtered", q)
}
