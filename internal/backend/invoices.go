package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

type invoiceList struct {
	Invoices []model.Invoice `json:"invoices"`
}

func (c *Client) MyInvoices(ctx context.Context) ([]model.Invoice, error) {
	var out invoiceList
	if err := c.doJSON(ctx, http.MethodGet, "/invoices/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Invoices, nil
}

func (c *Client) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	var out invoiceList
	if err := c.doJSON(ctx, http.MethodGet, "/invoices/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Invoices, nil
}

func (c *Client) CreateInvoice(ctx context.Context, in model.InvoiceInput) (*model.Invoice, error) {
	var out model.Invoice
	if err := c.doJSON(ctx, http.MethodPost, "/invoices/", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, in model.InvoiceInput) error {
	return c.doJSON(ctx, http.MethodPut, "/invoices/"+url.PathEscape(id), nil, in, nil)
}

// MarkInvoicePaid records paymentDate (YYYY-MM-DD) and flips the status.
func (c *Client) MarkInvoicePaid(ctx context.Context, id, paymentDate string) error {
	in := map[string]string{"paymentDate": paymentDate}
	return c.doJSON(ctx, http.MethodPut, "/invoices/"+url.PathEscape(id)+"/mark-paid", nil, in, nil)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/invoices/"+url.PathEscape(id), nil, nil, nil)
}

// UploadInvoiceFile attaches a file to an invoice as multipart field "file".
func (c *Client) UploadInvoiceFile(ctx context.Context, id, filename string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("copy upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	resp, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/invoices/" + url.PathEscape(id) + "/upload",
		body:        &buf,
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// DownloadInvoiceFile fetches the file attached to an invoice. The backend
// lets admins and the invoice's members download it.
func (c *Client) DownloadInvoiceFile(ctx context.Context, id string) (*Download, error) {
	return c.download(ctx, "/invoices/"+url.PathEscape(id)+"/download", nil)
}
