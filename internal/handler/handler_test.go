package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/paginate"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/web"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"", "/"},
		{"/news?page=2", "/news?page=2"},
		{"//evil.example", "/"},
		{"/\\evil.example", "/"},
		{"https://evil.example", "/"},
		{"news", "/"},
		{"/", "/"},
	}
	for _, tt := range tests {
		if got := safeNext(tt.next); got != tt.want {
			t.Errorf("safeNext(%q) = %q, want %q", tt.next, got, tt.want)
		}
	}
}

func TestLanding(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{model.RoleUser, "/dashboard"},
		{model.RoleModerator, "/dashboard"},
		{model.RoleAdmin, "/admin"},
		{model.RoleSuperAdmin, "/admin"},
	}
	for _, tt := range tests {
		if got := landing(tt.role); got != tt.want {
			t.Errorf("landing(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"pdf", "members_2026-05-01.pdf"},
		{"excel", "members_2026-05-01.xlsx"},
		{"xml", "members_2026-05-01.xml"},
	}
	for _, tt := range tests {
		if got := ExportFilename(tt.format, "2026-05-01"); got != tt.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestValidInvoiceFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"invoice.pdf", true},
		{"scan.JPG", true},
		{"scan.jpeg", true},
		{"photo.png", true},
		{"invoice.exe", false},
		{"invoice", false},
		{"invoice.pdf.zip", false},
	}
	for _, tt := range tests {
		if got := ValidInvoiceFile(tt.name); got != tt.want {
			t.Errorf("ValidInvoiceFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPageURLKeepsFilters(t *testing.T) {
	q := url.Values{"q": {"ana"}, "page": {"1"}}
	got := pageURL(q, 3)
	if got != "?page=3&q=ana" {
		t.Errorf("pageURL = %q", got)
	}
	if q.Get("page") != "1" {
		t.Error("pageURL modified its input")
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(250, ""); got != "250.00 SEK" {
		t.Errorf("formatMoney = %q", got)
	}
	if got := formatMoney(12.5, "EUR"); got != "12.50 EUR" {
		t.Errorf("formatMoney = %q", got)
	}
}

func TestDict(t *testing.T) {
	m, err := dict("Lang", "en", "Data", 3)
	if err != nil {
		t.Fatalf("dict: %v", err)
	}
	if m["Lang"] != "en" || m["Data"] != 3 {
		t.Errorf("dict = %v", m)
	}
	if _, err := dict("odd"); err == nil {
		t.Error("expected error for odd arguments")
	}
	if _, err := dict(1, "x"); err == nil {
		t.Error("expected error for non-string key")
	}
}

func TestShowing(t *testing.T) {
	p := paginate.New(25, 3, 10)
	if got := showing("en", p); got != "Showing 21 to 25 of 25" {
		t.Errorf("showing = %q", got)
	}
}

func TestViewColors(t *testing.T) {
	v := &View{Branding: model.Branding{Colors: model.BrandingColors{Primary: "#112233", Secondary: "red;}body{"}}}
	if got := v.PrimaryColor(); got != "#112233" {
		t.Errorf("PrimaryColor = %q", got)
	}
	if got := v.SecondaryColor(); string(got) != model.DefaultBranding().Colors.Secondary {
		t.Errorf("SecondaryColor = %q, want default", got)
	}
}

type fakeBranding struct {
	calls int
	err   error
	value model.Branding
}

func (f *fakeBranding) Branding(ctx context.Context) (model.Branding, error) {
	f.calls++
	return f.value, f.err
}

func TestBrandingCache(t *testing.T) {
	src := &fakeBranding{value: model.Branding{Logo: "/logo.png"}}
	c := NewBrandingCache(src, time.Minute, testLogger())
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if got := c.Get(context.Background()); got.Logo != "/logo.png" {
		t.Fatalf("Logo = %q", got.Logo)
	}
	c.Get(context.Background())
	if src.calls != 1 {
		t.Errorf("calls = %d, want 1 within ttl", src.calls)
	}

	now = now.Add(2 * time.Minute)
	src.err = errors.New("backend down")
	if got := c.Get(context.Background()); got.Logo != "/logo.png" {
		t.Errorf("failed refresh should keep last value, got %q", got.Logo)
	}
	if src.calls != 2 {
		t.Errorf("calls = %d, want 2 after expiry", src.calls)
	}
}

func TestRendererParsesEmbeddedTemplates(t *testing.T) {
	rd, err := NewRenderer(web.FS, nil, testLogger())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	for _, page := range []string{"home", "login", "dashboard", "admin_members", "admin_invoices", "error"} {
		if _, ok := rd.pages[page]; !ok {
			t.Errorf("page %q not parsed", page)
		}
	}

	rec := httptest.NewRecorder()
	rd.Page(rec, httptest.NewRequest(http.MethodGet, "/login", nil), http.StatusOK, "login", "login.title", loginData{}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	rd.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "nope", "", nil, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("unknown page status = %d, want 500", rec.Code)
	}
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func TestReady(t *testing.T) {
	h := NewHealthHandler("1.0.0", map[string]Pinger{
		"sessions": fakePinger{},
		"backend":  fakePinger{err: errors.New("connection refused")},
	}, testLogger())

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "DOWN" {
		t.Errorf("status = %q, want DOWN", resp.Status)
	}
	if resp.Checks["backend"].Status != "DOWN" || resp.Checks["sessions"].Status != "UP" {
		t.Errorf("checks = %+v", resp.Checks)
	}
}
