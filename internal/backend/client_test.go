package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return New(server.URL, WithHTTPClient(server.Client()), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"u1","username":"ana","fullName":"Ana","role":"user"}`))
	})

	ctx := WithToken(context.Background(), "tok123")
	u, err := client.Me(ctx)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
	if gotPath != "/api/users/me" {
		t.Errorf("path = %q, want /api/users/me", gotPath)
	}
	if u.FullName != "Ana" {
		t.Errorf("FullName = %q, want Ana", u.FullName)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"stories":[]}`))
	})

	if _, err := client.ListStories(context.Background()); err != nil {
		t.Fatalf("list stories: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	})

	_, err := client.ListInvoices(WithToken(context.Background(), "expired"))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if got := Message(err, "fallback"); got != "Could not validate credentials" {
		t.Errorf("Message = %q", got)
	}
}

func TestValidationDetailList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"}]}`))
	})

	err := client.SubmitContact(context.Background(), model.ContactMessage{Name: "x"})
	if StatusCode(err) != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", StatusCode(err))
	}
	if got := Message(err, "fallback"); got != "value is not a valid email address" {
		t.Errorf("Message = %q", got)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("422 must not match ErrUnauthorized")
	}
}

func TestServerErrorUsesFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Traceback ..."}`))
	})

	_, err := client.ListGallery(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := Message(err, "Failed to load gallery"); got != "Failed to load gallery" {
		t.Errorf("Message = %q, want fallback", got)
	}
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := New(server.URL,
		WithLogger(logger),
		WithBreaker(NewBreaker("test", 2, logger, nil)),
	)

	for i := 0; i < 2; i++ {
		if _, err := client.ListStories(context.Background()); err == nil {
			t.Fatal("expected error from 502")
		}
	}
	_, err := client.ListStories(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if calls != 2 {
		t.Errorf("backend calls = %d, want 2 (open breaker must short-circuit)", calls)
	}
}

func TestClientErrorsDoNotTripBreaker(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Family member not found"}`))
	})
	client.breaker = NewBreaker("test", 1, client.logger, nil)

	for i := 0; i < 3; i++ {
		_, err := client.GetFamilyMember(context.Background(), "abc")
		if errors.Is(err, ErrUnavailable) {
			t.Fatal("404 responses must not open the breaker")
		}
	}
}

func TestLogin(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"success":true,"token":"jwt","user":{"id":"u1","role":"admin","fullName":"Ana"}}`))
	})

	res, err := client.Login(context.Background(), "ana", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if body["username"] != "ana" || body["password"] != "secret" {
		t.Errorf("request body = %v", body)
	}
	if res.Token != "jwt" || res.User.Role != "admin" {
		t.Errorf("result = %+v", res)
	}
}

func TestLoginWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	})
	if _, err := client.Login(context.Background(), "a", "b"); err == nil {
		t.Error("expected error when token is missing")
	}
}

func TestQueryParameters(t *testing.T) {
	var got string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	tests := []struct {
		name string
		call func()
		want string
	}{
		{"news", func() { client.ListNews(ctx, 6, 12) }, "/api/news/?limit=6&skip=12"},
		{"forgot", func() { client.ForgotPassword(ctx, "a@b.se") }, "/api/auth/forgot-password?email=a%40b.se"},
		{"reset", func() { client.ResetPassword(ctx, "t1", "newpass") }, "/api/auth/reset-password?new_password=newpass&token=t1"},
		{"verify", func() { client.VerifyEmail(ctx, "vt") }, "/api/auth/verify-email?token=vt"},
		{"admin remove", func() { client.AdminRemoveFamilyMember(ctx, "m1", true) }, "/api/family/admin/members/m1?delete_account=true"},
		{"filtered", func() {
			client.FilteredMembers(ctx, model.MemberFilter{InvoiceID: "i1", PaymentStatus: "unpaid", TrainingGroup: "all"})
		}, "/api/admin/members/filtered?invoice_id=i1&payment_status=unpaid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			if got != tt.want {
				t.Errorf("request = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarkInvoicePaid(t *testing.T) {
	var method, path string
	var body map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"success":true}`))
	})

	if err := client.MarkInvoicePaid(context.Background(), "inv1", "2024-06-01"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if method != http.MethodPut || path != "/api/invoices/inv1/mark-paid" {
		t.Errorf("request = %s %s", method, path)
	}
	if body["paymentDate"] != "2024-06-01" {
		t.Errorf("paymentDate = %q", body["paymentDate"])
	}
}

func TestUploadInvoiceFile(t *testing.T) {
	var gotName, gotContent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		gotName, gotContent = hdr.Filename, string(b)
		w.Write([]byte(`{"success":true}`))
	})

	err := client.UploadInvoiceFile(context.Background(), "inv1", "receipt.pdf", strings.NewReader("%PDF-1.4"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotName != "receipt.pdf" || gotContent != "%PDF-1.4" {
		t.Errorf("uploaded %q = %q", gotName, gotContent)
	}
}

func TestDownloadInvoiceFile(t *testing.T) {
	var gotAuth, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, gotPath = r.Header.Get("Authorization"), r.URL.Path
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="invoice_inv1.pdf"`)
		w.Write([]byte("%PDF-1.4"))
	})

	dl, err := client.DownloadInvoiceFile(WithToken(context.Background(), "tok123"), "inv1")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer dl.Body.Close()
	if gotPath != "/api/invoices/inv1/download" || gotAuth != "Bearer tok123" {
		t.Errorf("request = %s with %q", gotPath, gotAuth)
	}
	if dl.ContentType != "application/pdf" || dl.Filename != "invoice_inv1.pdf" {
		t.Errorf("download = %q %q", dl.ContentType, dl.Filename)
	}
}

func TestExportMembers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/export/members/excel" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="members.xlsx"`)
		w.Write([]byte("xlsx-bytes"))
	})

	dl, err := client.ExportMembers(context.Background(), ExportExcel)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer dl.Body.Close()
	b, _ := io.ReadAll(dl.Body)
	if string(b) != "xlsx-bytes" {
		t.Errorf("body = %q", b)
	}
	if dl.Filename != "members.xlsx" {
		t.Errorf("Filename = %q", dl.Filename)
	}

	if _, err := client.ExportMembers(context.Background(), "docx"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestBrandingDefaultsOnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	b, err := client.Branding(context.Background())
	if err == nil {
		t.Error("expected error")
	}
	if b.Colors.Primary != "#C1272D" {
		t.Errorf("primary = %q, want default", b.Colors.Primary)
	}
}

func TestRouteLabel(t *testing.T) {
	tests := map[string]string{
		"/invoices/65a1b2c3d4e5f6a7b8c9d0e1/mark-paid":         "/invoices/{id}/mark-paid",
		"/admin/users/42/details":                              "/admin/users/{id}/details",
		"/family/members/550e8400-e29b-41d4-a716-446655440000": "/family/members/{id}",
		"/news/": "/news/",
	}
	for in, want := range tests {
		if got := routeLabel(in); got != want {
			t.Errorf("routeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
