package flash

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
)

func TestWriteReadAndClear(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	Write(rec, req, Success("contact.sent"))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %v, want one %s cookie", cookies, CookieName)
	}
	if !cookies[0].HttpOnly {
		t.Error("notice cookie should be HttpOnly")
	}

	next := httptest.NewRequest(http.MethodGet, "/contact", nil)
	next.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()
	n, ok := ReadAndClear(rec2, next)
	if !ok {
		t.Fatal("ReadAndClear found no notice")
	}
	if n.Kind != KindSuccess || n.Key != "contact.sent" || n.ID == "" {
		t.Errorf("notice = %+v", n)
	}
	if got := n.Text(i18n.English); got != "Thank you! Your message has been sent." {
		t.Errorf("Text(en) = %q", got)
	}

	cleared := rec2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("cookie not expired: %v", cleared)
	}
}

func TestReadAndClearRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%not-base64"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), req); ok {
		t.Error("garbage cookie decoded as notice")
	}

	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Error("missing cookie decoded as notice")
	}
}

func TestWriteIgnoresEmptyNotice(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: KindInfo})
	if len(rec.Result().Cookies()) != 0 {
		t.Error("empty notice should not set a cookie")
	}

	rec = httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: "loud", Message: "x"})
	if len(rec.Result().Cookies()) != 0 {
		t.Error("unknown kind should not set a cookie")
	}
}

func TestSendHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/admin/invoices/1", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	Send(rec, req, ErrorText("Invoice not found"), i18n.English)

	if len(rec.Result().Cookies()) != 0 {
		t.Error("HTMX notice should not use a cookie")
	}
	var payload map[string]map[string]string
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &payload); err != nil {
		t.Fatalf("decode HX-Trigger: %v", err)
	}
	got := payload[TriggerEvent]
	if got["kind"] != "error" || got["message"] != "Invoice not found" {
		t.Errorf("trigger = %v", got)
	}
}
