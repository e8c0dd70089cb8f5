package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		cookie     string
		accept     string
		want       string
		wantCookie bool
	}{
		{"default", "/", "", "", i18n.SerbianLatin, false},
		{"accept header", "/", "", "sv-SE,sv;q=0.9", i18n.Swedish, false},
		{"cookie beats header", "/", "en", "sv", i18n.English, false},
		{"query beats cookie", "/?lang=sr-cyrillic", "en", "", i18n.SerbianCyrillic, true},
		{"bad query ignored", "/?lang=xx-invalid-", "en", "", i18n.English, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := Language(i18n.Default)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = i18n.FromContext(r.Context())
			}))

			req := httptest.NewRequest("GET", tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got != tt.want {
				t.Errorf("lang = %q, want %q", got, tt.want)
			}
			if set := len(rec.Result().Cookies()) > 0; set != tt.wantCookie {
				t.Errorf("cookie set = %v, want %v", set, tt.wantCookie)
			}
		})
	}
}
