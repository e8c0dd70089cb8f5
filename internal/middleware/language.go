package middleware

import (
	"net/http"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
)

const langCookieMaxAge = 365 * 24 * time.Hour

// Language resolves the UI language from ?lang=, the language cookie and
// Accept-Language, in that order. A valid ?lang= also updates the cookie.
func Language(def string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := r.URL.Query().Get("lang"); q != "" {
				if code, ok := i18n.Parse(q); ok {
					lang = code
					SetLanguageCookie(w, code)
				}
			}
			if lang == "" {
				if c, err := r.Cookie(i18n.CookieName); err == nil {
					if code, ok := i18n.Parse(c.Value); ok {
						lang = code
					}
				}
			}
			if lang == "" {
				lang = i18n.Match(r.Header.Get("Accept-Language"), def)
			}

			next.ServeHTTP(w, r.WithContext(i18n.WithLang(r.Context(), lang)))
		})
	}
}

// SetLanguageCookie remembers the chosen language for a year.
func SetLanguageCookie(w http.ResponseWriter, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
