package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/auth"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/backend"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/session"
)

// LoadSession attaches the AuthContext and backend token when the session
// cookie is valid, and passes anonymous requests through unchanged.
func LoadSession(store session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(r.Context(), token)
			if errors.Is(err, session.ErrUnreadable) {
				logger.Warn("dropping unreadable session", "error", err)
				if derr := store.Delete(context.WithoutCancel(r.Context()), token); derr != nil {
					logger.Error("delete unreadable session", "error", derr)
				}
				session.ClearCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				logger.Error("load session", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if sess == nil {
				session.ClearCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.WithAuth(r.Context(), auth.FromSession(sess))
			ctx = backend.WithToken(ctx, sess.Bearer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth sends requests without a loaded session to the login page.
// HTMX-aware: returns HX-Redirect header instead of 303 redirect for HTMX requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.FromContext(r.Context()); !ok {
			RedirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin checks that the authenticated user has an admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.IsAdmin(r.Context()) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectToLogin redirects to /login, via HX-Redirect for HTMX requests.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
