// Package handler serves the association's pages. Handlers fetch what they
// show from the REST backend on every request and render it with the
// embedded templates.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/auth"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/backend"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/flash"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/middleware"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/session"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/websocket"
)

// Deps are shared by all handlers.
type Deps struct {
	Backend       *backend.Client
	Sessions      session.Store
	Renderer      *Renderer
	Hub           *websocket.Hub
	Logger        *slog.Logger
	SessionTTL    time.Duration
	SecureCookies bool
}

type base struct {
	Deps
	now func() time.Time
}

func newBase(d Deps) base {
	return base{Deps: d, now: time.Now}
}

func lang(r *http.Request) string {
	return i18n.FromContext(r.Context())
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// expired ends the local session when err is a backend 401 and sends the
// browser to /login. It reports whether it wrote the response.
func (b *base) expired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	if token := session.TokenFromRequest(r); token != "" {
		if derr := b.Sessions.Delete(context.WithoutCancel(r.Context()), token); derr != nil {
			b.Logger.Error("delete expired session", "error", derr)
		}
	}
	session.ClearCookie(w)
	flash.Write(w, r, flash.Info("error.session_expired"))
	middleware.RedirectToLogin(w, r)
	return true
}

// failure turns a backend error into the notice shown to the user: the
// server's message when it sent one, otherwise the catalog fallback.
func (b *base) failure(r *http.Request, err error, fallbackKey string) flash.Notice {
	b.Logger.Warn("backend call failed", "path", r.URL.Path, "status", backend.StatusCode(err), "error", err)
	if msg := backend.Message(err, ""); msg != "" {
		return flash.ErrorText(msg)
	}
	if errors.Is(err, backend.ErrUnavailable) {
		return flash.Error("error.unavailable")
	}
	return flash.Error(fallbackKey)
}

// keep answers a failed HTMX mutation: the notice travels in HX-Trigger and
// the swap is cancelled so the page stays as it was.
func keep(w http.ResponseWriter, r *http.Request, n flash.Notice) {
	flash.Trigger(w, n, lang(r))
	w.Header().Set("HX-Reswap", "none")
	w.WriteHeader(http.StatusOK)
}

// done finishes a successful mutation: a notice plus a redirect, as
// HX-Redirect for HTMX requests.
func done(w http.ResponseWriter, r *http.Request, n flash.Notice, to string) {
	flash.Write(w, r, n)
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", to)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// notify broadcasts a change notice to open admin tabs.
func (b *base) notify(r *http.Request, entity, action, id string) {
	if b.Hub == nil {
		return
	}
	b.Hub.Broadcast(websocket.NewMessage(entity, action, id, auth.UserID(r.Context())))
}

func pageParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func today(now time.Time) string {
	return now.Format(time.DateOnly)
}
