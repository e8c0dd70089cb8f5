// Package flash carries one-shot notices (toasts) to the next rendered page,
// in a cookie across redirects or in an HX-Trigger header for HTMX swaps.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
)

const (
	CookieName = "assoc_notice"

	// TriggerEvent is the client event name carried in HX-Trigger.
	TriggerEvent = "notice"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice is either a catalog key or literal text (a server message). Key
// wins when both are set.
type Notice struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(key string) Notice { return Notice{Kind: KindSuccess, Key: key} }
func Info(key string) Notice    { return Notice{Kind: KindInfo, Key: key} }
func Error(key string) Notice   { return Notice{Kind: KindError, Key: key} }

// ErrorText is an error notice with literal text.
func ErrorText(msg string) Notice { return Notice{Kind: KindError, Message: msg} }

// Text renders the notice in lang.
func (n Notice) Text(lang string) string {
	if n.Key != "" {
		return i18n.T(lang, n.Key)
	}
	return n.Message
}

// Write stores n in the notice cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, n Notice) {
	n, ok := normalize(n)
	if !ok {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending notice, if any, and expires the cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return decode(c.Value)
}

// Trigger sets the HX-Trigger header so htmx raises a "notice" event with
// the rendered text. Existing triggers are replaced.
func Trigger(w http.ResponseWriter, n Notice, lang string) {
	n, ok := normalize(n)
	if !ok {
		return
	}
	payload, err := json.Marshal(map[string]any{
		TriggerEvent: map[string]string{
			"id":      n.ID,
			"kind":    string(n.Kind),
			"message": n.Text(lang),
		},
	})
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(payload))
}

// Send delivers n the way the request expects: as an HX-Trigger for HTMX
// requests that are swapped in place, otherwise as a cookie.
func Send(w http.ResponseWriter, r *http.Request, n Notice, lang string) {
	if r.Header.Get("HX-Request") == "true" {
		Trigger(w, n, lang)
		return
	}
	Write(w, r, n)
}

func decode(raw string) (Notice, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Notice{}, false
	}
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal(b, &n); err != nil {
		return Notice{}, false
	}
	return normalize(n)
}

func normalize(n Notice) (Notice, bool) {
	n.Key = strings.TrimSpace(n.Key)
	n.Message = strings.TrimSpace(n.Message)
	if n.Key == "" && n.Message == "" {
		return Notice{}, false
	}
	n.Kind = Kind(strings.ToLower(strings.TrimSpace(string(n.Kind))))
	switch n.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
	default:
		return Notice{}, false
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return n, true
}
