package websocket

import (
	"net/http"
	"net/url"

	ws "github.com/coder/websocket"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/auth"
)

// Handler upgrades admin requests to WebSocket clients of hub. Origins are
// limited to the host of baseURL; an empty baseURL allows same-host only.
func Handler(hub *Hub, baseURL string) http.HandlerFunc {
	var origins []string
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		origins = []string{u.Host}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, &ws.AcceptOptions{OriginPatterns: origins})
		if err != nil {
			hub.logger.Warn("websocket accept", "error", err)
			return
		}
		defer conn.CloseNow()

		NewClient(hub, conn, auth.UserID(r.Context())).Run(r.Context())
	}
}
