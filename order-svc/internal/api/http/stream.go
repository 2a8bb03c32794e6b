package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"restaurant-pos/order-svc/internal/notify"
)

// The POS frontends are served from other origins, same as the REST API.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Handler) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.Hub == nil {
		http.Error(w, "real-time updates unavailable", http.StatusServiceUnavailable)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := notify.NewWSConn(ws, h.Heartbeat, h.logger)
	conn.Serve(h.Hub)
}

func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	if h.Hub == nil {
		http.Error(w, "real-time updates unavailable", http.StatusServiceUnavailable)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	conn := notify.NewSSEConn()
	h.Hub.Register(conn)
	defer func() {
		h.Hub.Unregister(conn)
		conn.Close()
	}()

	err := conn.Stream(r.Context(), w, flusher, h.Heartbeat)
	if err != nil && !errors.Is(err, notify.ErrClosed) {
		h.logger.Debug("event stream ended", zap.String("conn_id", conn.ID()), zap.Error(err))
	}
}
