package notify

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait    = 10 * time.Second
	maxReadBytes = 1024
)

// WSConn adapts a gorilla websocket to the hub. Only the write pump writes
// to the socket.
type WSConn struct {
	outbox
	ws        *websocket.Conn
	heartbeat time.Duration
	logger    *zap.Logger
}

func NewWSConn(ws *websocket.Conn, heartbeat time.Duration, logger *zap.Logger) *WSConn {
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &WSConn{
		ws:        ws,
		heartbeat: heartbeat,
	}
	c.init(DefaultSendBuffer)
	c.logger = logger.With(zap.String("conn_id", c.id), zap.String("transport", "websocket"))
	return c
}

func (c *WSConn) Send(payload []byte) error { return c.offer(payload) }

func (c *WSConn) Close() error {
	c.shutdown()
	return nil
}

// Serve registers the connection and blocks until the client disconnects or
// the hub drops it.
func (c *WSConn) Serve(hub *Hub) {
	hub.Register(c)
	defer func() {
		hub.Unregister(c)
		c.Close()
	}()

	go c.writePump()
	c.readPump()
}

// readPump discards client messages; it exists to process control frames
// and notice disconnects.
func (c *WSConn) readPump() {
	pongWait := 2*c.heartbeat + writeWait

	c.ws.SetReadLimit(maxReadBytes)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read failed", zap.Error(err))
			}
			return
		}
	}
}

func (c *WSConn) writePump() {
	ticker := time.NewTicker(c.heartbeat)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case payload := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Debug("websocket write failed", zap.Error(err))
				c.Close()
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.Close()
				return
			}
		}
	}
}
