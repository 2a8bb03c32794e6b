package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SSEConn adapts a text/event-stream response to the hub.
type SSEConn struct {
	outbox
}

func NewSSEConn() *SSEConn {
	c := &SSEConn{}
	c.init(DefaultSendBuffer)
	return c
}

func (c *SSEConn) Send(payload []byte) error { return c.offer(payload) }

func (c *SSEConn) Close() error {
	c.shutdown()
	return nil
}

// Stream writes queued events to w until ctx ends, the hub drops the
// connection, or a write fails. A comment line is sent every heartbeat.
func (c *SSEConn) Stream(ctx context.Context, w io.Writer, flusher http.Flusher, heartbeat time.Duration) error {
	if heartbeat <= 0 {
		heartbeat = 15 * time.Second
	}

	if _, err := io.WriteString(w, "retry: 2000\n\n"); err != nil {
		return err
	}
	flusher.Flush()

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.done:
			return ErrClosed
		case payload := <-c.send:
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return err
			}
			flusher.Flush()
		case <-ticker.C:
			if _, err := io.WriteString(w, ": heartbeat\n\n"); err != nil {
				return err
			}
			flusher.Flush()
		}
	}
}
