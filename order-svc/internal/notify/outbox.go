package notify

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

const DefaultSendBuffer = 32

var (
	ErrSlowClient = errors.New("client send buffer full")
	ErrClosed     = errors.New("connection closed")
)

// outbox is the per-connection queue between Hub.Broadcast and the
// goroutine that owns the client socket.
type outbox struct {
	id   string
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (o *outbox) init(size int) {
	if size <= 0 {
		size = DefaultSendBuffer
	}
	o.id = uuid.NewString()
	o.send = make(chan []byte, size)
	o.done = make(chan struct{})
}

func (o *outbox) ID() string { return o.id }

func (o *outbox) offer(payload []byte) error {
	select {
	case <-o.done:
		return ErrClosed
	default:
	}

	select {
	case o.send <- payload:
		return nil
	default:
		return ErrSlowClient
	}
}

func (o *outbox) shutdown() {
	o.once.Do(func() { close(o.done) })
}
