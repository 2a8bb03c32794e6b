package notify

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"restaurant-pos/order-svc/internal/domain"
	"restaurant-pos/order-svc/internal/metrics"
)

// Conn is one live real-time client.
type Conn interface {
	ID() string
	// Send hands an encoded event to the connection. It must not block on a
	// slow client.
	Send(payload []byte) error
	Close() error
}

// Hub fans events out to every registered connection. Delivery is best
// effort and at most once; there is no replay for clients that were away.
type Hub struct {
	mu      sync.RWMutex
	conns   map[string]Conn
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewHub(logger *zap.Logger, m *metrics.Metrics) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		conns:   make(map[string]Conn),
		logger:  logger.Named("hub"),
		metrics: m,
	}
}

func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	h.conns[c.ID()] = c
	n := len(h.conns)
	h.mu.Unlock()

	h.metrics.SetConnections(n)
	h.logger.Debug("connection registered", zap.String("conn_id", c.ID()), zap.Int("connections", n))
}

// Unregister removes c and reports whether it was still registered.
func (h *Hub) Unregister(c Conn) bool {
	h.mu.Lock()
	current, ok := h.conns[c.ID()]
	if ok && current == c {
		delete(h.conns, c.ID())
	}
	n := len(h.conns)
	h.mu.Unlock()

	if !ok || current != c {
		return false
	}
	h.metrics.SetConnections(n)
	h.logger.Debug("connection unregistered", zap.String("conn_id", c.ID()), zap.Int("connections", n))
	return true
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast delivers event to a snapshot of the current connections and
// returns how many accepted it. A connection that fails is closed and
// removed; the others are unaffected.
func (h *Hub) Broadcast(event domain.Event) int {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("encode event", zap.String("type", string(event.Type)), zap.Error(err))
		return 0
	}

	h.mu.RLock()
	targets := make([]Conn, 0, len(h.conns))
	for _, c := range h.conns {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if err := c.Send(payload); err != nil {
			h.drop(c, &domain.DeliveryError{ConnID: c.ID(), Err: err})
			continue
		}
		delivered++
	}

	h.logger.Debug("event broadcast",
		zap.String("type", string(event.Type)),
		zap.Int("delivered", delivered),
		zap.Int("targets", len(targets)),
	)
	return delivered
}

func (h *Hub) drop(c Conn, derr *domain.DeliveryError) {
	h.metrics.DeliveryFailed()
	h.logger.Warn("dropping connection", zap.String("conn_id", derr.ConnID), zap.Error(derr))
	if h.Unregister(c) {
		_ = c.Close()
	}
}

// Close disconnects every client. Used on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[string]Conn)
	h.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
	h.metrics.SetConnections(0)
}
