package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MessageOrderCreated       = "order_created"
	MessageOrderStatusChanged = "order_status_changed"
	MessageOrderDeleted       = "order_deleted"
)

const StatusPaid = "paid"

// OrderMessage is the payload order-svc publishes on the order events topic.
type OrderMessage struct {
	Type       string          `json:"type"`
	OrderID    int             `json:"order_id"`
	TableID    *int            `json:"table_id,omitempty"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []MessageLine   `json:"items,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Timestamp  time.Time       `json:"timestamp"`
}

type MessageLine struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
}

// Day is the bucket an order belongs to: the UTC date it was created.
func (m OrderMessage) Day() string {
	return m.CreatedAt.UTC().Format(time.DateOnly)
}
