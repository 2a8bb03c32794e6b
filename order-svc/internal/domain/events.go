package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventNewOrder     EventType = "NEW_ORDER"
	EventOrderUpdated EventType = "ORDER_UPDATED"
	EventTableUpdated EventType = "TABLE_UPDATED"
)

// Event is what real-time clients receive. Only the fields of its type are set.
type Event struct {
	Type   EventType `json:"type"`
	Order  *Order    `json:"order,omitempty"`
	ID     int       `json:"id,omitempty"`
	Status Status    `json:"status,omitempty"`
}

func NewOrderEvent(order Order) Event {
	return Event{Type: EventNewOrder, Order: &order}
}

func OrderUpdatedEvent(id int, status Status) Event {
	return Event{Type: EventOrderUpdated, ID: id, Status: status}
}

func TableUpdatedEvent(tableID int) Event {
	return Event{Type: EventTableUpdated, ID: tableID}
}

const (
	MessageOrderCreated       = "order_created"
	MessageOrderStatusChanged = "order_status_changed"
	MessageOrderDeleted       = "order_deleted"
)

// OrderMessage is published to Kafka for the sales aggregation consumer.
type OrderMessage struct {
	Type       string             `json:"type"`
	OrderID    int                `json:"order_id"`
	TableID    *int               `json:"table_id,omitempty"`
	Status     Status             `json:"status"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	Items      []OrderMessageLine `json:"items,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	Timestamp  time.Time          `json:"timestamp"`
}

type OrderMessageLine struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
}

func NewOrderMessage(kind string, order Order, now time.Time) OrderMessage {
	msg := OrderMessage{
		Type:       kind,
		OrderID:    order.ID,
		TableID:    order.TableID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
		Timestamp:  now,
	}
	for _, l := range order.Items {
		msg.Items = append(msg.Items, OrderMessageLine{ItemID: l.ItemID, Name: l.Name, Quantity: l.Quantity})
	}
	return msg
}
