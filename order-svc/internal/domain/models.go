package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Clients read prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category string

const (
	CategoryDish  Category = "dish"
	CategoryDrink Category = "drink"
)

type MenuItem struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        Category        `json:"category"`
	IsDishOfDay     bool            `json:"is_dish_of_day"`
	ImageURL        string          `json:"image_url"`
	ObservationInfo string          `json:"observation_info"`
}

type AddOn struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Employee struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

// DiningTable status is computed from its orders on every read.
type DiningTable struct {
	ID     int         `json:"id"`
	Number int         `json:"number"`
	Status TableStatus `json:"status"`
}

type Order struct {
	ID          int             `json:"id"`
	TableID     *int            `json:"table_id"`
	TableNumber *int            `json:"table_number"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderLine     `json:"items"`
}

type OrderLine struct {
	ID          int              `json:"id"`
	OrderID     int              `json:"order_id"`
	ItemID      int              `json:"item_id"`
	Name        string           `json:"name"`
	Quantity    int              `json:"quantity"`
	PriceAtTime decimal.Decimal  `json:"price_at_time"`
	Observation string           `json:"observation"`
	AddOns      []OrderLineAddOn `json:"addons"`
}

type OrderLineAddOn struct {
	ID          int             `json:"id"`
	OrderLineID int             `json:"order_item_id"`
	AddOnID     int             `json:"addon_id"`
	Name        string          `json:"name"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
}

// NewOrder is a validated-on-demand order submission. Prices are the catalog
// prices the client resolved when the order was placed.
type NewOrder struct {
	TableID *int
	Lines   []NewOrderLine
}

type NewOrderLine struct {
	ItemID      int
	Quantity    int
	Observation string
	UnitPrice   decimal.Decimal
	AddOns      []NewLineAddOn
}

type NewLineAddOn struct {
	AddOnID int
	Price   decimal.Decimal
}
