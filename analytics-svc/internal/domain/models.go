package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// StatsWindow is how many days back the monthly figure and the sales chart
// reach, counting today as day zero.
const StatsWindow = 30

// WeekWindow is the look-back for the weekly figure, counting today as day zero.
const WeekWindow = 7

const StatusPaid = "paid"

type OrderTotal struct {
	CreatedAt  time.Time
	TotalPrice decimal.Decimal
	Status     string
}

// DailySales is the per-day aggregate agg-svc keeps in Redis.
type DailySales struct {
	Revenue     decimal.Decimal
	Orders      int64
	PaidRevenue decimal.Decimal
	PaidOrders  int64
}

type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type Stats struct {
	Daily         decimal.Decimal `json:"daily"`
	Weekly        decimal.Decimal `json:"weekly"`
	Monthly       decimal.Decimal `json:"monthly"`
	SalesOverTime []DailyTotal    `json:"salesOverTime"`

	// Orders created today that have since been paid.
	PaidToday       decimal.Decimal `json:"paidToday"`
	PaidOrdersToday int64           `json:"paidOrdersToday"`
}

type TopItem struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}
