package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"restaurant-pos/analytics-svc/internal/domain"
)

// Keys written by agg-svc.
const itemNamesKey = "sales:item_names"

func itemsKey(date string) string { return "sales:items:" + date }
func dailyKey(date string) string { return "sales:daily:" + date }

type SalesCache struct {
	rdb redis.Cmdable
}

func NewSalesCache(rdb redis.Cmdable) *SalesCache {
	return &SalesCache{rdb: rdb}
}

// TopItems returns the day's best sellers by quantity. Items whose orders
// were all deleted keep a zero score and are skipped.
func (c *SalesCache) TopItems(ctx context.Context, date string, limit int) ([]domain.TopItem, error) {
	zs, err := c.rdb.ZRevRangeByScoreWithScores(ctx, itemsKey(date), &redis.ZRangeBy{
		Min:   "(0",
		Max:   "+inf",
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("read top items for %s: %w", date, err)
	}
	if len(zs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(zs))
	for i, z := range zs {
		ids[i], _ = z.Member.(string)
	}
	names, err := c.rdb.HMGet(ctx, itemNamesKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("read item names: %w", err)
	}

	items := make([]domain.TopItem, 0, len(zs))
	for i, z := range zs {
		id, err := strconv.Atoi(ids[i])
		if err != nil {
			continue
		}
		name, _ := names[i].(string)
		items = append(items, domain.TopItem{ItemID: id, Name: name, Quantity: int64(z.Score)})
	}
	return items, nil
}

// DailySales reads the day's counters. It returns nil when agg-svc has
// recorded nothing for that day.
func (c *SalesCache) DailySales(ctx context.Context, date string) (*domain.DailySales, error) {
	fields, err := c.rdb.HGetAll(ctx, dailyKey(date)).Result()
	if err != nil {
		return nil, fmt.Errorf("read daily sales for %s: %w", date, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var counters [4]int64
	for i, name := range []string{"revenue_cents", "orders", "paid_revenue_cents", "paid_orders"} {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		counters[i], err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s for %s: %w", name, date, err)
		}
	}
	return &domain.DailySales{
		Revenue:     decimal.New(counters[0], -2),
		Orders:      counters[1],
		PaidRevenue: decimal.New(counters[2], -2),
		PaidOrders:  counters[3],
	}, nil
}
