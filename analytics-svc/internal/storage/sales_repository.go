package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"restaurant-pos/analytics-svc/internal/domain"
)

// SalesRepository reads the orders tables owned by order-svc.
type SalesRepository struct {
	DB *sql.DB
}

func NewSalesRepository(db *sql.DB) *SalesRepository {
	return &SalesRepository{DB: db}
}

func (r *SalesRepository) OrdersSince(ctx context.Context, since time.Time) ([]domain.OrderTotal, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT created_at, total_price, status
		FROM orders
		WHERE created_at >= $1
		ORDER BY created_at
	`, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("query orders since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()

	var totals []domain.OrderTotal
	for rows.Next() {
		var t domain.OrderTotal
		if err := rows.Scan(&t.CreatedAt, &t.TotalPrice, &t.Status); err != nil {
			return nil, fmt.Errorf("scan order total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *SalesRepository) TopItems(ctx context.Context, from, to time.Time, limit int) ([]domain.TopItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.item_id, i.name, SUM(oi.quantity) AS qty
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN items i ON i.id = oi.item_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		GROUP BY oi.item_id, i.name
		ORDER BY qty DESC, oi.item_id
		LIMIT $3
	`, from.UTC(), to.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("query top items: %w", err)
	}
	defer rows.Close()

	items := []domain.TopItem{}
	for rows.Next() {
		var it domain.TopItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan top item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
