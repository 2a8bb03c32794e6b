package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant-pos/order-svc/internal/domain"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// OrderRepository owns the orders, order_items and order_item_addons tables.
type OrderRepository struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db, Now: time.Now}
}

func (r *OrderRepository) now() time.Time {
	// Postgres keeps microseconds; truncate so the returned value matches a re-read.
	return r.Now().UTC().Truncate(time.Microsecond)
}

// CreateOrder writes the order, its lines and their add-ons in one
// transaction. The returned order carries the new ids but no display names.
func (r *OrderRepository) CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, persistErr("begin create order", err)
	}
	defer tx.Rollback()

	if in.TableID != nil {
		if err := tableExists(ctx, tx, *in.TableID); err != nil {
			var nf *domain.NotFoundError
			if errors.As(err, &nf) {
				return nil, domain.NewValidationError("table_id", "table %d does not exist", *in.TableID)
			}
			return nil, err
		}
	}

	order := &domain.Order{
		TableID:    in.TableID,
		TotalPrice: in.Total(),
		Status:     domain.StatusPending,
		CreatedAt:  r.now(),
		Items:      make([]domain.OrderLine, 0, len(in.Lines)),
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (table_id, total_price, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, in.TableID, order.TotalPrice, string(order.Status), order.CreatedAt).Scan(&order.ID); err != nil {
		return nil, persistErr("insert order", err)
	}

	for _, l := range in.Lines {
		line := domain.OrderLine{
			OrderID:     order.ID,
			ItemID:      l.ItemID,
			Quantity:    l.Quantity,
			PriceAtTime: l.UnitPrice,
			Observation: l.Observation,
			AddOns:      make([]domain.OrderLineAddOn, 0, len(l.AddOns)),
		}
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, item_id, quantity, price_at_time, observation)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, order.ID, l.ItemID, l.Quantity, l.UnitPrice, l.Observation).Scan(&line.ID); err != nil {
			if IsForeignKeyErr(err) {
				return nil, domain.NewValidationError("items", "item %d does not exist", l.ItemID)
			}
			return nil, persistErr("insert order item", err)
		}

		for _, a := range l.AddOns {
			addon := domain.OrderLineAddOn{
				OrderLineID: line.ID,
				AddOnID:     a.AddOnID,
				PriceAtTime: a.Price,
			}
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO order_item_addons (order_item_id, addon_id, price_at_time)
				VALUES ($1, $2, $3)
				RETURNING id
			`, line.ID, a.AddOnID, a.Price).Scan(&addon.ID); err != nil {
				if IsForeignKeyErr(err) {
					return nil, domain.NewValidationError("items", "add-on %d does not exist", a.AddOnID)
				}
				return nil, persistErr("insert order item addon", err)
			}
			line.AddOns = append(line.AddOns, addon)
		}
		order.Items = append(order.Items, line)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistErr("commit create order", err)
	}
	return order, nil
}

// UpdateStatus moves an order one step along its lifecycle. The current
// status is checked in the same statement that writes the new one.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status domain.Status) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown status %q", status)
	}

	if from, ok := status.Previous(); ok {
		order, err := scanOrderHeader(r.DB.QueryRowContext(ctx, `
			UPDATE orders SET status = $1
			WHERE id = $2 AND status = $3
			RETURNING id, table_id, total_price, status, created_at
		`, string(status), id, string(from)))
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, persistErr("update order status", err)
		}
	}

	var current string
	err := r.DB.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "order", ID: id}
	}
	if err != nil {
		return nil, persistErr("read order status", err)
	}
	if err := domain.CheckTransition(domain.Status(current), status); err != nil {
		return nil, err
	}
	return nil, domain.NewValidationError("status", "order %d changed concurrently", id)
}

func (r *OrderRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	orders, err := r.queryOrders(ctx, r.DB, "o.id = $1", "o.id", id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, &domain.NotFoundError{Resource: "order", ID: id}
	}
	return &orders[0], nil
}

// ListOrders returns every order, newest first.
func (r *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.queryOrders(ctx, r.DB, "1 = 1", "o.created_at DESC, o.id DESC")
}

// ListOpenOrdersForTable returns the table's unpaid orders, oldest first.
func (r *OrderRepository) ListOpenOrdersForTable(ctx context.Context, tableID int) ([]domain.Order, error) {
	if err := tableExists(ctx, r.DB, tableID); err != nil {
		return nil, err
	}
	return r.queryOrders(ctx, r.DB, "o.table_id = $1 AND o.status <> 'paid'", "o.created_at ASC, o.id ASC", tableID)
}

// CloseTable marks every unpaid order of the table as paid in one
// transaction and returns the orders it closed.
func (r *OrderRepository) CloseTable(ctx context.Context, tableID int) ([]domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, persistErr("begin close table", err)
	}
	defer tx.Rollback()

	if err := tableExists(ctx, tx, tableID); err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
		UPDATE orders SET status = $1
		WHERE table_id = $2 AND status <> $1
		RETURNING id, table_id, total_price, status, created_at
	`, string(domain.StatusPaid), tableID)
	if err != nil {
		return nil, persistErr("close table", err)
	}
	closed, err := scanOrderHeaders(rows)
	if err != nil {
		return nil, persistErr("close table", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistErr("commit close table", err)
	}
	return closed, nil
}

// DeleteOrder removes the order with its lines and add-ons and returns what
// was deleted.
func (r *OrderRepository) DeleteOrder(ctx context.Context, id int) (*domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, persistErr("begin delete order", err)
	}
	defer tx.Rollback()

	orders, err := r.queryOrders(ctx, tx, "o.id = $1", "o.id", id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, &domain.NotFoundError{Resource: "order", ID: id}
	}

	stmts := []string{
		`DELETE FROM order_item_addons WHERE order_item_id IN (SELECT id FROM order_items WHERE order_id = $1)`,
		`DELETE FROM order_items WHERE order_id = $1`,
		`DELETE FROM orders WHERE id = $1`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return nil, persistErr("delete order", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, persistErr("commit delete order", err)
	}
	return &orders[0], nil
}

// queryOrders loads orders matching where, then their lines and add-ons with
// display names. where is always a constant predicate over alias o.
func (r *OrderRepository) queryOrders(ctx context.Context, q querier, where, orderBy string, args ...any) ([]domain.Order, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT o.id, o.table_id, t.number, o.total_price, o.status, o.created_at
		FROM orders o
		LEFT JOIN tables t ON t.id = o.table_id
		WHERE `+where+`
		ORDER BY `+orderBy, args...)
	if err != nil {
		return nil, persistErr("list orders", err)
	}

	orders := []domain.Order{}
	index := make(map[int]int)
	for rows.Next() {
		var (
			o       domain.Order
			tableID sql.NullInt64
			number  sql.NullInt64
			status  string
		)
		if err := rows.Scan(&o.ID, &tableID, &number, &o.TotalPrice, &status, &o.CreatedAt); err != nil {
			rows.Close()
			return nil, persistErr("scan order", err)
		}
		o.TableID = intPtr(tableID)
		o.TableNumber = intPtr(number)
		o.Status = domain.Status(status)
		o.Items = []domain.OrderLine{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, persistErr("list orders", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.queryLines(ctx, q, where, args...)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if i, ok := index[l.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, l)
		}
	}
	return orders, nil
}

func (r *OrderRepository) queryLines(ctx context.Context, q querier, where string, args ...any) ([]domain.OrderLine, error) {
	subquery := `SELECT o.id FROM orders o WHERE ` + where

	rows, err := q.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.item_id, COALESCE(i.name, ''), oi.quantity, oi.price_at_time, COALESCE(oi.observation, '')
		FROM order_items oi
		LEFT JOIN items i ON i.id = oi.item_id
		WHERE oi.order_id IN (`+subquery+`)
		ORDER BY oi.id`, args...)
	if err != nil {
		return nil, persistErr("list order items", err)
	}

	var lines []domain.OrderLine
	index := make(map[int]int)
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.Name, &l.Quantity, &l.PriceAtTime, &l.Observation); err != nil {
			rows.Close()
			return nil, persistErr("scan order item", err)
		}
		l.AddOns = []domain.OrderLineAddOn{}
		index[l.ID] = len(lines)
		lines = append(lines, l)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, persistErr("list order items", err)
	}
	if len(lines) == 0 {
		return lines, nil
	}

	rows, err = q.QueryContext(ctx, `
		SELECT oia.id, oia.order_item_id, oia.addon_id, COALESCE(a.name, ''), oia.price_at_time
		FROM order_item_addons oia
		JOIN order_items oi ON oi.id = oia.order_item_id
		LEFT JOIN addons a ON a.id = oia.addon_id
		WHERE oi.order_id IN (`+subquery+`)
		ORDER BY oia.id`, args...)
	if err != nil {
		return nil, persistErr("list order item addons", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.OrderLineAddOn
		if err := rows.Scan(&a.ID, &a.OrderLineID, &a.AddOnID, &a.Name, &a.PriceAtTime); err != nil {
			return nil, persistErr("scan order item addon", err)
		}
		if i, ok := index[a.OrderLineID]; ok {
			lines[i].AddOns = append(lines[i].AddOns, a)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("list order item addons", err)
	}
	return lines, nil
}

func tableExists(ctx context.Context, q querier, tableID int) error {
	var id int
	err := q.QueryRowContext(ctx, `SELECT id FROM tables WHERE id = $1`, tableID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Resource: "table", ID: tableID}
	}
	if err != nil {
		return persistErr("read table", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderHeader(row rowScanner) (*domain.Order, error) {
	var (
		o       domain.Order
		tableID sql.NullInt64
		status  string
	)
	if err := row.Scan(&o.ID, &tableID, &o.TotalPrice, &status, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.TableID = intPtr(tableID)
	o.Status = domain.Status(status)
	return &o, nil
}

func scanOrderHeaders(rows *sql.Rows) ([]domain.Order, error) {
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrderHeader(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
