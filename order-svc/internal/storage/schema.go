package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id {{pk}},
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		category TEXT NOT NULL,
		is_dish_of_day BOOLEAN NOT NULL DEFAULT FALSE,
		image_url TEXT NOT NULL DEFAULT '',
		observation_info TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id {{pk}},
		name TEXT NOT NULL,
		role TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tables (
		id {{pk}},
		number INTEGER NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS addons (
		id {{pk}},
		name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id {{pk}},
		table_id INTEGER REFERENCES tables(id),
		total_price NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id {{pk}},
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		item_id INTEGER NOT NULL REFERENCES items(id),
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		price_at_time NUMERIC(10,2) NOT NULL,
		observation TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS order_item_addons (
		id {{pk}},
		order_item_id INTEGER NOT NULL REFERENCES order_items(id) ON DELETE CASCADE,
		addon_id INTEGER NOT NULL REFERENCES addons(id),
		price_at_time NUMERIC(10,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_table_status ON orders (table_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_item_addons_line ON order_item_addons (order_item_id)`,
}

func (d Dialect) replacer() *strings.Replacer {
	switch d {
	case DialectSQLite:
		return strings.NewReplacer("{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{ts}}", "TIMESTAMP")
	default:
		return strings.NewReplacer("{{pk}}", "SERIAL PRIMARY KEY", "{{ts}}", "TIMESTAMPTZ")
	}
}

// EnsureSchema creates any missing table or index. It is safe to run on
// every start.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	r := dialect.replacer()
	for _, stmt := range schema {
		stmt = r.Replace(stmt)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i > 0 {
		return strings.TrimSpace(stmt[:i])
	}
	return stmt
}
