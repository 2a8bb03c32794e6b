package storage_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"restaurant-pos/order-svc/internal/domain"
	"restaurant-pos/order-svc/internal/storage"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "pos.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	// sqlite has one writer; a single connection avoids SQLITE_BUSY when a
	// deferred transaction upgrades to a write lock.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.EnsureSchema(context.Background(), db, storage.DialectSQLite))
	return db
}

type fixture struct {
	db      *sql.DB
	orders  *storage.OrderRepository
	catalog *storage.CatalogRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openTestDB(t)

	orders := storage.NewOrderRepository(db)
	orders.Now = steppingClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), time.Second)

	return &fixture{
		db:      db,
		orders:  orders,
		catalog: storage.NewCatalogRepository(db),
	}
}

// steppingClock returns start, start+step, start+2*step, ...
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var (
		mu sync.Mutex
		n  int
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := start.Add(time.Duration(n) * step)
		n++
		return t
	}
}

func (f *fixture) item(t *testing.T, name, price string) domain.MenuItem {
	t.Helper()
	item := domain.MenuItem{Name: name, Price: decimal.RequireFromString(price), Category: domain.CategoryDish}
	require.NoError(t, f.catalog.CreateItem(context.Background(), &item))
	return item
}

func (f *fixture) addOn(t *testing.T, name, price string) domain.AddOn {
	t.Helper()
	addon := domain.AddOn{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, f.catalog.CreateAddOn(context.Background(), &addon))
	return addon
}

func (f *fixture) table(t *testing.T, number int) domain.DiningTable {
	t.Helper()
	table := domain.DiningTable{Number: number}
	require.NoError(t, f.catalog.CreateTable(context.Background(), &table))
	return table
}

func (f *fixture) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(query, args...).Scan(&n))
	return n
}

func simpleOrder(tableID int, item domain.MenuItem, qty int) domain.NewOrder {
	return domain.NewOrder{
		TableID: &tableID,
		Lines:   []domain.NewOrderLine{{ItemID: item.ID, Quantity: qty, UnitPrice: item.Price}},
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
