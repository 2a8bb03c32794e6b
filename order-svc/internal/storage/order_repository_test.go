package storage_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-pos/order-svc/internal/domain"
)

func TestCreateOrder_StoredTotalMatchesSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	table := f.table(t, 1)
	items := make([]domain.MenuItem, 5)
	for i := range items {
		items[i] = f.item(t, "item", decimal.New(int64(100+rng.Intn(5000)), -2).String())
	}
	addons := make([]domain.AddOn, 4)
	for i := range addons {
		addons[i] = f.addOn(t, "addon", decimal.New(int64(rng.Intn(900)), -2).String())
	}

	for n := 0; n < 100; n++ {
		in := domain.NewOrder{TableID: &table.ID}
		for l := 0; l < 1+rng.Intn(4); l++ {
			item := items[rng.Intn(len(items))]
			line := domain.NewOrderLine{ItemID: item.ID, Quantity: 1 + rng.Intn(5), UnitPrice: item.Price}
			for a := 0; a < rng.Intn(3); a++ {
				addon := addons[rng.Intn(len(addons))]
				line.AddOns = append(line.AddOns, domain.NewLineAddOn{AddOnID: addon.ID, Price: addon.Price})
			}
			in.Lines = append(in.Lines, line)
		}

		created, err := f.orders.CreateOrder(ctx, in)
		require.NoError(t, err)
		assert.True(t, created.TotalPrice.Equal(in.Total()))

		stored, err := f.orders.GetOrder(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, stored.TotalPrice.Equal(stored.LinesTotal()),
			"order %d: stored %s, recomputed %s", stored.ID, stored.TotalPrice, stored.LinesTotal())
		assert.True(t, stored.TotalPrice.Equal(in.Total()))
		assert.Equal(t, domain.StatusPending, stored.Status)
		assert.Len(t, stored.Items, len(in.Lines))
	}
}

// The sqlite pool holds a single connection, so these transactions run one
// after another. The test covers concurrent callers getting distinct,
// complete orders; isolation between overlapping transactions comes from the
// database and is not exercised here.
func TestCreateOrder_ConcurrentSubmissionsToOneTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	table := f.table(t, 7)
	burger := f.item(t, "Burger", "12.50")
	cheese := f.addOn(t, "Cheese", "1.25")

	const n = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ids  = make(map[int]bool)
		errs []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			in := domain.NewOrder{
				TableID: &table.ID,
				Lines: []domain.NewOrderLine{{
					ItemID:    burger.ID,
					Quantity:  qty,
					UnitPrice: burger.Price,
					AddOns:    []domain.NewLineAddOn{{AddOnID: cheese.ID, Price: cheese.Price}},
				}},
			}
			created, err := f.orders.CreateOrder(ctx, in)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			ids[created.ID] = true
		}(1 + i%3)
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, ids, n)

	open, err := f.orders.ListOpenOrdersForTable(ctx, table.ID)
	require.NoError(t, err)
	require.Len(t, open, n)
	for _, o := range open {
		require.Len(t, o.Items, 1)
		require.Len(t, o.Items[0].AddOns, 1)
		assert.True(t, o.TotalPrice.Equal(o.LinesTotal()))
	}
	assert.Equal(t, n, f.count(t, `SELECT COUNT(*) FROM order_items`))
	assert.Equal(t, n, f.count(t, `SELECT COUNT(*) FROM order_item_addons`))
}

func TestCreateOrder_Rejected(t *testing.T) {
	f := newFixture(t)
	table := f.table(t, 2)
	item := f.item(t, "Soup", "6.00")
	missingTable := 999

	tests := []struct {
		name  string
		input domain.NewOrder
	}{
		{
			name:  "no lines",
			input: domain.NewOrder{TableID: &table.ID},
		},
		{
			name:  "zero quantity",
			input: simpleOrder(table.ID, item, 0),
		},
		{
			name:  "unknown table",
			input: simpleOrder(missingTable, item, 1),
		},
		{
			name:  "unknown item",
			input: simpleOrder(table.ID, domain.MenuItem{ID: 12345, Price: dec("1.00")}, 1),
		},
		{
			name: "unknown add-on",
			input: domain.NewOrder{TableID: &table.ID, Lines: []domain.NewOrderLine{{
				ItemID: item.ID, Quantity: 1, UnitPrice: item.Price,
				AddOns: []domain.NewLineAddOn{{AddOnID: 777, Price: dec("0.50")}},
			}}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := f.orders.CreateOrder(context.Background(), testCase.input)

			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	assert.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM orders`))
	assert.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM order_items`))
}

func TestCreateOrder_WithoutTable(t *testing.T) {
	f := newFixture(t)
	item := f.item(t, "Espresso", "2.20")

	created, err := f.orders.CreateOrder(context.Background(), domain.NewOrder{
		Lines: []domain.NewOrderLine{{ItemID: item.ID, Quantity: 2, UnitPrice: item.Price}},
	})
	require.NoError(t, err)
	assert.Nil(t, created.TableID)

	stored, err := f.orders.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.TableID)
	assert.Nil(t, stored.TableNumber)
	assert.True(t, stored.TotalPrice.Equal(dec("4.40")))
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 3)
	item := f.item(t, "Pasta", "14.00")

	created, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 1))
	require.NoError(t, err)

	for _, next := range []domain.Status{domain.StatusPreparing, domain.StatusReady, domain.StatusDelivered} {
		updated, err := f.orders.UpdateStatus(ctx, created.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
		assert.Equal(t, created.ID, updated.ID)
		require.NotNil(t, updated.TableID)
		assert.Equal(t, table.ID, *updated.TableID)
	}

	stored, err := f.orders.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, stored.Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 3)
	item := f.item(t, "Pasta", "14.00")

	created, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 1))
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(ctx, created.ID, domain.StatusPreparing)
	require.NoError(t, err)

	tests := []struct {
		name         string
		id           int
		status       domain.Status
		wantNotFound bool
	}{
		{name: "unknown order", id: 424242, status: domain.StatusPreparing, wantNotFound: true},
		{name: "skips a step", id: created.ID, status: domain.StatusDelivered},
		{name: "goes backwards", id: created.ID, status: domain.StatusPending},
		{name: "same status", id: created.ID, status: domain.StatusPreparing},
		{name: "unknown status", id: created.ID, status: domain.Status("cooking")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := f.orders.UpdateStatus(ctx, testCase.id, testCase.status)
			require.Error(t, err)

			if testCase.wantNotFound {
				var nf *domain.NotFoundError
				assert.ErrorAs(t, err, &nf)
				return
			}
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	stored, err := f.orders.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, stored.Status)
}

func TestStatusWrites_ReturnCreationTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 8)
	item := f.item(t, "Caipirinha", "18.00")

	first, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 1))
	require.NoError(t, err)
	second, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 2))
	require.NoError(t, err)
	require.False(t, first.CreatedAt.Equal(second.CreatedAt))

	updated, err := f.orders.UpdateStatus(ctx, first.ID, domain.StatusPreparing)
	require.NoError(t, err)
	assert.False(t, updated.CreatedAt.IsZero())
	assert.True(t, first.CreatedAt.Equal(updated.CreatedAt),
		"created %s, returned %s", first.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.TotalPrice.Equal(dec("18.00")))

	closed, err := f.orders.CloseTable(ctx, table.ID)
	require.NoError(t, err)
	require.Len(t, closed, 2)

	want := map[int]domain.Order{first.ID: *first, second.ID: *second}
	for _, o := range closed {
		assert.False(t, o.CreatedAt.IsZero(), "order %d", o.ID)
		assert.True(t, want[o.ID].CreatedAt.Equal(o.CreatedAt),
			"order %d: created %s, returned %s", o.ID, want[o.ID].CreatedAt, o.CreatedAt)
		assert.Equal(t, domain.StatusPaid, o.Status)
	}
}

func TestCloseTable_IsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 5)
	other := f.table(t, 6)
	item := f.item(t, "Tea", "3.00")

	first, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 1))
	require.NoError(t, err)
	second, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 2))
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(ctx, second.ID, domain.StatusPreparing)
	require.NoError(t, err)
	untouched, err := f.orders.CreateOrder(ctx, simpleOrder(other.ID, item, 1))
	require.NoError(t, err)

	closed, err := f.orders.CloseTable(ctx, table.ID)
	require.NoError(t, err)
	require.Len(t, closed, 2)
	closedIDs := []int{closed[0].ID, closed[1].ID}
	assert.ElementsMatch(t, []int{first.ID, second.ID}, closedIDs)
	for _, o := range closed {
		assert.Equal(t, domain.StatusPaid, o.Status)
	}

	again, err := f.orders.CloseTable(ctx, table.ID)
	require.NoError(t, err)
	assert.Empty(t, again)

	open, err := f.orders.ListOpenOrdersForTable(ctx, table.ID)
	require.NoError(t, err)
	assert.Empty(t, open)

	stored, err := f.orders.GetOrder(ctx, untouched.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestCloseTable_UnknownTable(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.CloseTable(context.Background(), 31337)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "table", nf.Resource)
}

func TestListOpenOrdersForTable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 8)
	steak := f.item(t, "Steak", "30.00")
	fries := f.addOn(t, "Fries", "4.50")

	older, err := f.orders.CreateOrder(ctx, domain.NewOrder{
		TableID: &table.ID,
		Lines: []domain.NewOrderLine{{
			ItemID: steak.ID, Quantity: 1, UnitPrice: steak.Price, Observation: "medium rare",
			AddOns: []domain.NewLineAddOn{{AddOnID: fries.ID, Price: fries.Price}},
		}},
	})
	require.NoError(t, err)
	newer, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, steak, 2))
	require.NoError(t, err)
	paid, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, steak, 1))
	require.NoError(t, err)
	for _, s := range []domain.Status{domain.StatusPreparing, domain.StatusReady, domain.StatusDelivered, domain.StatusPaid} {
		_, err := f.orders.UpdateStatus(ctx, paid.ID, s)
		require.NoError(t, err)
	}

	open, err := f.orders.ListOpenOrdersForTable(ctx, table.ID)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, older.ID, open[0].ID)
	assert.Equal(t, newer.ID, open[1].ID)

	line := open[0].Items[0]
	assert.Equal(t, "Steak", line.Name)
	assert.Equal(t, "medium rare", line.Observation)
	require.Len(t, line.AddOns, 1)
	assert.Equal(t, "Fries", line.AddOns[0].Name)
	assert.True(t, line.AddOns[0].PriceAtTime.Equal(dec("4.50")))
	require.NotNil(t, open[0].TableNumber)
	assert.Equal(t, 8, *open[0].TableNumber)

	_, err = f.orders.ListOpenOrdersForTable(ctx, 999)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestListOrders_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 9)
	item := f.item(t, "Juice", "5.00")

	var ids []int
	for i := 0; i < 3; i++ {
		created, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 1))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	orders, err := f.orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int{ids[2], ids[1], ids[0]}, []int{orders[0].ID, orders[1].ID, orders[2].ID})
	assert.True(t, orders[0].CreatedAt.After(orders[2].CreatedAt))
	for _, o := range orders {
		require.NotNil(t, o.TableNumber)
		assert.Equal(t, 9, *o.TableNumber)
		assert.Len(t, o.Items, 1)
	}
}

func TestListOrders_Empty(t *testing.T) {
	f := newFixture(t)

	orders, err := f.orders.ListOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestDeleteOrder_Cascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 10)
	item := f.item(t, "Cake", "8.00")
	cream := f.addOn(t, "Cream", "1.00")

	created, err := f.orders.CreateOrder(ctx, domain.NewOrder{
		TableID: &table.ID,
		Lines: []domain.NewOrderLine{{
			ItemID: item.ID, Quantity: 1, UnitPrice: item.Price,
			AddOns: []domain.NewLineAddOn{{AddOnID: cream.ID, Price: cream.Price}},
		}},
	})
	require.NoError(t, err)
	kept, err := f.orders.CreateOrder(ctx, simpleOrder(table.ID, item, 1))
	require.NoError(t, err)

	deleted, err := f.orders.DeleteOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.True(t, deleted.TotalPrice.Equal(dec("9.00")))

	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM orders`))
	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM order_items`))
	assert.Equal(t, 0, f.count(t, `SELECT COUNT(*) FROM order_item_addons`))

	_, err = f.orders.GetOrder(ctx, kept.ID)
	require.NoError(t, err)

	_, err = f.orders.DeleteOrder(ctx, created.ID)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestTableFourEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	table := f.table(t, 4)
	item := f.item(t, "Moqueca", "20.00")
	addon := f.addOn(t, "Farofa", "3.00")

	created, err := f.orders.CreateOrder(ctx, domain.NewOrder{
		TableID: &table.ID,
		Lines: []domain.NewOrderLine{{
			ItemID: item.ID, Quantity: 2, UnitPrice: item.Price,
			AddOns: []domain.NewLineAddOn{{AddOnID: addon.ID, Price: addon.Price}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "46.00", created.TotalPrice.StringFixed(2))

	current, err := f.catalog.GetTable(ctx, table.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TableOccupied, current.Status)

	open, err := f.orders.ListOpenOrdersForTable(ctx, table.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, created.ID, open[0].ID)
	assert.Equal(t, "46.00", open[0].TotalPrice.StringFixed(2))

	_, err = f.orders.CloseTable(ctx, table.ID)
	require.NoError(t, err)

	open, err = f.orders.ListOpenOrdersForTable(ctx, table.ID)
	require.NoError(t, err)
	assert.Empty(t, open)

	current, err = f.catalog.GetTable(ctx, table.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, current.Status)
}
