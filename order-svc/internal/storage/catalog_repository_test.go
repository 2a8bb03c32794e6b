package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-pos/order-svc/internal/domain"
)

func TestCatalog_Items(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := domain.MenuItem{
		Name:        "Feijoada",
		Description: "Black bean stew",
		Price:       dec("32.90"),
		Category:    domain.CategoryDish,
		IsDishOfDay: true,
	}
	require.NoError(t, f.catalog.CreateItem(ctx, &item))
	assert.NotZero(t, item.ID)

	item.Price = dec("29.90")
	item.IsDishOfDay = false
	require.NoError(t, f.catalog.UpdateItem(ctx, &item))
	require.NoError(t, f.catalog.UpdateItemImage(ctx, item.ID, "/uploads/item_1_feijoada.png"))

	items, err := f.catalog.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Feijoada", items[0].Name)
	assert.True(t, items[0].Price.Equal(dec("29.90")))
	assert.False(t, items[0].IsDishOfDay)
	assert.Equal(t, "/uploads/item_1_feijoada.png", items[0].ImageURL)

	require.NoError(t, f.catalog.DeleteItem(ctx, item.ID))
	items, err = f.catalog.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalog_MissingRowsAreNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "update item", run: func() error {
			return f.catalog.UpdateItem(ctx, &domain.MenuItem{ID: 99, Name: "x", Category: domain.CategoryDish})
		}},
		{name: "update item image", run: func() error { return f.catalog.UpdateItemImage(ctx, 99, "/uploads/x.png") }},
		{name: "delete item", run: func() error { return f.catalog.DeleteItem(ctx, 99) }},
		{name: "update addon", run: func() error { return f.catalog.UpdateAddOn(ctx, &domain.AddOn{ID: 99, Name: "x"}) }},
		{name: "delete addon", run: func() error { return f.catalog.DeleteAddOn(ctx, 99) }},
		{name: "get table", run: func() error { _, err := f.catalog.GetTable(ctx, 99); return err }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var nf *domain.NotFoundError
			assert.ErrorAs(t, testCase.run(), &nf)
		})
	}
}

func TestCatalog_ReferencedItemCannotBeDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	table := f.table(t, 1)
	item := f.item(t, "Coxinha", "7.00")
	addon := f.addOn(t, "Catupiry", "2.00")

	_, err := f.orders.CreateOrder(ctx, domain.NewOrder{
		TableID: &table.ID,
		Lines: []domain.NewOrderLine{{
			ItemID: item.ID, Quantity: 1, UnitPrice: item.Price,
			AddOns: []domain.NewLineAddOn{{AddOnID: addon.ID, Price: addon.Price}},
		}},
	})
	require.NoError(t, err)

	var verr *domain.ValidationError
	assert.ErrorAs(t, f.catalog.DeleteItem(ctx, item.ID), &verr)
	assert.ErrorAs(t, f.catalog.DeleteAddOn(ctx, addon.ID), &verr)
}

func TestCatalog_AddOnsAndEmployees(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	addon := f.addOn(t, "Bacon", "2.50")
	addon.Price = dec("3.00")
	require.NoError(t, f.catalog.UpdateAddOn(ctx, &addon))

	addons, err := f.catalog.ListAddOns(ctx)
	require.NoError(t, err)
	require.Len(t, addons, 1)
	assert.True(t, addons[0].Price.Equal(dec("3.00")))

	e := domain.Employee{Name: "Ana", Role: "waiter"}
	require.NoError(t, f.catalog.CreateEmployee(ctx, &e))
	employees, err := f.catalog.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Employee{e}, employees)
}

func TestCatalog_Tables(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t2 := f.table(t, 2)
	t1 := f.table(t, 1)
	assert.Equal(t, domain.TableAvailable, t1.Status)

	dup := domain.DiningTable{Number: 2}
	err := f.catalog.CreateTable(ctx, &dup)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Table already exists", verr.Error())

	item := f.item(t, "Water", "2.00")
	_, err = f.orders.CreateOrder(ctx, simpleOrder(t2.ID, item, 1))
	require.NoError(t, err)

	tables, err := f.catalog.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, 1, tables[0].Number)
	assert.Equal(t, domain.TableAvailable, tables[0].Status)
	assert.Equal(t, 2, tables[1].Number)
	assert.Equal(t, domain.TableOccupied, tables[1].Status)
}
