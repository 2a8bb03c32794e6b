package service

import (
	"context"

	"github.com/shopspring/decimal"

	"restaurant-pos/order-svc/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOpenOrdersForTable(ctx context.Context, tableID int) ([]domain.Order, error)
	CloseTable(ctx context.Context, tableID int) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, id int) (*domain.Order, error)
}

type CatalogRepository interface {
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	UpdateItemImage(ctx context.Context, id int, imageURL string) error
	DeleteItem(ctx context.Context, id int) error

	CreateAddOn(ctx context.Context, addon *domain.AddOn) error
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
	UpdateAddOn(ctx context.Context, addon *domain.AddOn) error
	DeleteAddOn(ctx context.Context, id int) error

	CreateEmployee(ctx context.Context, e *domain.Employee) error
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	CreateTable(ctx context.Context, t *domain.DiningTable) error
	ListTables(ctx context.Context) ([]domain.DiningTable, error)
	GetTable(ctx context.Context, id int) (*domain.DiningTable, error)
}

// OrderPublisher ships order messages to the sales aggregation pipeline.
type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.OrderMessage) error
}

// Broadcaster pushes events to connected real-time clients.
type Broadcaster interface {
	Broadcast(event domain.Event) int
}

type OrderServiceInterface interface {
	Create(ctx context.Context, in domain.NewOrder, declaredTotal *decimal.Decimal) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status) error
	List(ctx context.Context) ([]domain.Order, error)
	ListOpenForTable(ctx context.Context, tableID int) ([]domain.Order, error)
	CloseTable(ctx context.Context, tableID int) error
	Delete(ctx context.Context, id int) error
}

type CatalogServiceInterface interface {
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	UpdateItemImage(ctx context.Context, id int, imageURL string) error
	DeleteItem(ctx context.Context, id int) error

	CreateAddOn(ctx context.Context, addon *domain.AddOn) error
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
	UpdateAddOn(ctx context.Context, addon *domain.AddOn) error
	DeleteAddOn(ctx context.Context, id int) error

	CreateEmployee(ctx context.Context, e *domain.Employee) error
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	CreateTable(ctx context.Context, t *domain.DiningTable) error
	ListTables(ctx context.Context) ([]domain.DiningTable, error)
	TableQRCode(ctx context.Context, id int) ([]byte, error)
}
