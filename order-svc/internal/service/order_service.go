package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"restaurant-pos/order-svc/internal/domain"
	"restaurant-pos/order-svc/internal/metrics"
)

const publishTimeout = 5 * time.Second

// OrderService runs the order lifecycle. Every write commits first; clients
// are notified and the sales pipeline is fed only afterwards, and neither
// failure undoes the write.
type OrderService struct {
	repo      OrderRepository
	hub       Broadcaster
	publisher OrderPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewOrderService wires the service. publisher may be nil when Kafka is
// disabled.
func NewOrderService(repo OrderRepository, hub Broadcaster, publisher OrderPublisher, m *metrics.Metrics, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		repo:      repo,
		hub:       hub,
		publisher: publisher,
		metrics:   m,
		logger:    logger.Named("orders"),
		now:       time.Now,
	}
}

// Create validates and stores a new order. If the client sent a total it has
// to match the one computed from the line prices.
func (s *OrderService) Create(ctx context.Context, in domain.NewOrder, declaredTotal *decimal.Decimal) (*domain.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if declaredTotal != nil && !declaredTotal.Equal(in.Total()) {
		return nil, domain.NewValidationError("total_price",
			"declared total %s does not match computed total %s", declaredTotal.StringFixed(2), in.Total().StringFixed(2))
	}

	created, err := s.repo.CreateOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	s.metrics.OrderCreated()
	s.logger.Info("order created",
		zap.Int("order_id", created.ID),
		zap.Stringer("total", created.TotalPrice),
		zap.Int("lines", len(created.Items)),
	)

	// The event carries display names, so re-read what was committed.
	full, err := s.repo.GetOrder(ctx, created.ID)
	if err != nil {
		s.logger.Warn("reload created order", zap.Int("order_id", created.ID), zap.Error(err))
		full = created
	}

	s.hub.Broadcast(domain.NewOrderEvent(*full))
	s.publish(ctx, domain.NewOrderMessage(domain.MessageOrderCreated, *full, s.now()))
	return created, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status domain.Status) error {
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	s.metrics.StatusChanged(string(order.Status))
	s.logger.Info("order status changed", zap.Int("order_id", id), zap.String("status", string(order.Status)))

	s.hub.Broadcast(domain.OrderUpdatedEvent(order.ID, order.Status))
	if order.Status == domain.StatusPaid && order.TableID != nil {
		s.hub.Broadcast(domain.TableUpdatedEvent(*order.TableID))
	}
	s.publish(ctx, domain.NewOrderMessage(domain.MessageOrderStatusChanged, *order, s.now()))
	return nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *OrderService) ListOpenForTable(ctx context.Context, tableID int) ([]domain.Order, error) {
	return s.repo.ListOpenOrdersForTable(ctx, tableID)
}

// CloseTable settles the table. Closing a table with nothing open succeeds
// and still tells clients to refresh it.
func (s *OrderService) CloseTable(ctx context.Context, tableID int) error {
	closed, err := s.repo.CloseTable(ctx, tableID)
	if err != nil {
		return err
	}
	s.metrics.TableClosed()
	s.logger.Info("table closed", zap.Int("table_id", tableID), zap.Int("orders_paid", len(closed)))

	for _, o := range closed {
		s.metrics.StatusChanged(string(o.Status))
		s.hub.Broadcast(domain.OrderUpdatedEvent(o.ID, o.Status))
	}
	s.hub.Broadcast(domain.TableUpdatedEvent(tableID))

	now := s.now()
	for _, o := range closed {
		s.publish(ctx, domain.NewOrderMessage(domain.MessageOrderStatusChanged, o, now))
	}
	return nil
}

// Delete is the historical cleanup path.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	s.metrics.OrderDeleted()
	s.logger.Info("order deleted", zap.Int("order_id", id))

	if deleted.TableID != nil && deleted.Status.Open() {
		s.hub.Broadcast(domain.TableUpdatedEvent(*deleted.TableID))
	}
	s.publish(ctx, domain.NewOrderMessage(domain.MessageOrderDeleted, *deleted, s.now()))
	return nil
}

func (s *OrderService) publish(ctx context.Context, msg domain.OrderMessage) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishOrder(ctx, msg); err != nil {
		s.metrics.PublishFailed()
		s.logger.Error("publish order message",
			zap.String("type", msg.Type),
			zap.Int("order_id", msg.OrderID),
			zap.Error(err),
		)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
