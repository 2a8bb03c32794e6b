package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"restaurant-pos/agg-svc/internal/domain"
)

const retryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		logger: logger.Named("consumer"),
	}
}

// Start reads order messages until ctx is cancelled. A message is committed
// once it has been applied, or when it cannot be decoded at all.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("starting order events consumer")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Warn("read message", zap.Error(err))
			if !sleep(ctx, retryDelay) {
				return nil
			}
			continue
		}

		var msg domain.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.logger.Error("decode message",
				zap.Int64("offset", message.Offset),
				zap.Int("partition", message.Partition),
				zap.Error(err),
			)
		} else if err := c.Process(ctx, msg); err != nil {
			// Left uncommitted; redelivery is safe because the store is idempotent.
			c.logger.Error("process message",
				zap.String("type", msg.Type),
				zap.Int("order_id", msg.OrderID),
				zap.Error(err),
			)
			continue
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Warn("commit message", zap.Int64("offset", message.Offset), zap.Error(err))
		}
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.OrderMessage) error {
	if msg.CreatedAt.IsZero() {
		c.logger.Warn("skipping message without creation time",
			zap.String("type", msg.Type),
			zap.Int("order_id", msg.OrderID),
		)
		return nil
	}

	var err error
	switch msg.Type {
	case domain.MessageOrderCreated:
		err = c.Store.RecordOrder(ctx, msg)
	case domain.MessageOrderStatusChanged:
		if msg.Status != domain.StatusPaid {
			return nil
		}
		err = c.Store.RecordPayment(ctx, msg)
	case domain.MessageOrderDeleted:
		err = c.Store.RemoveOrder(ctx, msg)
	default:
		c.logger.Debug("ignoring message", zap.String("type", msg.Type))
		return nil
	}
	if err != nil {
		return err
	}

	c.logger.Info("applied order message",
		zap.String("type", msg.Type),
		zap.Int("order_id", msg.OrderID),
		zap.String("day", msg.Day()),
	)
	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
