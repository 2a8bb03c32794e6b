package service

import (
	"context"

	"github.com/segmentio/kafka-go"

	"restaurant-pos/agg-svc/internal/domain"
	"restaurant-pos/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, msg domain.OrderMessage) error
	RecordPayment(ctx context.Context, msg domain.OrderMessage) error
	RemoveOrder(ctx context.Context, msg domain.OrderMessage) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	Process(ctx context.Context, msg domain.OrderMessage) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
