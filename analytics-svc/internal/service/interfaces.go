package service

import (
	"context"
	"time"

	"restaurant-pos/analytics-svc/internal/domain"
	"restaurant-pos/analytics-svc/internal/storage"
)

type SalesRepository interface {
	OrdersSince(ctx context.Context, since time.Time) ([]domain.OrderTotal, error)
	TopItems(ctx context.Context, from, to time.Time, limit int) ([]domain.TopItem, error)
}

type SalesCache interface {
	TopItems(ctx context.Context, date string, limit int) ([]domain.TopItem, error)
	DailySales(ctx context.Context, date string) (*domain.DailySales, error)
}

type AnalyticsInterface interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	TopItems(ctx context.Context, limit int) ([]domain.TopItem, error)
}

var (
	_ SalesRepository    = (*storage.SalesRepository)(nil)
	_ SalesCache         = (*storage.SalesCache)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
