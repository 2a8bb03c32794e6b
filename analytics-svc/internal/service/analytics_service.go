package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"restaurant-pos/analytics-svc/internal/domain"
)

type AnalyticsService struct {
	repo   SalesRepository
	cache  SalesCache
	logger *zap.Logger

	Now func() time.Time
}

// NewAnalyticsService wires the service. cache may be nil, in which case
// every read goes to SQL.
func NewAnalyticsService(repo SalesRepository, cache SalesCache, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		repo:   repo,
		cache:  cache,
		logger: logger.Named("analytics"),
		Now:    time.Now,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Stats sums order totals per UTC day. Days run from today back StatsWindow
// days, and days without orders are reported as zero. Today's paid figures
// come from the agg-svc counters when present, else from the same rows.
func (s *AnalyticsService) Stats(ctx context.Context) (*domain.Stats, error) {
	today := startOfDay(s.Now())
	from := today.AddDate(0, 0, -domain.StatsWindow)

	orders, err := s.repo.OrdersSince(ctx, from)
	if err != nil {
		return nil, err
	}

	todayKey := today.Format(time.DateOnly)
	paidToday, paidOrders := decimal.Zero, int64(0)
	byDay := make(map[string]decimal.Decimal, domain.StatsWindow+1)
	for _, o := range orders {
		day := o.CreatedAt.UTC().Format(time.DateOnly)
		byDay[day] = byDay[day].Add(o.TotalPrice)
		if day == todayKey && o.Status == domain.StatusPaid {
			paidToday = paidToday.Add(o.TotalPrice)
			paidOrders++
		}
	}
	if sales := s.dailySales(ctx, todayKey); sales != nil {
		paidToday, paidOrders = sales.PaidRevenue, sales.PaidOrders
	}

	weekStart := today.AddDate(0, 0, -domain.WeekWindow)
	stats := &domain.Stats{
		Daily:           decimal.Zero,
		Weekly:          decimal.Zero,
		Monthly:         decimal.Zero,
		SalesOverTime:   make([]domain.DailyTotal, 0, domain.StatsWindow+1),
		PaidToday:       paidToday,
		PaidOrdersToday: paidOrders,
	}
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		day := d.Format(time.DateOnly)
		total := byDay[day]
		stats.Monthly = stats.Monthly.Add(total)
		if !d.Before(weekStart) {
			stats.Weekly = stats.Weekly.Add(total)
		}
		if d.Equal(today) {
			stats.Daily = total
		}
		stats.SalesOverTime = append(stats.SalesOverTime, domain.DailyTotal{Date: day, Total: total})
	}
	return stats, nil
}

func (s *AnalyticsService) dailySales(ctx context.Context, date string) *domain.DailySales {
	if s.cache == nil {
		return nil
	}
	sales, err := s.cache.DailySales(ctx, date)
	if err != nil {
		s.logger.Warn("sales cache unavailable, using database", zap.Error(err))
		return nil
	}
	return sales
}

// TopItems prefers the counters kept by agg-svc and falls back to SQL when
// they are empty or unreachable.
func (s *AnalyticsService) TopItems(ctx context.Context, limit int) ([]domain.TopItem, error) {
	today := startOfDay(s.Now())

	if s.cache != nil {
		items, err := s.cache.TopItems(ctx, today.Format(time.DateOnly), limit)
		switch {
		case err != nil:
			s.logger.Warn("sales cache unavailable, using database", zap.Error(err))
		case len(items) > 0:
			return items, nil
		}
	}

	return s.repo.TopItems(ctx, today, today.AddDate(0, 0, 1), limit)
}
