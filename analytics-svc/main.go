package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	httpapi "restaurant-pos/analytics-svc/internal/api/http"
	"restaurant-pos/analytics-svc/internal/service"
	"restaurant-pos/analytics-svc/internal/storage"
	"restaurant-pos/config"
)

func main() {
	fx.New(
		fx.Provide(
			loadConfig,
			config.MustLogger,
			newDatabase,
			newRedis,
			storage.NewSalesRepository,
			newSalesCache,
			newAnalyticsService,
			httpapi.NewHandler,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(runHTTP),
	).Run()
}

func loadConfig() config.Config {
	return config.Load("analytics-svc", ":8083")
}

func newDatabase(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) *sql.DB {
	db := config.MustInitPostgres(cfg.DB, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return db.Close() },
	})
	return db
}

func newRedis(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) *redis.Client {
	rdb := config.MustInitRedis(cfg.RedisAddr, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return rdb.Close() },
	})
	return rdb
}

func newSalesCache(rdb *redis.Client) *storage.SalesCache {
	return storage.NewSalesCache(rdb)
}

func newAnalyticsService(repo *storage.SalesRepository, cache *storage.SalesCache, logger *zap.Logger) service.AnalyticsInterface {
	return service.NewAnalyticsService(repo, cache, logger)
}

func runHTTP(lc fx.Lifecycle, cfg config.Config, handler *httpapi.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("analytics service listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
