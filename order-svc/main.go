package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"restaurant-pos/config"
	httpapi "restaurant-pos/order-svc/internal/api/http"
	"restaurant-pos/order-svc/internal/metrics"
	"restaurant-pos/order-svc/internal/notify"
	"restaurant-pos/order-svc/internal/service"
	"restaurant-pos/order-svc/internal/storage"
)

func main() {
	fx.New(
		fx.Provide(
			loadConfig,
			config.MustLogger,
			newDatabase,
			newKafkaWriter,
			newMetrics,
			notify.NewHub,
			storage.NewOrderRepository,
			storage.NewCatalogRepository,
			newOrderService,
			newCatalogService,
			newHandler,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(runHTTP),
	).Run()
}

func loadConfig() config.Config {
	return config.Load("order-svc", ":8081")
}

func newDatabase(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*sql.DB, error) {
	db := config.MustInitPostgres(cfg.DB, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := storage.EnsureSchema(ctx, db, storage.DialectPostgres); err != nil {
		db.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return db.Close() },
	})
	return db, nil
}

// newKafkaWriter returns nil when the sales pipeline is switched off.
func newKafkaWriter(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) *kafka.Writer {
	if !cfg.KafkaEnabled {
		logger.Info("kafka disabled, order messages will not be published")
		return nil
	}
	writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrderEventsTopic)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return writer.Close() },
	})
	return writer
}

func newMetrics() (*metrics.Metrics, prometheus.Gatherer) {
	return metrics.New(prometheus.DefaultRegisterer), prometheus.DefaultGatherer
}

func newOrderService(repo *storage.OrderRepository, hub *notify.Hub, writer *kafka.Writer, m *metrics.Metrics, logger *zap.Logger) *service.OrderService {
	var publisher service.OrderPublisher
	if writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
	}
	return service.NewOrderService(repo, hub, publisher, m, logger)
}

func newCatalogService(repo *storage.CatalogRepository, cfg config.Config) *service.CatalogService {
	return service.NewCatalogService(repo, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})
}

func newHandler(orders *service.OrderService, catalog *service.CatalogService, hub *notify.Hub, cfg config.Config, logger *zap.Logger) *httpapi.Handler {
	h := httpapi.NewHandler(orders, catalog, hub, logger)
	h.Heartbeat = cfg.HubHeartbeat
	h.UploadDir = cfg.UploadDir
	return h
}

func runHTTP(lc fx.Lifecycle, cfg config.Config, handler *httpapi.Handler, hub *notify.Hub, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, logger, m, gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("order service listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Streams never finish on their own, so drop them before draining.
			hub.Close()
			return srv.Shutdown(ctx)
		},
	})
}
