package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"restaurant-pos/api-gateway/internal/gateway"
	"restaurant-pos/config"
)

func main() {
	fx.New(
		fx.Provide(
			loadConfig,
			config.MustLogger,
			newGateway,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(runHTTP),
	).Run()
}

func loadConfig() config.Config {
	return config.Load("api-gateway", ":8080")
}

func newGateway(cfg config.Config, logger *zap.Logger) (*gateway.Gateway, error) {
	return gateway.NewGateway(gateway.Config{
		OrderSvcURL:     cfg.OrderSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
	}, &http.Client{Timeout: 30 * time.Second}, logger)
}

func newRouter(gw *gateway.Gateway) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(gw.SetupRoutes())
}

func runHTTP(lc fx.Lifecycle, cfg config.Config, gw *gateway.Gateway, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(gw),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("api gateway listening",
				zap.String("addr", srv.Addr),
				zap.String("order_svc", cfg.OrderSvcURL),
				zap.String("analytics_svc", cfg.AnalyticsSvcURL),
			)
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
