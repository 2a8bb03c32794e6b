package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"restaurant-pos/agg-svc/internal/service"
	"restaurant-pos/agg-svc/internal/storage"
	"restaurant-pos/config"
)

func main() {
	fx.New(
		fx.Provide(
			loadConfig,
			config.MustLogger,
			newRedis,
			newKafkaReader,
			newStore,
			newConsumer,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(runConsumer),
	).Run()
}

func loadConfig() config.Config {
	return config.Load("agg-svc", "")
}

func newRedis(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) *redis.Client {
	rdb := config.MustInitRedis(cfg.RedisAddr, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return rdb.Close() },
	})
	return rdb
}

func newKafkaReader(lc fx.Lifecycle, cfg config.Config) *kafka.Reader {
	reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.OrderEventsTopic, cfg.ConsumerGroup)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return reader.Close() },
	})
	return reader
}

func newStore(rdb *redis.Client) *storage.Store {
	return storage.NewStore(rdb)
}

func newConsumer(reader *kafka.Reader, store *storage.Store, logger *zap.Logger) *service.Consumer {
	return service.NewConsumer(reader, store, logger)
}

// runConsumer ties the consumer loop to the fx lifecycle. Hooks run in
// reverse on stop, so the loop is drained before the reader closes.
func runConsumer(lc fx.Lifecycle, consumer *service.Consumer, cfg config.Config, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("consuming order events",
				zap.String("topic", cfg.OrderEventsTopic),
				zap.String("group", cfg.ConsumerGroup),
			)
			go func() {
				defer close(done)
				if err := consumer.Start(ctx); err != nil {
					logger.Error("consumer stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
