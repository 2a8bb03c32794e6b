package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"restaurant-pos/config"
	httpapi "restaurant-pos/order-svc/internal/api/http"
	"restaurant-pos/order-svc/internal/notify"
	"restaurant-pos/order-svc/internal/service"
	"restaurant-pos/order-svc/internal/storage"
)

func TestDependencyGraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(
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
		fx.Invoke(runHTTP),
	)
	require.NoError(t, err)
}

func TestNewKafkaWriterDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	writer := newKafkaWriter(lc, config.Config{KafkaEnabled: false}, zap.NewNop())
	assert.Nil(t, writer)
}

func TestNewHandlerAppliesConfig(t *testing.T) {
	cfg := config.Config{HubHeartbeat: 3 * time.Second, UploadDir: t.TempDir()}
	h := newHandler(&service.OrderService{}, &service.CatalogService{}, notify.NewHub(nil, nil), cfg, zap.NewNop())

	assert.IsType(t, &httpapi.Handler{}, h)
	assert.Equal(t, cfg.HubHeartbeat, h.Heartbeat)
	assert.Equal(t, cfg.UploadDir, h.UploadDir)
}
