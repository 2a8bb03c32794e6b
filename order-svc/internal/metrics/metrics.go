package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the order-svc collectors. A nil *Metrics records nothing.
type Metrics struct {
	ordersCreated     prometheus.Counter
	statusTransitions *prometheus.CounterVec
	tablesClosed      prometheus.Counter
	ordersDeleted     prometheus.Counter
	publishFailures   prometheus.Counter
	hubConnections    prometheus.Gauge
	deliveryFailures  prometheus.Counter
	requestDuration   *prometheus.HistogramVec
}

func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_orders_created_total",
			Help: "Orders committed.",
		}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_order_status_transitions_total",
			Help: "Order status changes by target status.",
		}, []string{"status"}),
		tablesClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_tables_closed_total",
			Help: "Close-table operations that committed.",
		}),
		ordersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_orders_deleted_total",
			Help: "Orders removed by historical cleanup.",
		}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_order_message_publish_failures_total",
			Help: "Order messages that could not be written to Kafka.",
		}),
		hubConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pos_hub_connections",
			Help: "Real-time connections currently registered.",
		}),
		deliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_hub_delivery_failures_total",
			Help: "Event deliveries that failed and dropped their connection.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pos_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}

	registerer.MustRegister(
		m.ordersCreated,
		m.statusTransitions,
		m.tablesClosed,
		m.ordersDeleted,
		m.publishFailures,
		m.hubConnections,
		m.deliveryFailures,
		m.requestDuration,
	)
	return m
}

func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

func (m *Metrics) StatusChanged(status string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) TableClosed() {
	if m == nil {
		return
	}
	m.tablesClosed.Inc()
}

func (m *Metrics) OrderDeleted() {
	if m == nil {
		return
	}
	m.ordersDeleted.Inc()
}

func (m *Metrics) PublishFailed() {
	if m == nil {
		return
	}
	m.publishFailures.Inc()
}

func (m *Metrics) SetConnections(n int) {
	if m == nil {
		return
	}
	m.hubConnections.Set(float64(n))
}

func (m *Metrics) DeliveryFailed() {
	if m == nil {
		return
	}
	m.deliveryFailures.Inc()
}

func (m *Metrics) ObserveRequest(method, route, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, code).Observe(d.Seconds())
}
