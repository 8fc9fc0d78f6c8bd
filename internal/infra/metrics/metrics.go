// Package metrics holds the Prometheus collectors of the service and the /metrics handler.
package metrics

import (
	"database/sql"
	"net/http"

	"comanda/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "comanda"

// Metrics groups every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	RequestInFlight prometheus.Gauge

	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	OrderEvents       *prometheus.CounterVec
	PublishFailures   *prometheus.CounterVec
	PushNotifications *prometheus.CounterVec
	WebSocketClients  prometheus.Gauge
}

// New builds the collectors and registers them together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),

		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Total cache hits.",
			},
			[]string{"driver"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Total cache misses, including degraded reads.",
			},
			[]string{"driver"},
		),

		OrderEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orders",
				Name:      "events_total",
				Help:      "Order events published, by type and target status.",
			},
			[]string{"type", "to_status"},
		),
		PublishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orders",
				Name:      "publish_failures_total",
				Help:      "Order events a publisher failed to deliver.",
			},
			[]string{"publisher"},
		),
		PushNotifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "notifier",
				Name:      "push_notifications_total",
				Help:      "Push notifications sent, by result.",
			},
			[]string{"result"},
		),
		WebSocketClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "websocket",
			Name:      "clients",
			Help:      "Connected order feed clients.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.CacheHits,
		m.CacheMisses,
		m.OrderEvents,
		m.PublishFailures,
		m.PushNotifications,
		m.WebSocketClients,
	)

	return m
}

// Registry exposes the registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDBStats exports connection pool statistics of db. Registering the
// same pool twice is not an error.
func (m *Metrics) RegisterDBStats(db *sql.DB) error {
	err := m.registry.Register(collectors.NewDBStatsCollector(db, namespace))
	var already prometheus.AlreadyRegisteredError
	if err != nil && !errors.As(err, &already) {
		return errors.Wrap(err, "failed to register database pool collector")
	}

	return nil
}

// Handler serves the registry in the Prometheus text and OpenMetrics formats.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
