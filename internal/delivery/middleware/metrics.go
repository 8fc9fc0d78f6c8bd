package middleware

import (
	"strconv"
	"time"

	"comanda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request count, latency and concurrency per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the HTTP instrumentation middleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle is registered before the logger middleware, which renders handler
// errors, so the recorded status is the one sent to the client.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.metrics.RequestInFlight.Inc()
		defer m.metrics.RequestInFlight.Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method

		m.metrics.RequestTotal.WithLabelValues(method, route, status).Inc()
		m.metrics.RequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())

		return nil
	}
}
