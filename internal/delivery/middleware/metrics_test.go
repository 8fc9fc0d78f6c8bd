package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"comanda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware_Handle(t *testing.T) {
	m := metrics.New()

	e := echo.New()
	e.Use(NewMetricsMiddleware(m).Handle)
	e.GET("/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "no")
	})

	for _, target := range []string{"/orders/1", "/orders/2", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "/orders/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "/boom", "418")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.RequestInFlight), 0)
}
