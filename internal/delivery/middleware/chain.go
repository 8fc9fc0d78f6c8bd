package middleware

import (
	"log/slog"

	"comanda/config"
	"comanda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// UseObservability installs the chain shared by the API and the notifier:
// panic recovery, request ID, metrics and the access log. Metrics wraps the
// access log because the logger renders handler errors, which fixes the status.
func UseObservability(e *echo.Echo, logger *slog.Logger, cfg *config.Config, m *metrics.Metrics) {
	e.Use(
		echomiddleware.Recover(),
		NewRequestIDMiddleware(logger).Process,
		NewMetricsMiddleware(m).Handle,
		NewLoggerMiddleware(logger, cfg).Handle,
	)
}
