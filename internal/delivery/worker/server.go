package worker

import (
	"log/slog"
	"net/http"

	"comanda/config"
	"comanda/internal/delivery"
	"comanda/internal/delivery/middleware"
	"comanda/internal/delivery/worker/handler"
	"comanda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the notifier HTTP server.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	PushHandler *handler.PushHandler
}

// NewServer exposes the Pub/Sub push endpoint next to health and metrics.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	return delivery.NewEchoServer(params.Lc, "notifier", params.Cfg.HTTP.Port, e, params.Logger, nil), nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.UseObservability(e, params.Logger, params.Cfg, params.Metrics)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}
