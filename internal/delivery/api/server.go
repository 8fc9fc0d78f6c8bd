package api

import (
	"log/slog"

	"comanda/config"
	"comanda/internal/delivery"
	apimiddleware "comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/response"
	"comanda/internal/delivery/api/router"
	"comanda/internal/delivery/api/validator"
	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/delivery/middleware"
	"comanda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

// NewServer builds the public API. It speaks HTTP/1.1 and cleartext HTTP/2.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	h2 := &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout}
	startH2C := func(e *echo.Echo, addr string) error {
		return e.StartH2CServer(addr, h2)
	}

	return delivery.NewEchoServer(params.Lc, "api", params.Cfg.HTTP.Port, e, params.Logger, startH2C), nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	middleware.UseObservability(e, params.Logger, params.Cfg, params.Metrics)
	e.Use(
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: allowedOrigins(params.Cfg),
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
				apimiddleware.HeaderRestaurantID, response.HeaderIfNoneMatch,
			},
			ExposeHeaders: []string{response.HeaderETag, deliverycontext.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// allowedOrigins reuses the websocket origin list for CORS; empty means any origin.
func allowedOrigins(cfg *config.Config) []string {
	if cfg.WebSocket == nil || len(cfg.WebSocket.AllowedOrigins) == 0 {
		return []string{"*"}
	}

	return cfg.WebSocket.AllowedOrigins
}
