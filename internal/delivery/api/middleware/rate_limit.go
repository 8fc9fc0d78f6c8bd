package middleware

import (
	"net/http"

	"comanda/config"
	"comanda/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter returns a per-IP token bucket limiter for the auth routes, or a
// pass-through middleware when rate limiting is disabled.
func NewRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.PerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please retry later", nil)
		},
	})
}
