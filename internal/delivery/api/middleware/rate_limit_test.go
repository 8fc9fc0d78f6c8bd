package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comanda/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter(t *testing.T) {
	serve := func(e *echo.Echo, ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	t.Run("disabled passes everything", func(t *testing.T) {
		e := echo.New()
		e.POST("/login", okHandler, NewRateLimiter(&config.RateLimitConfig{Enabled: false}))

		for range 5 {
			assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.1"))
		}
	})

	t.Run("burst exhausted per client", func(t *testing.T) {
		e := echo.New()
		e.POST("/login", okHandler, NewRateLimiter(&config.RateLimitConfig{
			Enabled:   true,
			PerSecond: 0.001,
			Burst:     2,
			ExpiresIn: time.Minute,
		}))

		assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.1"))
		assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, serve(e, "10.0.0.1"))
		assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.2"))
	})
}
