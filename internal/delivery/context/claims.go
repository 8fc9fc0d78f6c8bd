package context

import (
	"comanda/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyClaims is the echo.Context key of the authenticated token claims.
const KeyClaims ContextKey = "claims"

// SetClaims stores the validated claims of the request.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaims returns the claims set by the authentication middleware, or nil.
func GetClaims(c echo.Context) *service.Claims {
	claims, _ := c.Get(string(KeyClaims)).(*service.Claims)

	return claims
}
