package middleware

import (
	"slices"
	"strings"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyTenantID = "tenantID"

	// QueryRestaurantID lets unbound tokens (superadmin, shared customers) pick a tenant.
	QueryRestaurantID = "restaurant_id"
	// HeaderRestaurantID is the header alternative to QueryRestaurantID.
	HeaderRestaurantID = "X-Restaurant-Id"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the context.
// Websocket upgrades may pass the token as ?token= since browsers cannot set headers there.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole lets the request through when the caller has one of the roles.
// The superadmin passes wherever admins do. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			if claims == nil {
				return domainerrors.ErrUnauthorized
			}

			if !hasRole(claims, roles) {
				return domainerrors.ErrForbidden.WithMessage("Permission denied: role " + claims.Role.String() + " is not allowed")
			}

			return next(c)
		}
	}
}

// TenantFromClaims resolves the restaurant the request acts on. A token bound to a
// restaurant always uses it; unbound tokens must name one with restaurant_id.
func (m *AuthMiddleware) TenantFromClaims(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := deliverycontext.GetClaims(c)
		if claims == nil {
			return domainerrors.ErrUnauthorized
		}

		if tenantID, ok := claims.TenantID(); ok {
			c.Set(keyTenantID, tenantID)

			return next(c)
		}

		raw := c.QueryParam(QueryRestaurantID)
		if raw == "" {
			raw = c.Request().Header.Get(HeaderRestaurantID)
		}
		if raw == "" {
			return domainerrors.ErrTenantRequired
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.NewValidationError("invalid %s", QueryRestaurantID)
		}
		c.Set(keyTenantID, tenantID)

		return next(c)
	}
}

// GetClaims returns the authenticated claims from the context.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims := deliverycontext.GetClaims(c)

	return claims, claims != nil
}

// GetUserID returns the authenticated account ID from the context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

// GetTenantID returns the restaurant resolved by TenantFromClaims.
func GetTenantID(c echo.Context) (uuid.UUID, bool) {
	tenantID, ok := c.Get(keyTenantID).(uuid.UUID)

	return tenantID, ok
}

// GetActor returns the caller as recorded in order history.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return usecase.Actor{}, false
	}

	return usecase.Actor{ID: claims.UserID, Role: claims.Role}, true
}

func bearerToken(c echo.Context) (string, bool) {
	req := c.Request()

	if authHeader := req.Header.Get(echo.HeaderAuthorization); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}

		return tokenString, true
	}

	if strings.EqualFold(req.Header.Get(echo.HeaderUpgrade), "websocket") {
		if token := c.QueryParam("token"); token != "" {
			return token, true
		}
	}

	return "", false
}

func hasRole(claims *service.Claims, roles []entity.Role) bool {
	if slices.Contains(roles, claims.Role) {
		return true
	}

	return claims.IsSuperAdmin && slices.Contains(roles, entity.RoleAdmin)
}
