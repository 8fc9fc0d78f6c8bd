package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/service"
	mockService "comanda/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	restaurantID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleEmployee, RestaurantID: &restaurantID}

	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockTokenService(t))
		err := m.Authenticate(okHandler)(newContext("/"))
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m := NewAuthMiddleware(mockService.NewMockTokenService(t))
		c := newContext("/")
		c.Request().Header.Set(echo.HeaderAuthorization, "Basic abc")

		assert.ErrorIs(t, m.Authenticate(okHandler)(c), domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired")).Once()

		c := newContext("/")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer bad")

		assert.ErrorIs(t, NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c), domainerrors.ErrTokenInvalid)
	})

	t.Run("valid token stores claims", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(claims, nil).Once()

		c := newContext("/")
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer good")

		require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c))
		assert.Same(t, claims, deliverycontext.GetClaims(c))

		actor, ok := GetActor(c)
		require.True(t, ok)
		assert.Equal(t, entity.RoleEmployee, actor.Role)
	})

	t.Run("query token only for websocket upgrades", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("ws").Return(claims, nil).Once()
		m := NewAuthMiddleware(tokenSvc)

		plain := newContext("/ws/orders?token=ws")
		assert.ErrorIs(t, m.Authenticate(okHandler)(plain), domainerrors.ErrUnauthorized)

		upgrade := newContext("/ws/orders?token=ws")
		upgrade.Request().Header.Set(echo.HeaderUpgrade, "websocket")
		assert.NoError(t, m.Authenticate(okHandler)(upgrade))
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil)

	tests := []struct {
		name    string
		claims  *service.Claims
		roles   []entity.Role
		wantErr error
	}{
		{name: "no claims", roles: []entity.Role{entity.RoleAdmin}, wantErr: domainerrors.ErrUnauthorized},
		{name: "role listed", claims: &service.Claims{Role: entity.RoleEmployee}, roles: []entity.Role{entity.RoleAdmin, entity.RoleEmployee}},
		{name: "role not listed", claims: &service.Claims{Role: entity.RoleCustomer}, roles: []entity.Role{entity.RoleAdmin}, wantErr: domainerrors.ErrForbidden},
		{name: "superadmin acts as admin", claims: &service.Claims{Role: entity.RoleSuperAdmin, IsSuperAdmin: true}, roles: []entity.Role{entity.RoleAdmin}},
		{name: "superadmin is not a delivery person", claims: &service.Claims{Role: entity.RoleSuperAdmin, IsSuperAdmin: true}, roles: []entity.Role{entity.RoleDelivery}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext("/")
			if tt.claims != nil {
				deliverycontext.SetClaims(c, tt.claims)
			}

			err := m.RequireRole(tt.roles...)(okHandler)(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthMiddleware_TenantFromClaims(t *testing.T) {
	m := NewAuthMiddleware(nil)
	bound := uuid.New()
	requested := uuid.New()

	t.Run("bound token ignores restaurant_id", func(t *testing.T) {
		c := newContext("/?restaurant_id=" + requested.String())
		deliverycontext.SetClaims(c, &service.Claims{Role: entity.RoleAdmin, RestaurantID: &bound})

		require.NoError(t, m.TenantFromClaims(okHandler)(c))
		tenantID, ok := GetTenantID(c)
		require.True(t, ok)
		assert.Equal(t, bound, tenantID)
	})

	t.Run("superadmin names the restaurant", func(t *testing.T) {
		c := newContext("/?restaurant_id=" + requested.String())
		deliverycontext.SetClaims(c, &service.Claims{Role: entity.RoleSuperAdmin, IsSuperAdmin: true})

		require.NoError(t, m.TenantFromClaims(okHandler)(c))
		tenantID, _ := GetTenantID(c)
		assert.Equal(t, requested, tenantID)
	})

	t.Run("header alternative", func(t *testing.T) {
		c := newContext("/")
		c.Request().Header.Set(HeaderRestaurantID, requested.String())
		deliverycontext.SetClaims(c, &service.Claims{Role: entity.RoleCustomer})

		require.NoError(t, m.TenantFromClaims(okHandler)(c))
		tenantID, _ := GetTenantID(c)
		assert.Equal(t, requested, tenantID)
	})

	t.Run("unbound token without restaurant", func(t *testing.T) {
		c := newContext("/")
		deliverycontext.SetClaims(c, &service.Claims{Role: entity.RoleSuperAdmin, IsSuperAdmin: true})

		assert.ErrorIs(t, m.TenantFromClaims(okHandler)(c), domainerrors.ErrTenantRequired)
	})

	t.Run("malformed restaurant_id", func(t *testing.T) {
		c := newContext("/?restaurant_id=abc")
		deliverycontext.SetClaims(c, &service.Claims{Role: entity.RoleSuperAdmin, IsSuperAdmin: true})

		assert.ErrorIs(t, m.TenantFromClaims(okHandler)(c), domainerrors.ErrValidationFailed)
	})
}
