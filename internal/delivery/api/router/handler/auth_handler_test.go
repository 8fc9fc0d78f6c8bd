package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/service"
	mockUsecase "comanda/internal/mocks/usecase"
	"comanda/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: slog.Default()}), authUC
}

func TestAuthHandler_LoginCustomer(t *testing.T) {
	t.Run("token returned", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/customer/login", map[string]any{
			"restaurant_identifier": "la-esquina",
			"email":                 "ana@example.com",
			"password":              "pw",
		})

		restaurantID := testRestaurantID
		expiresAt := time.Date(2026, 4, 13, 12, 0, 0, 0, time.UTC)
		authUC.EXPECT().LoginCustomer(mock.Anything, &usecase.CustomerLoginInput{
			RestaurantIdentifier: "la-esquina",
			Email:                "ana@example.com",
			Password:             "pw",
		}).Return(&usecase.AuthOutput{
			Token:     "signed",
			ExpiresAt: expiresAt,
			Claims:    &service.Claims{UserID: testUserID, Role: entity.RoleCustomer, RestaurantID: &restaurantID},
		}, nil).Once()

		require.NoError(t, h.LoginCustomer(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out AuthResponse
		decodeData(t, rec, &out)
		assert.Equal(t, "signed", out.Token)
		assert.Equal(t, "customer", out.Role)
		assert.True(t, expiresAt.Equal(out.ExpiresAt))
		require.NotNil(t, out.RestaurantID)
		assert.Equal(t, testRestaurantID, *out.RestaurantID)
	})

	t.Run("wrong password gives the generic error", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/customer/login", map[string]any{
			"email":    "ana@example.com",
			"password": "nope",
		})

		authUC.EXPECT().LoginCustomer(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		require.NoError(t, h.LoginCustomer(c))
		assertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})

	t.Run("malformed email", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/customer/login", map[string]any{
			"email":    "not-an-email",
			"password": "pw",
		})

		require.NoError(t, h.LoginCustomer(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestAuthHandler_RegisterCustomer_Duplicate(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/customer/register", map[string]any{
		"email":    "ana@example.com",
		"password": "long-enough",
		"name":     "Ana",
	})

	authUC.EXPECT().RegisterCustomer(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCustomerAlreadyExists).Once()

	require.NoError(t, h.RegisterCustomer(c))
	assertErrorCode(t, rec, http.StatusConflict, "CUSTOMER_ALREADY_EXISTS")
}
