package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	mockUsecase "comanda/internal/mocks/usecase"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRestaurantHandler(t *testing.T) (*RestaurantHandler, *mockUsecase.MockRestaurantUsecase) {
	restaurantUC := mockUsecase.NewMockRestaurantUsecase(t)

	return NewRestaurantHandler(RestaurantHandlerParams{RestaurantUC: restaurantUC, Logger: slog.Default()}), restaurantUC
}

func TestRestaurantHandler_CreateRestaurant(t *testing.T) {
	h, restaurantUC := newTestRestaurantHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/admin/restaurants", map[string]any{
		"identifier": "la-esquina",
		"name":       "La Esquina",
		"admin": map[string]any{
			"username": "owner",
			"name":     "Owner",
			"password": "s3cret-pass",
		},
	})

	restaurantUC.EXPECT().CreateRestaurant(mock.Anything, mock.MatchedBy(func(input *usecase.CreateRestaurantInput) bool {
		return input.Identifier == "la-esquina" && input.Admin.Role == entity.RoleAdmin && input.Admin.Username == "owner"
	})).Return(&usecase.CreateRestaurantOutput{
		Restaurant: &entity.Restaurant{ID: testRestaurantID, Identifier: "la-esquina", Name: "La Esquina", IsActive: true},
		Admin:      &entity.Staff{ID: uuid.New(), RestaurantID: testRestaurantID, Username: "owner", Role: entity.RoleAdmin, PasswordHash: "$2a$10$hash"},
	}, nil).Once()

	require.NoError(t, h.CreateRestaurant(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")

	var out CreatedRestaurantResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "la-esquina", out.Restaurant.Identifier)
	assert.Equal(t, "admin", out.Admin.Role)
}

func TestRestaurantHandler_GetRestaurantByIdentifier_Inactive(t *testing.T) {
	h, restaurantUC := newTestRestaurantHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/public/restaurants/closed", nil)
	c.SetParamNames("identifier")
	c.SetParamValues("closed")

	restaurantUC.EXPECT().GetRestaurantByIdentifier(mock.Anything, "closed").Return(nil, domainerrors.ErrRestaurantNotFound).Once()

	require.NoError(t, h.GetRestaurantByIdentifier(c))
	assertErrorCode(t, rec, http.StatusNotFound, "RESTAURANT_NOT_FOUND")
}

func TestRestaurantHandler_CreateStaff_DefaultsToEmployee(t *testing.T) {
	h, restaurantUC := newTestRestaurantHandler(t)
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/staff/employees", map[string]any{
		"username": "waiter",
		"name":     "Waiter",
		"password": "long-enough",
	})
	withClaims(c, entity.RoleAdmin)

	restaurantUC.EXPECT().CreateStaff(mock.Anything, testRestaurantID, mock.MatchedBy(func(input *usecase.CreateStaffInput) bool {
		return input.Role == entity.RoleEmployee
	})).Return(&entity.Staff{ID: uuid.New(), Username: "waiter", Role: entity.RoleEmployee}, nil).Once()

	require.NoError(t, serveTenant(c, h.CreateStaff))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRestaurantHandler_GetMenuQRCode(t *testing.T) {
	h, restaurantUC := newTestRestaurantHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/staff/menu-qr", nil)
	withClaims(c, entity.RoleAdmin)

	png := []byte{0x89, 'P', 'N', 'G'}
	restaurantUC.EXPECT().GetMenuQRCode(mock.Anything, testRestaurantID).
		Return(&usecase.MenuQRCode{URL: "https://menu.example.com/r/la-esquina", PNG: png}, nil).Once()

	require.NoError(t, serveTenant(c, h.GetMenuQRCode))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://menu.example.com/r/la-esquina", rec.Header().Get("X-Menu-Url"))
	assert.Equal(t, png, rec.Body.Bytes())
}
