package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"comanda/config"
	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/router/handler"
	"comanda/internal/delivery/api/validator"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"
	"comanda/internal/infra/metrics"
	"comanda/internal/infra/realtime"
	mockService "comanda/internal/mocks/service"
	mockUsecase "comanda/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(t *testing.T, tokenSvc service.TokenService) *echo.Echo {
	logger := slog.Default()
	cfg := &config.Config{}
	m := metrics.New()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
		RestaurantHandler:   handler.NewRestaurantHandler(handler.RestaurantHandlerParams{RestaurantUC: mockUsecase.NewMockRestaurantUsecase(t), Logger: logger}),
		CatalogHandler:      handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t), Logger: logger}),
		OrderHandler:        handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t), Logger: logger}),
		CashRegisterHandler: handler.NewCashRegisterHandler(handler.CashRegisterHandlerParams{CashRegisterUC: mockUsecase.NewMockCashRegisterUsecase(t), Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		OrderFeedHandler:    handler.NewOrderFeedHandler(handler.OrderFeedHandlerParams{Hub: realtime.NewHub(logger, m), Config: cfg, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc),
		Metrics:             m,
		Config:              cfg,
	}).RegisterRoutes(e)

	return e
}

func serve(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	e := newTestEcho(t, mockService.NewMockTokenService(t))

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/health", "").Code)

	rec := serve(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "comanda_http_requests_in_flight")
}

func TestRouter_Guards(t *testing.T) {
	restaurantID := uuid.New()
	tokens := map[string]*service.Claims{
		"customer": {UserID: uuid.New(), Role: entity.RoleCustomer, RestaurantID: &restaurantID},
		"employee": {UserID: uuid.New(), Role: entity.RoleEmployee, RestaurantID: &restaurantID},
		"delivery": {UserID: uuid.New(), Role: entity.RoleDelivery, RestaurantID: &restaurantID},
	}

	tokenSvc := mockService.NewMockTokenService(t)
	for token, claims := range tokens {
		tokenSvc.EXPECT().ValidateToken(token).Return(claims, nil).Maybe()
	}
	e := newTestEcho(t, tokenSvc)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{name: "staff listing needs a token", method: http.MethodGet, target: "/api/v1/staff/orders", want: http.StatusUnauthorized},
		{name: "customers cannot reach staff routes", method: http.MethodGet, target: "/api/v1/staff/orders", token: "customer", want: http.StatusForbidden},
		{name: "employees cannot write the catalog", method: http.MethodDelete, target: "/api/v1/staff/products/" + uuid.NewString(), token: "employee", want: http.StatusForbidden},
		{name: "employees cannot open cash registers", method: http.MethodPost, target: "/api/v1/delivery/cash-register/open", token: "employee", want: http.StatusForbidden},
		{name: "delivery persons cannot manage tenants", method: http.MethodGet, target: "/api/v1/admin/restaurants", token: "delivery", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(e, tt.method, tt.target, tt.token).Code)
		})
	}
}
