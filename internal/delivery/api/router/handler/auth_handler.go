package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/api/response"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the login and registration endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// CustomerLoginRequest represents the customer login body.
// RestaurantIdentifier is optional; without it only the shared account is checked.
type CustomerLoginRequest struct {
	RestaurantIdentifier string `json:"restaurant_identifier"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required"`
}

// RegisterCustomerRequest represents the customer registration body.
type RegisterCustomerRequest struct {
	RestaurantIdentifier string `json:"restaurant_identifier"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	Name                 string `json:"name" validate:"required"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
}

// AccountLoginRequest is used by staff and delivery logins.
type AccountLoginRequest struct {
	RestaurantIdentifier string `json:"restaurant_identifier"`
	Username             string `json:"username" validate:"required"`
	Password             string `json:"password" validate:"required"`
}

// LoginCustomer handles customer login
func (h *AuthHandler) LoginCustomer(c echo.Context) error {
	var req CustomerLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.LoginCustomer(c.Request().Context(), &usecase.CustomerLoginInput{
		RestaurantIdentifier: req.RestaurantIdentifier,
		Email:                req.Email,
		Password:             req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

// RegisterCustomer handles customer registration
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.RegisterCustomer(c.Request().Context(), &usecase.RegisterCustomerInput{
		RestaurantIdentifier: req.RestaurantIdentifier,
		Email:                req.Email,
		Password:             req.Password,
		Name:                 req.Name,
		Phone:                req.Phone,
		Address:              req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(out))
}

// LoginStaff handles admin, employee and superadmin login
func (h *AuthHandler) LoginStaff(c echo.Context) error {
	var req AccountLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.LoginStaff(c.Request().Context(), &usecase.StaffLoginInput{
		RestaurantIdentifier: req.RestaurantIdentifier,
		Username:             req.Username,
		Password:             req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}

// LoginDelivery handles delivery person login
func (h *AuthHandler) LoginDelivery(c echo.Context) error {
	var req AccountLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.LoginDelivery(c.Request().Context(), &usecase.DeliveryLoginInput{
		RestaurantIdentifier: req.RestaurantIdentifier,
		Username:             req.Username,
		Password:             req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(out))
}
