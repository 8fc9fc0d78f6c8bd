package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/response"
	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler serves tenant administration and the accounts of a tenant.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// StaffRequest describes an admin or employee account.
type StaffRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin employee"`
}

// CreateRestaurantRequest creates a tenant together with its first admin.
type CreateRestaurantRequest struct {
	Identifier    string       `json:"identifier" validate:"required,min=2,max=64"`
	Name          string       `json:"name" validate:"required"`
	POSEnabled    bool         `json:"pos_enabled"`
	POSProvider   string       `json:"pos_provider"`
	POSTerminalID string       `json:"pos_terminal_id"`
	Admin         StaffRequest `json:"admin" validate:"required"`
}

// UpdateRestaurantRequest holds optional changes; omitted fields are left untouched.
type UpdateRestaurantRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	POSEnabled    *bool   `json:"pos_enabled"`
	POSProvider   *string `json:"pos_provider"`
	POSTerminalID *string `json:"pos_terminal_id"`
}

// SetActiveRequest toggles an account or tenant.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// DeliveryPersonRequest describes a delivery person account.
type DeliveryPersonRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreatedRestaurantResponse returns the tenant and its admin.
type CreatedRestaurantResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Admin      StaffResponse      `json:"admin"`
}

// CreateRestaurant handles tenant creation by the superadmin
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), &usecase.CreateRestaurantInput{
		Identifier:    req.Identifier,
		Name:          req.Name,
		POSEnabled:    req.POSEnabled,
		POSProvider:   req.POSProvider,
		POSTerminalID: req.POSTerminalID,
		Admin: usecase.CreateStaffInput{
			Username: req.Admin.Username,
			Email:    req.Admin.Email,
			Name:     req.Admin.Name,
			Password: req.Admin.Password,
			Role:     entity.RoleAdmin,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreatedRestaurantResponse{
		Restaurant: newRestaurantResponse(out.Restaurant),
		Admin:      newStaffResponse(out.Admin),
	})
}

// ListRestaurants handles listing tenants; include_inactive=true lists every tenant
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	includeInactive, err := optionalQueryBool(c, "include_inactive")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context(), includeInactive != nil && *includeInactive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(restaurants, newRestaurantResponse))
}

// GetRestaurant handles fetching one tenant by ID
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRestaurantResponse(restaurant))
}

// GetRestaurantByIdentifier resolves an active tenant by its public slug
func (h *RestaurantHandler) GetRestaurantByIdentifier(c echo.Context) error {
	restaurant, err := h.restaurantUC.GetRestaurantByIdentifier(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRestaurantResponse(restaurant))
}

// UpdateRestaurant handles partial tenant updates
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateRestaurantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.restaurantUC.UpdateRestaurant(c.Request().Context(), id, &usecase.UpdateRestaurantInput{
		Name:          req.Name,
		POSEnabled:    req.POSEnabled,
		POSProvider:   req.POSProvider,
		POSTerminalID: req.POSTerminalID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRestaurantResponse(restaurant))
}

// SetRestaurantActive handles tenant activation and deactivation
func (h *RestaurantHandler) SetRestaurantActive(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.restaurantUC.SetRestaurantActive(c.Request().Context(), id, *req.Active); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateStaff handles creating an admin or employee of the caller's restaurant
func (h *RestaurantHandler) CreateStaff(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	var req StaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	role := entity.Role(req.Role)
	if role == "" {
		role = entity.RoleEmployee
	}

	staff, err := h.restaurantUC.CreateStaff(c.Request().Context(), tenantID, &usecase.CreateStaffInput{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newStaffResponse(staff))
}

// ListStaff handles listing the staff of the caller's restaurant
func (h *RestaurantHandler) ListStaff(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	staff, err := h.restaurantUC.ListStaff(c.Request().Context(), tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(staff, newStaffResponse))
}

// CreateDeliveryPerson handles creating a delivery person of the caller's restaurant
func (h *RestaurantHandler) CreateDeliveryPerson(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	var req DeliveryPersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	person, err := h.restaurantUC.CreateDeliveryPerson(c.Request().Context(), tenantID, &usecase.CreateDeliveryPersonInput{
		Username: req.Username,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDeliveryPersonResponse(person))
}

// ListDeliveryPersons handles listing the delivery persons of the caller's restaurant
func (h *RestaurantHandler) ListDeliveryPersons(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	persons, err := h.restaurantUC.ListDeliveryPersons(c.Request().Context(), tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(persons, newDeliveryPersonResponse))
}

// SetDeliveryPersonActive handles enabling or disabling a delivery person
func (h *RestaurantHandler) SetDeliveryPersonActive(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.restaurantUC.SetDeliveryPersonActive(c.Request().Context(), tenantID, id, *req.Active); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetMenuQRCode returns the PNG QR code of the restaurant's public menu.
// The encoded URL is echoed in the X-Menu-Url header.
func (h *RestaurantHandler) GetMenuQRCode(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	qr, err := h.restaurantUC.GetMenuQRCode(c.Request().Context(), tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Menu-Url", qr.URL)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
