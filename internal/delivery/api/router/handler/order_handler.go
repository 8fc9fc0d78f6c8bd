package handler

import (
	"context"
	"log/slog"
	"net/http"

	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/response"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order endpoints of customers, staff and delivery persons.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested line; the price comes from the catalog.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	OrderType       string             `json:"order_type" validate:"required,oneof=delivery dine_in takeaway"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerEmail   string             `json:"customer_email" validate:"omitempty,email"`
	DeliveryAddress string             `json:"delivery_address"`
	TableNumber     string             `json:"table_number"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	Notes           string             `json:"notes"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateStatusRequest requests a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=500"`
}

// AssignDeliveryPersonRequest assigns an order to a delivery person
type AssignDeliveryPersonRequest struct {
	DeliveryPersonID string `json:"delivery_person_id" validate:"required"`
}

// CreateCustomerOrder places an order on behalf of the authenticated customer.
// Contact fields left empty are filled from the token.
func (h *OrderHandler) CreateCustomerOrder(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := bindOrder(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customerID := claims.UserID
	input.RestaurantID = tenantID
	input.CustomerID = &customerID
	input.Actor = usecase.Actor{ID: claims.UserID, Role: claims.Role}
	if input.CustomerName == "" {
		input.CustomerName = claims.Name
	}
	if input.CustomerEmail == "" {
		input.CustomerEmail = claims.Email
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// CreateStaffOrder places an order taken by staff, e.g. at a table.
func (h *OrderHandler) CreateStaffOrder(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := bindOrder(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.RestaurantID = tenantID
	input.Actor = actor

	order, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListCustomerOrders lists the authenticated customer's orders
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := orderListParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.orderUC.ListCustomerOrders(c.Request().Context(), tenantID, customerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page.Orders, page.Total, page.Page, page.PageSize)
}

// GetCustomerOrder returns one of the customer's own orders; other orders read as not found.
func (h *OrderHandler) GetCustomerOrder(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	customerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), tenantID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if order.CustomerID == nil || *order.CustomerID != customerID {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders lists the restaurant's orders for staff
func (h *OrderHandler) ListOrders(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	input, err := orderListParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), tenantID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page.Orders, page.Total, page.Page, page.PageSize)
}

// GetOrder returns one order of the restaurant
func (h *OrderHandler) GetOrder(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), tenantID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus applies a staff status transition
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	return h.updateStatus(c, h.orderUC.UpdateStatus)
}

// UpdateDeliveryStatus applies a delivery person status transition
func (h *OrderHandler) UpdateDeliveryStatus(c echo.Context) error {
	return h.updateStatus(c, h.orderUC.UpdateDeliveryStatus)
}

type statusUpdater func(ctx context.Context, restaurantID, id uuid.UUID, actor usecase.Actor, input *usecase.UpdateStatusInput) (*entity.Order, error)

func (h *OrderHandler) updateStatus(c echo.Context, update statusUpdater) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := update(c.Request().Context(), tenantID, id, actor, &usecase.UpdateStatusInput{
		Status: entity.OrderStatus(req.Status),
		Note:   req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// AssignDeliveryPerson assigns an order to a delivery person of the restaurant
func (h *OrderHandler) AssignDeliveryPerson(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssignDeliveryPersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	deliveryPersonID, err := uuid.Parse(req.DeliveryPersonID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("invalid delivery_person_id"))
	}

	order, err := h.orderUC.AssignDeliveryPerson(c.Request().Context(), tenantID, id, deliveryPersonID, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ArchiveOrder hides a completed or cancelled order from the default listings
func (h *OrderHandler) ArchiveOrder(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.ArchiveOrder(c.Request().Context(), tenantID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetStatusHistory returns the audit trail of an order, oldest first
func (h *OrderHandler) GetStatusHistory(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history, err := h.orderUC.GetStatusHistory(c.Request().Context(), tenantID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// ListAssignedOrders lists the delivery person's orders, active ones by default
func (h *OrderHandler) ListAssignedOrders(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	deliveryPersonID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := orderListParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.orderUC.ListAssignedOrders(c.Request().Context(), tenantID, deliveryPersonID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page.Orders, page.Total, page.Page, page.PageSize)
}

// ListAvailableOrders lists unassigned delivery orders ready to be picked up
func (h *OrderHandler) ListAvailableOrders(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	input, err := orderListParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.orderUC.ListAvailableOrders(c.Request().Context(), tenantID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page.Orders, page.Total, page.Page, page.PageSize)
}

func bindOrder(c echo.Context) (*usecase.CreateOrderInput, error) {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, domainerrors.NewValidationError("invalid product_id %q", item.ProductID)
		}
		items = append(items, usecase.OrderItemInput{ProductID: productID, Quantity: item.Quantity})
	}

	return &usecase.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		TableNumber:     req.TableNumber,
		OrderType:       entity.OrderType(req.OrderType),
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Items:           items,
	}, nil
}
