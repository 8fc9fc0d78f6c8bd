package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// Page sizes accepted by listing operations.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Actor is the authenticated account performing a change.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

// String renders the actor as recorded in the status history.
func (a Actor) String() string {
	return a.Role.String() + ":" + a.ID.String()
}

// OrderItemInput is one requested line; the price comes from the catalog.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput describes a new order.
type CreateOrderInput struct {
	RestaurantID    uuid.UUID
	CustomerID      *uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	TableNumber     string
	OrderType       entity.OrderType
	PaymentMethod   string
	Notes           string
	Items           []OrderItemInput
	Actor           Actor
}

// UpdateStatusInput requests a status transition.
type UpdateStatusInput struct {
	Status entity.OrderStatus
	Note   string
}

// OrderListInput filters and paginates order listings.
type OrderListInput struct {
	Statuses []entity.OrderStatus
	Archived *bool
	Page     int
	PageSize int
}

// OrderPage is one page of orders.
type OrderPage struct {
	Orders   []*entity.Order
	Total    int64
	Page     int
	PageSize int
}

// OrderUsecase drives the order lifecycle.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, restaurantID uuid.UUID, input *OrderListInput) (*OrderPage, error)
	ListCustomerOrders(ctx context.Context, restaurantID, customerID uuid.UUID, input *OrderListInput) (*OrderPage, error)
	// ListAssignedOrders defaults to the person's active orders when no status is given.
	ListAssignedOrders(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, input *OrderListInput) (*OrderPage, error)
	// ListAvailableOrders returns unassigned delivery orders waiting in preparing.
	ListAvailableOrders(ctx context.Context, restaurantID uuid.UUID, input *OrderListInput) (*OrderPage, error)

	// UpdateStatus applies a staff transition.
	UpdateStatus(ctx context.Context, restaurantID, id uuid.UUID, actor Actor, input *UpdateStatusInput) (*entity.Order, error)
	// UpdateDeliveryStatus applies a delivery-person transition to an order
	// assigned to the actor, or claims an unassigned one on preparing to delivering.
	UpdateDeliveryStatus(ctx context.Context, restaurantID, id uuid.UUID, actor Actor, input *UpdateStatusInput) (*entity.Order, error)
	AssignDeliveryPerson(ctx context.Context, restaurantID, id, deliveryPersonID uuid.UUID, actor Actor) (*entity.Order, error)
	ArchiveOrder(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Order, error)
	GetStatusHistory(ctx context.Context, restaurantID, id uuid.UUID) ([]*entity.OrderStatusHistory, error)
}
