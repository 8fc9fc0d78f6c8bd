package repository

import (
	"context"
	"time"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist in the tenant.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. Zero values mean "no constraint".
type OrderFilter struct {
	RestaurantID     uuid.UUID
	Statuses         []entity.OrderStatus
	Archived         *bool
	OrderType        *entity.OrderType
	CustomerID       *uuid.UUID
	DeliveryPersonID *uuid.UUID
	// Unassigned selects orders without a delivery person; it is ignored when DeliveryPersonID is set.
	Unassigned  bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// OrderRepository persists orders, their items and their status history.
type OrderRepository interface {
	// Create inserts the order together with its items.
	Create(ctx context.Context, order *entity.Order) error
	// FindByID loads the order with its items.
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Order, error)
	// List returns the page of matching orders, newest first, and the total match count.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)
	// Update writes the mutable columns: status, delivery person, archived flag and notes.
	Update(ctx context.Context, order *entity.Order) error
	// CountByStatusSince counts the person's orders created at or after since in the given statuses.
	CountByStatusSince(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, since time.Time, statuses []entity.OrderStatus) (int64, error)
	// ListCompletedBetween returns the person's completed orders created in [from, to).
	ListCompletedBetween(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, from, to time.Time) ([]*entity.Order, error)

	AppendHistory(ctx context.Context, history *entity.OrderStatusHistory) error
	ListHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error)
}
