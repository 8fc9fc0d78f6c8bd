package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStaffInput describes a new admin or employee.
type CreateStaffInput struct {
	Username string
	Email    string
	Name     string
	Password string
	Role     entity.Role
}

// CreateRestaurantInput describes a new tenant and its first admin.
type CreateRestaurantInput struct {
	Identifier    string
	Name          string
	POSEnabled    bool
	POSProvider   string
	POSTerminalID string
	Admin         CreateStaffInput
}

// CreateRestaurantOutput returns the tenant and the admin created with it.
type CreateRestaurantOutput struct {
	Restaurant *entity.Restaurant
	Admin      *entity.Staff
}

// UpdateRestaurantInput holds optional changes; nil fields are left untouched.
type UpdateRestaurantInput struct {
	Name          *string
	POSEnabled    *bool
	POSProvider   *string
	POSTerminalID *string
}

// CreateDeliveryPersonInput describes a new delivery person.
type CreateDeliveryPersonInput struct {
	Username string
	Name     string
	Phone    string
	Password string
}

// MenuQRCode is a rendered QR code for a restaurant's public menu.
type MenuQRCode struct {
	URL string
	PNG []byte
}

// RestaurantUsecase manages tenants and the accounts that belong to them.
type RestaurantUsecase interface {
	CreateRestaurant(ctx context.Context, input *CreateRestaurantInput) (*CreateRestaurantOutput, error)
	ListRestaurants(ctx context.Context, includeInactive bool) ([]*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	// GetRestaurantByIdentifier resolves an active restaurant by its public slug.
	GetRestaurantByIdentifier(ctx context.Context, identifier string) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id uuid.UUID, input *UpdateRestaurantInput) (*entity.Restaurant, error)
	SetRestaurantActive(ctx context.Context, id uuid.UUID, active bool) error

	CreateStaff(ctx context.Context, restaurantID uuid.UUID, input *CreateStaffInput) (*entity.Staff, error)
	ListStaff(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Staff, error)
	CreateDeliveryPerson(ctx context.Context, restaurantID uuid.UUID, input *CreateDeliveryPersonInput) (*entity.DeliveryPerson, error)
	ListDeliveryPersons(ctx context.Context, restaurantID uuid.UUID) ([]*entity.DeliveryPerson, error)
	SetDeliveryPersonActive(ctx context.Context, restaurantID, id uuid.UUID, active bool) error

	GetMenuQRCode(ctx context.Context, restaurantID uuid.UUID) (*MenuQRCode, error)
}
