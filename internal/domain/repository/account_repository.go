package repository

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	ErrStaffNotFound           = errors.New("staff not found")
	ErrDuplicateStaff          = errors.New("staff username already exists")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrDuplicateCustomer       = errors.New("customer email already exists")
	ErrDeliveryPersonNotFound  = errors.New("delivery person not found")
	ErrDuplicateDeliveryPerson = errors.New("delivery person username already exists")
)

// StaffRepository persists admins and employees of a restaurant.
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Staff, error)
	FindByUsername(ctx context.Context, restaurantID uuid.UUID, username string) (*entity.Staff, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
}

// CustomerRepository persists customer accounts.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// FindByEmail looks up a customer in one scope: the given restaurant, or the
	// shared customers when restaurantID is nil. Email comparison is case-insensitive.
	FindByEmail(ctx context.Context, restaurantID *uuid.UUID, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}

// DeliveryPersonRepository persists delivery personnel of a restaurant.
type DeliveryPersonRepository interface {
	Create(ctx context.Context, person *entity.DeliveryPerson) error
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.DeliveryPerson, error)
	FindByUsername(ctx context.Context, restaurantID uuid.UUID, username string) (*entity.DeliveryPerson, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.DeliveryPerson, error)
	Update(ctx context.Context, person *entity.DeliveryPerson) error
}
