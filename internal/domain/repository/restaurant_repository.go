// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
// Every tenant-owned lookup takes the restaurant ID explicitly so no query can cross tenants.
package repository

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrRestaurantNotFound is returned when a restaurant does not exist.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrDuplicateRestaurant is returned when the identifier is already taken.
	ErrDuplicateRestaurant = errors.New("restaurant identifier already exists")
)

// RestaurantFilter narrows restaurant listings.
type RestaurantFilter struct {
	IncludeInactive bool
}

// RestaurantRepository persists tenants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	// FindByIdentifier looks a restaurant up by its public slug, regardless of IsActive.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Restaurant, error)
	List(ctx context.Context, filter RestaurantFilter) ([]*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
