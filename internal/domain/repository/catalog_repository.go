package repository

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// ProductFilter narrows product listings. A nil RestaurantID lists every tenant.
// Without a restaurant, or with OnlyAvailable, products of deactivated
// restaurants are left out.
type ProductFilter struct {
	RestaurantID  *uuid.UUID
	CategoryID    *uuid.UUID
	OnlyAvailable bool
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, restaurantID, id uuid.UUID) error
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Product, error)
	// FindByIDs returns the products of the restaurant among ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, restaurantID, id uuid.UUID) error
	CountByCategory(ctx context.Context, restaurantID, categoryID uuid.UUID) (int64, error)
}
