package usecase

import (
	"context"

	"comanda/internal/domain/constants"
	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const productsCacheKeyPrefix = "products_list_"

// ProductsCacheKey returns the cache key of a restaurant's product listing, or
// of the cross-restaurant listing when restaurantID is nil.
func ProductsCacheKey(restaurantID *uuid.UUID) string {
	if restaurantID == nil {
		return productsCacheKeyPrefix + constants.AllRestaurantsCacheScope
	}

	return productsCacheKeyPrefix + restaurantID.String()
}

// CategoryInput creates or replaces a category.
type CategoryInput struct {
	Name        string
	Description string
	SortOrder   int
}

// ProductInput creates or replaces a product. A nil IsAvailable means available
// on create and unchanged on update.
type ProductInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	IsAvailable *bool
}

// ProductListing is a serialized product list and its entity tag.
type ProductListing struct {
	Payload  []byte
	ETag     string
	CacheHit bool
}

// CatalogUsecase manages categories and products and serves the cached listing.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, restaurantID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, restaurantID, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, restaurantID, id uuid.UUID) error

	CreateProduct(ctx context.Context, restaurantID uuid.UUID, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, restaurantID, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, restaurantID, id uuid.UUID) error
	SetProductAvailability(ctx context.Context, restaurantID, id uuid.UUID, available bool) (*entity.Product, error)

	// ListProducts serves available products through the read-through cache.
	// A nil restaurantID lists every active restaurant.
	ListProducts(ctx context.Context, restaurantID *uuid.UUID) (*ProductListing, error)
	// ListManagedProducts is the uncached staff view, unavailable products included.
	ListManagedProducts(ctx context.Context, restaurantID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Product, error)
}
