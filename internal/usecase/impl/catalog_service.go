package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"comanda/config"
	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultProductListTTL = 5 * time.Minute

type catalogService struct {
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	productRepo    repository.ProductRepository
	cache          service.Cache
	cacheTTL       time.Duration
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	CategoryRepo   repository.CategoryRepository
	ProductRepo    repository.ProductRepository
	Cache          service.Cache
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	ttl := defaultProductListTTL
	if params.Config != nil && params.Config.Cache != nil && params.Config.Cache.TTL > 0 {
		ttl = params.Config.Cache.TTL
	}

	return &catalogService{
		restaurantRepo: params.RestaurantRepo,
		categoryRepo:   params.CategoryRepo,
		productRepo:    params.ProductRepo,
		cache:          params.Cache,
		cacheTTL:       ttl,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) CreateCategory(ctx context.Context, restaurantID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		SortOrder:    input.SortOrder,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *catalogService) ListCategories(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateCategory renames a category. Listings embed the category name, so they
// are invalidated.
func (srv *catalogService) UpdateCategory(ctx context.Context, restaurantID, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.findCategory(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Description = strings.TrimSpace(input.Description)
	category.SortOrder = input.SortOrder

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	invalidateProductListings(ctx, srv.cache, srv.log(ctx), restaurantID)

	return category, nil
}

// DeleteCategory refuses while products still reference the category.
func (srv *catalogService) DeleteCategory(ctx context.Context, restaurantID, id uuid.UUID) error {
	if _, err := srv.findCategory(ctx, restaurantID, id); err != nil {
		return err
	}

	count, err := srv.productRepo.CountByCategory(ctx, restaurantID, id)
	if err != nil {
		return errors.Wrap(err, "failed to count category products")
	}
	if count > 0 {
		return domainerrors.ErrCategoryInUse
	}

	if err := srv.categoryRepo.Delete(ctx, restaurantID, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	invalidateProductListings(ctx, srv.cache, srv.log(ctx), restaurantID)

	return nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, restaurantID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	category, err := srv.productCategory(ctx, restaurantID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		RestaurantID: restaurantID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Price:        input.Price.Round(2),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		IsAvailable:  input.IsAvailable == nil || *input.IsAvailable,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	invalidateProductListings(ctx, srv.cache, srv.log(ctx), restaurantID)

	return product, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, restaurantID, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, restaurantID, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.GetProduct(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}

	category, err := srv.productCategory(ctx, restaurantID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	product.CategoryID = category.ID
	product.CategoryName = category.Name
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price.Round(2)
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}

	return product, srv.saveProduct(ctx, product)
}

func (srv *catalogService) DeleteProduct(ctx context.Context, restaurantID, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, restaurantID, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	invalidateProductListings(ctx, srv.cache, srv.log(ctx), restaurantID)

	return nil
}

func (srv *catalogService) SetProductAvailability(ctx context.Context, restaurantID, id uuid.UUID, available bool) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}

	product.IsAvailable = available

	return product, srv.saveProduct(ctx, product)
}

// ListProducts serves the listing from cache when possible. The entity tag is a
// hash of the payload, so a hit and a fresh build of the same data agree.
// A missing or deactivated restaurant is reported as not found and never cached;
// deactivation drops any listing cached before it.
func (srv *catalogService) ListProducts(ctx context.Context, restaurantID *uuid.UUID) (*usecase.ProductListing, error) {
	key := usecase.ProductsCacheKey(restaurantID)

	payload, err := srv.cache.Get(ctx, key)
	if err == nil {
		return &usecase.ProductListing{Payload: payload, ETag: computeETag(payload), CacheHit: true}, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Product cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	if restaurantID != nil {
		if _, err := requireActiveRestaurant(ctx, srv.restaurantRepo, *restaurantID); err != nil {
			if errors.Is(err, domainerrors.ErrRestaurantInactive) {
				return nil, domainerrors.ErrRestaurantNotFound
			}

			return nil, err
		}
	}

	products, err := srv.productRepo.List(ctx, repository.ProductFilter{
		RestaurantID:  restaurantID,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	payload, err = json.Marshal(products)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product listing")
	}

	if err := srv.cache.Set(ctx, key, payload, srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return &usecase.ProductListing{Payload: payload, ETag: computeETag(payload)}, nil
}

func (srv *catalogService) ListManagedProducts(ctx context.Context, restaurantID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ProductFilter{
		RestaurantID: &restaurantID,
		CategoryID:   categoryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) saveProduct(ctx context.Context, product *entity.Product) error {
	if err := srv.productRepo.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrCategoryNotFound):
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to update product")
	}

	invalidateProductListings(ctx, srv.cache, srv.log(ctx), product.RestaurantID)

	return nil
}

func (srv *catalogService) findCategory(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, restaurantID, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// productCategory resolves the category a product points at. A category of
// another restaurant is indistinguishable from a missing one.
func (srv *catalogService) productCategory(ctx context.Context, restaurantID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, restaurantID, categoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryMismatch
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// computeETag returns the strong entity tag of a payload: the quoted hex SHA-256.
func computeETag(payload []byte) string {
	sum := sha256.Sum256(payload)

	return `"` + hex.EncodeToString(sum[:]) + `"`
}

func validateProductInput(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.NewValidationError("product name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.NewValidationError("product price must not be negative")
	}

	return nil
}
