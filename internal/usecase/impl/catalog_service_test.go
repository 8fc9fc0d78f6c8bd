package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"comanda/config"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/infra/cache"
	mockRepo "comanda/internal/mocks/repository"
	mockService "comanda/internal/mocks/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service        usecase.CatalogUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	categoryRepo   *mockRepo.MockCategoryRepository
	productRepo    *mockRepo.MockProductRepository
	cache          *mockService.MockCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cacheMock := mockService.NewMockCache(t)

	svc := NewCatalogService(CatalogServiceParams{
		RestaurantRepo: restaurantRepo,
		CategoryRepo:   categoryRepo,
		ProductRepo:    productRepo,
		Cache:          cacheMock,
		Config:         &config.Config{Cache: &config.CacheConfig{TTL: time.Minute}},
		Logger:         discardLogger(),
	})

	return catalogServiceFixtures{
		service:        svc,
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		cache:          cacheMock,
	}
}

func expectActiveRestaurant(fx catalogServiceFixtures, restaurantID uuid.UUID) {
	fx.restaurantRepo.EXPECT().
		FindByID(mock.Anything, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Identifier: "pizzeria", IsActive: true}, nil).
		Once()
}

func expectListingInvalidation(fx catalogServiceFixtures, restaurantID uuid.UUID, err error) {
	fx.cache.EXPECT().
		Delete(mock.Anything, "products_list_"+restaurantID.String(), "products_list_all").
		Return(err).
		Once()
}

func TestCatalogService_ListProducts_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	payload := []byte(`[{"name":"Margherita"}]`)

	fx.cache.EXPECT().Get(ctx, "products_list_"+restaurantID.String()).Return(payload, nil).Once()

	listing, err := fx.service.ListProducts(ctx, &restaurantID)
	require.NoError(t, err)
	assert.True(t, listing.CacheHit)
	assert.Equal(t, payload, listing.Payload)
	assert.Equal(t, computeETag(payload), listing.ETag)
	fx.productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCatalogService_ListProducts_CacheMissStoresPayload(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	key := "products_list_" + restaurantID.String()

	products := []*entity.Product{{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         "Margherita",
		Price:        decimal.RequireFromString("9.50"),
		IsAvailable:  true,
	}}
	expected, err := json.Marshal(products)
	require.NoError(t, err)

	fx.cache.EXPECT().Get(ctx, key).Return(nil, service.ErrCacheMiss).Once()
	expectActiveRestaurant(fx, restaurantID)
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{RestaurantID: &restaurantID, OnlyAvailable: true}).
		Return(products, nil).
		Once()
	fx.cache.EXPECT().Set(ctx, key, expected, time.Minute).Return(nil).Once()

	listing, err := fx.service.ListProducts(ctx, &restaurantID)
	require.NoError(t, err)
	assert.False(t, listing.CacheHit)
	assert.JSONEq(t, string(expected), string(listing.Payload))
	assert.Equal(t, computeETag(expected), listing.ETag)
}

func TestCatalogService_ListProducts_AllRestaurantsKey(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "products_list_all").Return(nil, service.ErrCacheMiss).Once()
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{OnlyAvailable: true}).
		Return([]*entity.Product{}, nil).
		Once()
	fx.cache.EXPECT().Set(ctx, "products_list_all", []byte("[]"), time.Minute).Return(nil).Once()

	listing, err := fx.service.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(listing.Payload))
}

func TestCatalogService_ListProducts_CacheFailuresDegrade(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	key := "products_list_" + restaurantID.String()

	fx.cache.EXPECT().Get(ctx, key).Return(nil, errors.New("redis: connection refused")).Once()
	expectActiveRestaurant(fx, restaurantID)
	fx.productRepo.EXPECT().List(ctx, mock.Anything).Return([]*entity.Product{}, nil).Once()
	fx.cache.EXPECT().Set(ctx, key, mock.Anything, time.Minute).Return(errors.New("redis: connection refused")).Once()

	listing, err := fx.service.ListProducts(ctx, &restaurantID)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(listing.Payload))
	assert.NotEmpty(t, listing.ETag)
}

func TestCatalogService_ListProducts_UnlistedRestaurants(t *testing.T) {
	tests := []struct {
		name       string
		restaurant *entity.Restaurant
		findErr    error
	}{
		{name: "deactivated", restaurant: &entity.Restaurant{Identifier: "closed", IsActive: false}},
		{name: "unknown", findErr: repository.ErrRestaurantNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()
			restaurantID := uuid.New()

			fx.cache.EXPECT().Get(ctx, "products_list_"+restaurantID.String()).Return(nil, service.ErrCacheMiss).Once()
			fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(tt.restaurant, tt.findErr).Once()

			listing, err := fx.service.ListProducts(ctx, &restaurantID)
			assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
			assert.Nil(t, listing)
			fx.productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
			fx.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCatalogService_ProductWriteIsVisibleThroughMemoryCache(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	memory := cache.NewMemoryCache(discardLogger())

	svc := NewCatalogService(CatalogServiceParams{
		RestaurantRepo: restaurantRepo,
		CategoryRepo:   categoryRepo,
		ProductRepo:    productRepo,
		Cache:          memory,
		Config:         &config.Config{Cache: &config.CacheConfig{TTL: time.Minute}},
		Logger:         discardLogger(),
	})

	ctx := context.Background()
	restaurantID := uuid.New()
	category := &entity.Category{ID: uuid.New(), RestaurantID: restaurantID, Name: "Pizzas"}
	stored := entity.Product{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Name:         "Margherita",
		Price:        decimal.RequireFromString("9.50"),
		IsAvailable:  true,
	}
	filter := repository.ProductFilter{RestaurantID: &restaurantID, OnlyAvailable: true}

	restaurantRepo.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Identifier: "pizzeria", IsActive: true}, nil).
		Times(2)

	before := stored
	productRepo.EXPECT().List(ctx, filter).Return([]*entity.Product{&before}, nil).Once()

	first, err := svc.ListProducts(ctx, &restaurantID)
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	cached, err := svc.ListProducts(ctx, &restaurantID)
	require.NoError(t, err)
	assert.True(t, cached.CacheHit)
	assert.Equal(t, first.ETag, cached.ETag)

	loaded := stored
	productRepo.EXPECT().FindByID(ctx, restaurantID, stored.ID).Return(&loaded, nil).Once()
	categoryRepo.EXPECT().FindByID(ctx, restaurantID, category.ID).Return(category, nil).Once()
	productRepo.EXPECT().Update(ctx, &loaded).Return(nil).Once()

	_, err = svc.UpdateProduct(ctx, restaurantID, stored.ID, &usecase.ProductInput{
		CategoryID: category.ID,
		Name:       "Margherita",
		Price:      decimal.RequireFromString("11.00"),
	})
	require.NoError(t, err)

	after := stored
	after.Price = decimal.RequireFromString("11.00")
	productRepo.EXPECT().List(ctx, filter).Return([]*entity.Product{&after}, nil).Once()

	fresh, err := svc.ListProducts(ctx, &restaurantID)
	require.NoError(t, err)
	assert.False(t, fresh.CacheHit)
	assert.NotEqual(t, first.ETag, fresh.ETag)

	var products []entity.Product
	require.NoError(t, json.Unmarshal(fresh.Payload, &products))
	require.Len(t, products, 1)
	assert.True(t, decimal.RequireFromString("11").Equal(products[0].Price), "price %s", products[0].Price)
}

func TestCatalogService_ListProducts_RepositoryError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "products_list_all").Return(nil, service.ErrCacheMiss).Once()
	fx.productRepo.EXPECT().List(ctx, mock.Anything).Return(nil, errors.New("db down")).Once()

	listing, err := fx.service.ListProducts(ctx, nil)
	require.Error(t, err)
	assert.Nil(t, listing)
}

func TestComputeETag_IsStableAndQuoted(t *testing.T) {
	first := computeETag([]byte("payload"))
	second := computeETag([]byte("payload"))

	assert.Equal(t, first, second)
	assert.Len(t, first, 66)
	assert.Equal(t, byte('"'), first[0])
	assert.NotEqual(t, first, computeETag([]byte("other")))
}

func TestCatalogService_CreateProduct(t *testing.T) {
	restaurantID := uuid.New()
	category := &entity.Category{ID: uuid.New(), RestaurantID: restaurantID, Name: "Pizzas"}

	t.Run("invalidates tenant and global listings", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().FindByID(ctx, restaurantID, category.ID).Return(category, nil).Once()
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
			Run(func(_ context.Context, product *entity.Product) {
				assert.Equal(t, "Margherita", product.Name)
				assert.Equal(t, "Pizzas", product.CategoryName)
				assert.True(t, product.IsAvailable)
				assert.Equal(t, "9.5", product.Price.String())
			}).
			Return(nil).
			Once()
		expectListingInvalidation(fx, restaurantID, nil)

		product, err := fx.service.CreateProduct(ctx, restaurantID, &usecase.ProductInput{
			CategoryID: category.ID,
			Name:       " Margherita ",
			Price:      decimal.RequireFromString("9.499"),
		})
		require.NoError(t, err)
		assert.Equal(t, restaurantID, product.RestaurantID)
	})

	t.Run("category of another restaurant", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		foreign := uuid.New()

		fx.categoryRepo.EXPECT().FindByID(ctx, restaurantID, foreign).Return(nil, repository.ErrCategoryNotFound).Once()

		_, err := fx.service.CreateProduct(ctx, restaurantID, &usecase.ProductInput{CategoryID: foreign, Name: "X", Price: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryMismatch)
	})

	t.Run("invalidation failure does not fail the write", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().FindByID(ctx, restaurantID, category.ID).Return(category, nil).Once()
		fx.productRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		expectListingInvalidation(fx, restaurantID, errors.New("redis: timeout"))

		_, err := fx.service.CreateProduct(ctx, restaurantID, &usecase.ProductInput{CategoryID: category.ID, Name: "X", Price: decimal.NewFromInt(1)})
		assert.NoError(t, err)
	})

	t.Run("negative price is rejected before any lookup", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateProduct(context.Background(), restaurantID, &usecase.ProductInput{
			CategoryID: category.ID,
			Name:       "X",
			Price:      decimal.NewFromInt(-1),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_SetProductAvailability(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	product := &entity.Product{ID: uuid.New(), RestaurantID: restaurantID, Name: "Taco", IsAvailable: true}

	fx.productRepo.EXPECT().FindByID(ctx, restaurantID, product.ID).Return(product, nil).Once()
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil).Once()
	expectListingInvalidation(fx, restaurantID, nil)

	updated, err := fx.service.SetProductAvailability(ctx, restaurantID, product.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID, id := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, restaurantID, id).Return(nil, repository.ErrProductNotFound).Once()

	_, err := fx.service.GetProduct(ctx, restaurantID, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID, id := uuid.New(), uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, restaurantID, id).Return(nil).Once()
	expectListingInvalidation(fx, restaurantID, nil)

	assert.NoError(t, fx.service.DeleteProduct(ctx, restaurantID, id))
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	restaurantID := uuid.New()
	category := &entity.Category{ID: uuid.New(), RestaurantID: restaurantID, Name: "Drinks"}

	t.Run("refused while products reference it", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().FindByID(ctx, restaurantID, category.ID).Return(category, nil).Once()
		fx.productRepo.EXPECT().CountByCategory(ctx, restaurantID, category.ID).Return(int64(3), nil).Once()

		err := fx.service.DeleteCategory(ctx, restaurantID, category.ID)
		assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
	})

	t.Run("empty category", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.categoryRepo.EXPECT().FindByID(ctx, restaurantID, category.ID).Return(category, nil).Once()
		fx.productRepo.EXPECT().CountByCategory(ctx, restaurantID, category.ID).Return(int64(0), nil).Once()
		fx.categoryRepo.EXPECT().Delete(ctx, restaurantID, category.ID).Return(nil).Once()
		expectListingInvalidation(fx, restaurantID, nil)

		assert.NoError(t, fx.service.DeleteCategory(ctx, restaurantID, category.ID))
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.categoryRepo.EXPECT().FindByID(ctx, restaurantID, id).Return(nil, repository.ErrCategoryNotFound).Once()

		err := fx.service.DeleteCategory(ctx, restaurantID, id)
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestCatalogService_UpdateCategory_InvalidatesListings(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	category := &entity.Category{ID: uuid.New(), RestaurantID: restaurantID, Name: "Old"}

	fx.categoryRepo.EXPECT().FindByID(ctx, restaurantID, category.ID).Return(category, nil).Once()
	fx.categoryRepo.EXPECT().Update(ctx, category).Return(nil).Once()
	expectListingInvalidation(fx, restaurantID, nil)

	updated, err := fx.service.UpdateCategory(ctx, restaurantID, category.ID, &usecase.CategoryInput{Name: " Pizzas ", SortOrder: 2})
	require.NoError(t, err)
	assert.Equal(t, "Pizzas", updated.Name)
	assert.Equal(t, 2, updated.SortOrder)
}
