package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"comanda/internal/delivery/api/response"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	mockUsecase "comanda/internal/mocks/usecase"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testETag = `"4f53cda18c2baa0c0354bb5f9a3ecbe5ed12ab4d8e11ba873c2f11161202b945"`

func newTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.Default()}), catalogUC
}

func TestCatalogHandler_ListPublicProducts(t *testing.T) {
	payload := []byte(`[{"name":"Margherita","price":"9.5"}]`)
	listing := &usecase.ProductListing{Payload: payload, ETag: testETag}

	t.Run("serves payload with entity tag", func(t *testing.T) {
		h, catalogUC := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/public/products?restaurant_id="+testRestaurantID.String(), nil)

		catalogUC.EXPECT().ListProducts(mock.Anything, &testRestaurantID).Return(listing, nil).Once()

		require.NoError(t, h.ListPublicProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, testETag, rec.Header().Get(response.HeaderETag))

		var products []map[string]any
		decodeData(t, rec, &products)
		require.Len(t, products, 1)
		assert.Equal(t, "Margherita", products[0]["name"])
	})

	t.Run("matching If-None-Match answers 304", func(t *testing.T) {
		h, catalogUC := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/public/products", nil)
		c.Request().Header.Set(response.HeaderIfNoneMatch, testETag)

		catalogUC.EXPECT().ListProducts(mock.Anything, (*uuid.UUID)(nil)).Return(listing, nil).Once()

		require.NoError(t, h.ListPublicProducts(c))
		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
		assert.Equal(t, testETag, rec.Header().Get(response.HeaderETag))
	})

	t.Run("stale If-None-Match gets the full listing", func(t *testing.T) {
		h, catalogUC := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/public/products", nil)
		c.Request().Header.Set(response.HeaderIfNoneMatch, `"stale"`)

		catalogUC.EXPECT().ListProducts(mock.Anything, (*uuid.UUID)(nil)).Return(listing, nil).Once()

		require.NoError(t, h.ListPublicProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed restaurant_id", func(t *testing.T) {
		h, _ := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/public/products?restaurant_id=nope", nil)

		require.NoError(t, h.ListPublicProducts(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("unlisted restaurant is not found", func(t *testing.T) {
		h, catalogUC := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/api/v1/public/products?restaurant_id="+testRestaurantID.String(), nil)

		catalogUC.EXPECT().ListProducts(mock.Anything, &testRestaurantID).Return(nil, domainerrors.ErrRestaurantNotFound).Once()

		require.NoError(t, h.ListPublicProducts(c))
		assertErrorCode(t, rec, http.StatusNotFound, "RESTAURANT_NOT_FOUND")
		assert.Empty(t, rec.Header().Get(response.HeaderETag))
	})
}

func TestETagMatches(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "empty header", header: "", want: false},
		{name: "exact", header: testETag, want: true},
		{name: "weak validator", header: "W/" + testETag, want: true},
		{name: "in list", header: `"a", ` + testETag, want: true},
		{name: "wildcard", header: "*", want: true},
		{name: "other tag", header: `"a"`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, etagMatches(tt.header, testETag))
		})
	}
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	categoryID := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, catalogUC := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/staff/products", map[string]any{
			"category_id": categoryID.String(),
			"name":        "Margherita",
			"price":       "9.50",
		})
		withClaims(c, entity.RoleAdmin)

		catalogUC.EXPECT().CreateProduct(mock.Anything, testRestaurantID, mock.AnythingOfType("*usecase.ProductInput")).
			RunAndReturn(func(_ context.Context, restaurantID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
				assert.Equal(t, categoryID, input.CategoryID)
				assert.True(t, input.Price.Equal(decimal.RequireFromString("9.5")))
				assert.Nil(t, input.IsAvailable)

				return &entity.Product{ID: uuid.New(), RestaurantID: restaurantID, Name: input.Name, Price: input.Price, IsAvailable: true}, nil
			}).
			Once()

		require.NoError(t, serveTenant(c, h.CreateProduct))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing name never reaches the usecase", func(t *testing.T) {
		h, _ := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/staff/products", map[string]any{
			"category_id": categoryID.String(),
			"price":       1,
		})
		withClaims(c, entity.RoleAdmin)

		require.NoError(t, serveTenant(c, h.CreateProduct))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("foreign category", func(t *testing.T) {
		h, catalogUC := newTestCatalogHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/staff/products", map[string]any{
			"category_id": categoryID.String(),
			"name":        "X",
			"price":       1,
		})
		withClaims(c, entity.RoleAdmin)

		catalogUC.EXPECT().CreateProduct(mock.Anything, testRestaurantID, mock.Anything).Return(nil, domainerrors.ErrCategoryMismatch).Once()

		require.NoError(t, serveTenant(c, h.CreateProduct))
		assertErrorCode(t, rec, http.StatusBadRequest, "CATEGORY_MISMATCH")
	})
}

func TestCatalogHandler_DeleteCategoryInUse(t *testing.T) {
	h, catalogUC := newTestCatalogHandler(t)
	categoryID := uuid.New()
	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/staff/categories/"+categoryID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())
	withClaims(c, entity.RoleAdmin)

	catalogUC.EXPECT().DeleteCategory(mock.Anything, testRestaurantID, categoryID).Return(domainerrors.ErrCategoryInUse).Once()

	require.NoError(t, serveTenant(c, h.DeleteCategory))
	assertErrorCode(t, rec, http.StatusConflict, "CATEGORY_IN_USE")
}
