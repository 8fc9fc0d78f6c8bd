package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/response"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves categories, products and the cached public menu.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest creates or replaces a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// ProductRequest creates or replaces a product. Price accepts a JSON number or string.
type ProductRequest struct {
	CategoryID  string          `json:"category_id" validate:"required"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
	IsAvailable *bool           `json:"is_available"`
}

// AvailabilityRequest toggles whether a product can be ordered.
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// ListPublicProducts serves the cached menu. Without restaurant_id it lists every
// active restaurant. A matching If-None-Match answers 304 with no body.
func (h *CatalogHandler) ListPublicProducts(c echo.Context) error {
	restaurantID, err := optionalQueryUUID(c, middleware.QueryRestaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.catalogUC.ListProducts(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if etagMatches(c.Request().Header.Get(response.HeaderIfNoneMatch), listing.ETag) {
		return response.NotModified(c, listing.ETag)
	}

	c.Response().Header().Set(response.HeaderETag, listing.ETag)

	return response.Success(c, http.StatusOK, json.RawMessage(listing.Payload))
}

// ListProducts is the staff view, unavailable products included.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	categoryID, err := optionalQueryUUID(c, "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListManagedProducts(c.Request().Context(), tenantID, categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateCategory handles category creation
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), tenantID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// ListCategories handles listing the categories of the restaurant
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	categories, err := h.catalogUC.ListCategories(c.Request().Context(), tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// UpdateCategory handles category rename and reordering
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), tenantID, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory handles category deletion
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), tenantID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateProduct handles product creation
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	input, err := h.bindProduct(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), tenantID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// GetProduct handles fetching one product of the restaurant
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), tenantID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UpdateProduct handles replacing a product
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := h.bindProduct(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), tenantID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles product deletion
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), tenantID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetProductAvailability handles toggling a product on or off the menu
func (h *CatalogHandler) SetProductAvailability(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.SetProductAvailability(c.Request().Context(), tenantID, id, *req.Available)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *CatalogHandler) bindProduct(c echo.Context) (*usecase.ProductInput, error) {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domainerrors.NewValidationError("invalid category_id")
	}

	return &usecase.ProductInput{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}, nil
}

func (r *CategoryRequest) toInput() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}
}

// etagMatches implements the If-None-Match comparison, including lists and "*".
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}

	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}

	return false
}
