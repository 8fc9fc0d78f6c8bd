package postgres

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("restaurant_id = ? AND id = ?", category.RestaurantID, category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"sort_order":  category.SortOrder,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category. Products still pointing at it make the RESTRICT
// foreign key fail, reported as ErrCategoryInUse.
func (repo *categoryRepository) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		Delete(&model.CategoryModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryInUse
		}

		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category", "Restaurant").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Joins("Category").
		Where("products.restaurant_id = ? AND products.id = ?", restaurantID, id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, restaurantID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id IN ?", restaurantID, ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductDomains(productModels), nil
}

// List returns products ordered by category then name. Menu listings
// (OnlyAvailable, or no restaurant) never include deactivated restaurants.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Joins("Category")
	if filter.RestaurantID != nil {
		query = query.Where("products.restaurant_id = ?", *filter.RestaurantID)
	}
	if filter.RestaurantID == nil || filter.OnlyAvailable {
		query = query.Joins("JOIN restaurants ON restaurants.id = products.restaurant_id AND restaurants.is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.OnlyAvailable {
		query = query.Where("products.is_available = ?", true)
	}

	if err := query.
		Order(`"Category"."sort_order" ASC, products.name ASC`).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("restaurant_id = ? AND id = ?", product.RestaurantID, product.ID).
		Updates(map[string]any{
			"category_id":  product.CategoryID,
			"name":         product.Name,
			"description":  product.Description,
			"price":        product.Price,
			"image_url":    product.ImageURL,
			"is_available": product.IsAvailable,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, restaurantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) CountByCategory(ctx context.Context, restaurantID, categoryID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("restaurant_id = ? AND category_id = ?", restaurantID, categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		SortOrder:    data.SortOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		SortOrder:    data.SortOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Category != nil {
		product.CategoryName = data.Category.Name
	}

	return product
}

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
