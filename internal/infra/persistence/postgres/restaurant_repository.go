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

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRestaurant
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *restaurantRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Restaurant, error) {
	return repo.findOne(ctx, "identifier = ?", identifier)
}

func (repo *restaurantRepository) findOne(ctx context.Context, query string, arg any) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return toRestaurantDomain(&restaurantM), nil
}

func (repo *restaurantRepository) List(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]any{
			"identifier":      restaurant.Identifier,
			"name":            restaurant.Name,
			"is_active":       restaurant.IsActive,
			"pos_enabled":     restaurant.POSEnabled,
			"pos_provider":    restaurant.POSProvider,
			"pos_terminal_id": restaurant.POSTerminalID,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateRestaurant
		}

		return errors.Wrap(result.Error, "failed to update restaurant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

func (repo *restaurantRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update restaurant status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:            data.ID,
		Identifier:    data.Identifier,
		Name:          data.Name,
		IsActive:      data.IsActive,
		POSEnabled:    data.POSEnabled,
		POSProvider:   data.POSProvider,
		POSTerminalID: data.POSTerminalID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:            data.ID,
		Identifier:    data.Identifier,
		Name:          data.Name,
		IsActive:      data.IsActive,
		POSEnabled:    data.POSEnabled,
		POSProvider:   data.POSProvider,
		POSTerminalID: data.POSTerminalID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
