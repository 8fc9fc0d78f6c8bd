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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice registers a delivery app installation.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.DeliveryDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Omit("DeliveryPerson").Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDeliveryPersonNotFound.WrapMessage("invalid delivery person reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryDevice, error) {
	var deviceM model.DeliveryDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByDeliveryPerson lists every device of the person, inactive ones included.
func (repo *deviceRepository) FindDevicesByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]*entity.DeliveryDevice, error) {
	return repo.findDevices(ctx, "failed to find devices by delivery person",
		"delivery_person_id = ?", deliveryPersonID)
}

func (repo *deviceRepository) FindActiveDevicesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.DeliveryDevice, error) {
	return repo.findDevices(ctx, "failed to find active devices by restaurant",
		"restaurant_id = ? AND is_active = ?", restaurantID, true)
}

func (repo *deviceRepository) FindActiveDevicesByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]*entity.DeliveryDevice, error) {
	return repo.findDevices(ctx, "failed to find active devices by delivery person",
		"delivery_person_id = ? AND is_active = ?", deliveryPersonID, true)
}

func (repo *deviceRepository) findDevices(ctx context.Context, failure, query string, args ...any) ([]*entity.DeliveryDevice, error) {
	var deviceModels []*model.DeliveryDeviceModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	devices := make([]*entity.DeliveryDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken replaces the token and reactivates the device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens marks devices whose tokens FCM rejected as inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices")
	}

	return nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(data *model.DeliveryDeviceModel) *entity.DeliveryDevice {
	if data == nil {
		return nil
	}

	return &entity.DeliveryDevice{
		ID:               data.ID,
		DeliveryPersonID: data.DeliveryPersonID,
		RestaurantID:     data.RestaurantID,
		FCMToken:         data.FCMToken,
		DeviceID:         data.DeviceID,
		Platform:         data.Platform,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.DeliveryDevice) *model.DeliveryDeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryDeviceModel{
		ID:               data.ID,
		DeliveryPersonID: data.DeliveryPersonID,
		RestaurantID:     data.RestaurantID,
		FCMToken:         data.FCMToken,
		DeviceID:         data.DeviceID,
		Platform:         data.Platform,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
