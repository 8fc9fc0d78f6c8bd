package repository

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for delivery device persistence.
type DeviceRepository interface {
	// CreateDevice persists a new device for a delivery person.
	CreateDevice(ctx context.Context, device *entity.DeliveryDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryDevice, error)

	// FindDevicesByDeliveryPerson retrieves all devices of a delivery person (including inactive).
	FindDevicesByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]*entity.DeliveryDevice, error)

	// FindActiveDevicesByRestaurant retrieves the active devices of every delivery person of a restaurant.
	FindActiveDevicesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.DeliveryDevice, error)

	// FindActiveDevicesByDeliveryPerson retrieves the active devices of one delivery person.
	FindActiveDevicesByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]*entity.DeliveryDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks every device holding one of the tokens inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
