package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for delivery device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, deviceInfo *DeviceInfo) (*entity.DeliveryDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, deliveryPersonID, deviceID uuid.UUID, fcmToken string) error

	// GetDevices retrieves all active devices of a delivery person
	GetDevices(ctx context.Context, deliveryPersonID uuid.UUID) ([]*entity.DeliveryDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, deliveryPersonID, deviceID uuid.UUID) error
}
