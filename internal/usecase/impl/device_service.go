package impl

import (
	"context"
	"log/slog"
	"strings"

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

// ErrDeviceForbidden is returned when a delivery person touches a device they do not own.
var ErrDeviceForbidden = domainerrors.ErrForbidden.WithMessage("Device belongs to another delivery person")

type deviceService struct {
	deviceRepo repository.DeviceRepository
	clock      service.Clock
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Clock      service.Clock
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		clock:      params.Clock,
		logger:     params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.DeliveryDevice, error) {
	platform := strings.ToLower(strings.TrimSpace(deviceInfo.Platform))
	if platform != "ios" && platform != "android" {
		return nil, domainerrors.NewValidationError("platform must be ios or android")
	}

	devices, err := s.deviceRepo.FindDevicesByDeliveryPerson(ctx, deliveryPersonID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by delivery person")
	}

	// A reinstall keeps the device id; refresh its token instead of adding a row.
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updatedDevice, nil
	}

	now := s.clock.Now().UTC()
	device := &entity.DeliveryDevice{
		ID:               uuid.New(),
		DeliveryPersonID: deliveryPersonID,
		RestaurantID:     restaurantID,
		FCMToken:         deviceInfo.FCMToken,
		DeviceID:         deviceInfo.DeviceID,
		Platform:         platform,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WithMessage("Device already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	s.log(ctx).Info("Delivery device registered",
		slog.String("deliveryPersonID", deliveryPersonID.String()),
		slog.String("platform", platform),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, deliveryPersonID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, deliveryPersonID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetDevices retrieves all active devices of a delivery person
func (s *deviceService) GetDevices(ctx context.Context, deliveryPersonID uuid.UUID) ([]*entity.DeliveryDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByDeliveryPerson(ctx, deliveryPersonID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by delivery person")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, deliveryPersonID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, deliveryPersonID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, deliveryPersonID, deviceID uuid.UUID) (*entity.DeliveryDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.DeliveryPersonID != deliveryPersonID {
		return nil, ErrDeviceForbidden
	}

	return device, nil
}
