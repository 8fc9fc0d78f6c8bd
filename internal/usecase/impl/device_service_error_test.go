package impl

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-fcm-token")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdateFCMToken_OtherOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.DeliveryDevice{ID: deviceID, DeliveryPersonID: uuid.New(), FCMToken: "old-token"}, nil)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-fcm-token")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.deviceRepo.AssertNotCalled(t, "UpdateFCMToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeviceService_UpdateFCMToken_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	dbError := errors.New("database connection failed")

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, dbError)

	err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-fcm-token")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find device by ID")
	assert.ErrorIs(t, err, dbError)
}

func TestDeviceService_UpdateFCMToken_UpdateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	personID := uuid.New()
	deviceID := uuid.New()
	dbError := errors.New("database update failed")

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.DeliveryDevice{ID: deviceID, DeliveryPersonID: personID}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(dbError)

	err := fx.service.UpdateFCMToken(ctx, personID, deviceID, "new-fcm-token")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update FCM token")
}

func TestDeviceService_DeactivateDevice_OtherOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.DeliveryDevice{ID: deviceID, DeliveryPersonID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_DeactivateDevice_DeleteError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	personID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.DeliveryDevice{ID: deviceID, DeliveryPersonID: personID}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(errors.New("delete failed"))

	err := fx.service.DeactivateDevice(ctx, personID, deviceID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete device")
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	personID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByDeliveryPerson(ctx, personID).
		Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(ctx, uuid.New(), personID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "android"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find devices by delivery person")
}

func TestDeviceService_GetDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	personID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByDeliveryPerson(ctx, personID).
		Return(nil, errors.New("database error"))

	devices, err := fx.service.GetDevices(ctx, personID)
	assert.Error(t, err)
	assert.Nil(t, devices)
}

func TestDeviceService_RegisterDevice_NewDevice_CreateError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	personID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByDeliveryPerson(ctx, personID).
		Return([]*entity.DeliveryDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.DeliveryDevice")).
		Return(errors.New("database insert failed"))

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), personID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "android"})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to create device")
}
