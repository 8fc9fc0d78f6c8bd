package impl

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"
	mockRepo "comanda/internal/mocks/repository"
	mockService "comanda/internal/mocks/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notifierServiceFixtures struct {
	service    usecase.NotifierUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	pusher     *mockService.MockNotificationService
}

func createTestNotifierService(t *testing.T) notifierServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pusher := mockService.NewMockNotificationService(t)

	svc := NewNotifierService(NotifierServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: pusher,
		Logger:          discardLogger(),
	})

	return notifierServiceFixtures{service: svc, deviceRepo: deviceRepo, pusher: pusher}
}

func deliveryEvent(eventType service.OrderEventType, to entity.OrderStatus) *service.OrderEvent {
	return &service.OrderEvent{
		Type:         eventType,
		OrderID:      uuid.NewString(),
		RestaurantID: uuid.NewString(),
		OrderType:    string(entity.OrderTypeDelivery),
		ToStatus:     string(to),
		Total:        "27.00",
	}
}

func TestNotifierService_NewOrderReachesRestaurantDevices(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	event := deliveryEvent(service.OrderEventCreated, entity.OrderStatusPending)
	restaurantID := uuid.MustParse(event.RestaurantID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByRestaurant(ctx, restaurantID).Return([]*entity.DeliveryDevice{
		{FCMToken: "token-a"},
		{FCMToken: "token-b"},
		{FCMToken: "token-a"},
	}, nil).Once()
	fx.pusher.EXPECT().SendBatch(ctx, []string{"token-a", "token-b"}, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ []string, msg *service.PushMessage) {
			assert.Equal(t, event.OrderID, msg.Data["order_id"])
			assert.Contains(t, msg.Body, "27.00")
		}).
		Return(&service.BatchResult{SuccessCount: 2}, nil).Once()

	result, err := fx.service.HandleOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Recipients)
	assert.Equal(t, 2, result.Sent)
}

func TestNotifierService_AssignedOrderReachesAssignee(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	personID := uuid.New()
	event := deliveryEvent(service.OrderEventAssigned, entity.OrderStatusPreparing)
	event.DeliveryPersonID = personID.String()

	fx.deviceRepo.EXPECT().FindActiveDevicesByDeliveryPerson(ctx, personID).
		Return([]*entity.DeliveryDevice{{FCMToken: "stale"}, {FCMToken: "fresh"}}, nil).Once()
	fx.pusher.EXPECT().SendBatch(ctx, []string{"stale", "fresh"}, mock.Anything).
		Return(&service.BatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"stale"}}, nil).Once()
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale"}).Return(nil).Once()

	result, err := fx.service.HandleOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Deactivated)
}

func TestNotifierService_SkipsIrrelevantEvents(t *testing.T) {
	tests := []struct {
		name  string
		event *service.OrderEvent
	}{
		{
			name: "dine-in order",
			event: func() *service.OrderEvent {
				e := deliveryEvent(service.OrderEventCreated, entity.OrderStatusPending)
				e.OrderType = string(entity.OrderTypeDineIn)

				return e
			}(),
		},
		{name: "completed order", event: deliveryEvent(service.OrderEventStatusChanged, entity.OrderStatusCompleted)},
		{name: "cancelled without driver", event: deliveryEvent(service.OrderEventStatusChanged, entity.OrderStatusCancelled)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotifierService(t)

			result, err := fx.service.HandleOrderEvent(context.Background(), tt.event)
			require.NoError(t, err)
			assert.True(t, result.Skipped)
		})
	}
}

func TestNotifierService_InvalidEvent(t *testing.T) {
	fx := createTestNotifierService(t)
	event := deliveryEvent(service.OrderEventCreated, entity.OrderStatusPending)
	event.RestaurantID = "not-a-uuid"

	_, err := fx.service.HandleOrderEvent(context.Background(), event)
	assert.ErrorIs(t, err, usecase.ErrInvalidOrderEvent)

	_, err = fx.service.HandleOrderEvent(context.Background(), &service.OrderEvent{})
	assert.ErrorIs(t, err, usecase.ErrInvalidOrderEvent)
}

func TestNotifierService_SendFailureIsReturned(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	event := deliveryEvent(service.OrderEventStatusChanged, entity.OrderStatusPreparing)

	fx.deviceRepo.EXPECT().FindActiveDevicesByRestaurant(ctx, mock.Anything).
		Return([]*entity.DeliveryDevice{{FCMToken: "token"}}, nil).Once()
	fx.pusher.EXPECT().SendBatch(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("fcm unavailable")).Once()

	_, err := fx.service.HandleOrderEvent(ctx, event)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrInvalidOrderEvent)
}

func TestNotifierService_NoDevices(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	event := deliveryEvent(service.OrderEventCreated, entity.OrderStatusPending)

	fx.deviceRepo.EXPECT().FindActiveDevicesByRestaurant(ctx, mock.Anything).Return(nil, nil).Once()

	result, err := fx.service.HandleOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Zero(t, result.Recipients)
	fx.pusher.AssertNotCalled(t, "SendBatch", mock.Anything, mock.Anything, mock.Anything)
}
