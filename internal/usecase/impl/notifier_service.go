package impl

import (
	"context"
	"log/slog"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipientScope says whose devices receive a push.
type recipientScope int

const (
	scopeNone recipientScope = iota
	scopeRestaurant
	scopeAssignee
)

type notifierService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotifierService creates a new notifier service instance
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	return &notifierService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleOrderEvent pushes the event to the delivery devices it concerns. Tokens
// the provider reports as unregistered are deactivated.
func (s *notifierService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotifyResult, error) {
	if event == nil || event.Type == "" {
		return nil, errors.Wrap(usecase.ErrInvalidOrderEvent, "missing event type")
	}

	restaurantID, err := uuid.Parse(event.RestaurantID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrInvalidOrderEvent, "restaurant id %q", event.RestaurantID)
	}

	scope, msg := routeOrderEvent(event)
	if scope == scopeNone {
		return &usecase.NotifyResult{Skipped: true}, nil
	}

	var devices []*entity.DeliveryDevice
	switch scope {
	case scopeRestaurant:
		devices, err = s.deviceRepo.FindActiveDevicesByRestaurant(ctx, restaurantID)
	case scopeAssignee:
		personID, parseErr := uuid.Parse(event.DeliveryPersonID)
		if parseErr != nil {
			return nil, errors.Wrapf(usecase.ErrInvalidOrderEvent, "delivery person id %q", event.DeliveryPersonID)
		}
		devices, err = s.deviceRepo.FindActiveDevicesByDeliveryPerson(ctx, personID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipient devices")
	}

	tokens := uniqueTokens(devices)
	result := &usecase.NotifyResult{Recipients: len(tokens)}
	if len(tokens) == 0 {
		return result, nil
	}

	batch, err := s.notificationSvc.SendBatch(ctx, tokens, msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send push notifications")
	}
	result.Sent = batch.SuccessCount
	result.Failed = batch.FailureCount

	if len(batch.InvalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByTokens(ctx, batch.InvalidTokens); err != nil {
			s.log(ctx).Warn("Failed to deactivate unregistered devices", slog.Any("error", err))
		} else {
			result.Deactivated = len(batch.InvalidTokens)
		}
	}

	s.log(ctx).Info("Order event pushed",
		slog.String("type", string(event.Type)),
		slog.String("orderID", event.OrderID),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// routeOrderEvent decides who hears about an event. Only delivery orders reach
// the delivery app.
func routeOrderEvent(event *service.OrderEvent) (recipientScope, *service.PushMessage) {
	if event.OrderType != "" && event.OrderType != string(entity.OrderTypeDelivery) {
		return scopeNone, nil
	}

	data := map[string]string{
		"event_type":    string(event.Type),
		"order_id":      event.OrderID,
		"restaurant_id": event.RestaurantID,
		"status":        event.ToStatus,
	}

	switch event.Type {
	case service.OrderEventCreated:
		return scopeRestaurant, &service.PushMessage{
			Title: "New delivery order",
			Body:  "A new order was placed (" + event.Total + ")",
			Data:  data,
		}

	case service.OrderEventAssigned:
		if event.DeliveryPersonID == "" {
			return scopeNone, nil
		}

		return scopeAssignee, &service.PushMessage{
			Title: "Order assigned to you",
			Body:  "You have a new delivery to pick up",
			Data:  data,
		}

	case service.OrderEventStatusChanged:
		switch entity.OrderStatus(event.ToStatus) {
		case entity.OrderStatusPreparing:
			if event.DeliveryPersonID != "" {
				return scopeAssignee, &service.PushMessage{
					Title: "Order being prepared",
					Body:  "Your assigned order is being prepared",
					Data:  data,
				}
			}

			return scopeRestaurant, &service.PushMessage{
				Title: "Order available for pickup",
				Body:  "An order is being prepared and has no driver yet",
				Data:  data,
			}

		case entity.OrderStatusCancelled:
			if event.DeliveryPersonID == "" {
				return scopeNone, nil
			}

			return scopeAssignee, &service.PushMessage{
				Title: "Order cancelled",
				Body:  "An order assigned to you was cancelled",
				Data:  data,
			}
		}
	}

	return scopeNone, nil
}

func uniqueTokens(devices []*entity.DeliveryDevice) []string {
	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		if _, ok := seen[device.FCMToken]; ok {
			continue
		}
		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}
