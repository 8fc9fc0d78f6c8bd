package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/service"
	"comanda/internal/infra/metrics"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError wraps an error to indicate the transport should redeliver the message
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether a processing error should lead to redelivery.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// OrderEventProcessor decodes order events coming from any transport and hands
// them to the notifier.
type OrderEventProcessor struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	notifierUC usecase.NotifierUsecase
}

// OrderEventProcessorParams holds dependencies for the OrderEventProcessor
type OrderEventProcessorParams struct {
	fx.In

	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	NotifierUC usecase.NotifierUsecase
}

// NewOrderEventProcessor creates a new order event processor
func NewOrderEventProcessor(params OrderEventProcessorParams) *OrderEventProcessor {
	return &OrderEventProcessor{
		logger:     params.Logger,
		metrics:    params.Metrics,
		notifierUC: params.NotifierUC,
	}
}

// Process decodes one message body and pushes it. Malformed or undeliverable
// events return a plain error; everything else is wrapped as retryable.
// requestID comes from the transport metadata and may be empty.
func (p *OrderEventProcessor) Process(ctx context.Context, data []byte, requestID string) error {
	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "failed to parse order event")
	}

	requestID = pickRequestID(ctx, requestID, &event)
	ctx, reqLogger := deliverycontext.Scope(ctx, p.logger, requestID)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID),
		slog.String("restaurant_id", event.RestaurantID),
	)

	result, err := p.notifierUC.HandleOrderEvent(ctx, &event)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidOrderEvent) {
			p.metrics.PushNotifications.WithLabelValues("invalid").Inc()

			return err
		}

		return newRetryableError(err)
	}

	if result.Skipped {
		p.metrics.PushNotifications.WithLabelValues("skipped").Inc()

		return nil
	}
	p.metrics.PushNotifications.WithLabelValues("sent").Add(float64(result.Sent))
	p.metrics.PushNotifications.WithLabelValues("failed").Add(float64(result.Failed))
	p.metrics.PushNotifications.WithLabelValues("deactivated").Add(float64(result.Deactivated))

	return nil
}

// pickRequestID prefers transport metadata, then the event payload, then the
// incoming request, and finally generates one.
func pickRequestID(ctx context.Context, fromTransport string, event *service.OrderEvent) string {
	if fromTransport != "" {
		return fromTransport
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
