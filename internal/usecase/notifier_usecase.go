package usecase

import (
	"context"

	"comanda/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrInvalidOrderEvent marks an event that can never be delivered; the worker
// acknowledges it instead of asking for a retry.
var ErrInvalidOrderEvent = errors.New("invalid order event")

// NotifyResult summarizes the push fan-out of one event.
type NotifyResult struct {
	Skipped     bool
	Recipients  int
	Sent        int
	Failed      int
	Deactivated int
}

// NotifierUsecase turns order events into push notifications for delivery devices.
type NotifierUsecase interface {
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotifyResult, error)
}
