package service

import (
	"context"
	"time"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventAssigned      OrderEventType = "order.assigned"
)

// OrderEvent is broadcast after an order mutation has been committed.
type OrderEvent struct {
	RequestID        string         `json:"request_id,omitempty"` // For distributed tracing
	Type             OrderEventType `json:"type"`
	OrderID          string         `json:"order_id"`
	RestaurantID     string         `json:"restaurant_id"`
	CustomerID       string         `json:"customer_id,omitempty"`
	DeliveryPersonID string         `json:"delivery_person_id,omitempty"`
	OrderType        string         `json:"order_type,omitempty"`
	FromStatus       string         `json:"from_status,omitempty"`
	ToStatus         string         `json:"to_status"`
	Total            string         `json:"total,omitempty"`
	OccurredAt       time.Time      `json:"occurred_at"`
}

// OrderEventPublisher defines the interface for publishing order events.
type OrderEventPublisher interface {
	// PublishOrderEvent delivers the event to the configured transport.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
