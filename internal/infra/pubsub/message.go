// Package pubsub publishes order events to the message bus consumed by the notifier.
package pubsub

import (
	"comanda/internal/domain/service"
)

// PushMessage is the envelope Google Pub/Sub uses when pushing to an HTTP endpoint.
// The local publisher produces the same shape so the notifier handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Attributes returns the routing and tracing attributes attached to every message.
func Attributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"event_type":    string(event.Type),
		"order_id":      event.OrderID,
		"restaurant_id": event.RestaurantID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Bus is the message-bus side of order event publishing, kept as its own type
// so the dependency graph can hold it next to the composed publisher.
type Bus interface {
	service.OrderEventPublisher
}
