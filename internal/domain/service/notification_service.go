package service

import (
	"context"
)

// PushMessage is the payload delivered to delivery app devices.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult reports a multicast send. InvalidTokens lists tokens the provider
// rejected as unknown, so their devices can be deactivated.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatch sends the message to every token, chunking as the provider requires.
	SendBatch(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)
}
