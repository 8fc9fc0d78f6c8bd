// Package notification delivers push messages to delivery app devices.
package notification

import (
	"context"
	"log/slog"

	"comanda/config"
	"comanda/internal/domain/service"
	"comanda/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for one SendEachForMulticast call.
const maxMulticastTokens = 500

// multicastSender is the part of *messaging.Client the service uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// NewFirebaseService creates the FCM-backed notification service. Without a credentials
// path it falls back to a service that only logs, which keeps local setups working.
func NewFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push notifications will only be logged")

		return &logOnlyService{logger: logger}, nil
	}

	var fbConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, logger), nil
}

func newFirebaseService(client multicastSender, logger *slog.Logger) *firebaseService {
	return &firebaseService{client: client, logger: logger}
}

// SendBatch sends the message to every token in chunks of maxMulticastTokens.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	result := &service.BatchResult{InvalidTokens: make([]string, 0)}
	if len(tokens) == 0 {
		return result, nil
	}

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
			}
		}
	}

	return result, nil
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	s.logger.InfoContext(ctx, "Push notification skipped",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
	)

	return &service.BatchResult{InvalidTokens: make([]string, 0)}, nil
}
