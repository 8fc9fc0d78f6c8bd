package pubsub

import (
	"context"
	"log/slog"

	"comanda/config"
	"comanda/internal/domain/constants"
	"comanda/internal/domain/service"
	"comanda/internal/infra/metrics"
	"comanda/internal/infra/realtime"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when no message bus is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// BusParams holds dependencies for the message bus publisher, injected by Fx
type BusParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBus creates the message bus publisher selected by configuration
func NewBus(params BusParams) (Bus, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var bus Bus
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		bus = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		bus, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderRabbitMQ:
		if cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.Exchange == "" {
			return nil, errors.New("url and exchange are required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ publisher", slog.String("exchange", cfg.RabbitMQ.Exchange))

		bus, err = NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing order event bus")

			return bus.Close()
		},
	})

	return bus, nil
}

// OrderEventPublisherParams holds the publishing targets
type OrderEventPublisherParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics
	Bus     Bus
	Hub     *realtime.Hub
}

// NewOrderEventPublisher composes the message bus with the websocket feed.
func NewOrderEventPublisher(params OrderEventPublisherParams) service.OrderEventPublisher {
	targets := []namedPublisher{{name: "bus", publisher: params.Bus}}
	if params.Config.WebSocket != nil && params.Config.WebSocket.Enabled {
		targets = append(targets, namedPublisher{name: "websocket", publisher: params.Hub})
	}

	return &fanoutPublisher{
		targets: targets,
		metrics: params.Metrics,
	}
}

// Module provides the bus and the composed order event publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBus),
	fx.Provide(NewOrderEventPublisher),
)
