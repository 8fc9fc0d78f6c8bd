package worker

import (
	"context"
	"log/slog"
	"sync"

	"comanda/config"
	"comanda/internal/delivery"
	"comanda/internal/delivery/worker/handler"
	"comanda/internal/domain/constants"
	"comanda/internal/infra/pubsub"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	orderEventBindingKey = "order.#"
	defaultPrefetch      = 16
)

// rabbitMQConsumer feeds order events from a durable queue into the processor.
type rabbitMQConsumer struct {
	cfg       config.RabbitMQConfig
	enabled   bool
	logger    *slog.Logger
	processor *handler.OrderEventProcessor

	mu   sync.Mutex
	conn *amqp.Connection
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.OrderEventProcessor
}

// NewRabbitMQConsumer creates the queue consumer. It only connects when the
// rabbitmq provider is configured; otherwise Serve returns immediately.
func NewRabbitMQConsumer(params ConsumerParams) (delivery.Delivery, error) {
	c := &rabbitMQConsumer{
		logger:    params.Logger,
		processor: params.Processor,
	}

	if ps := params.Cfg.PubSub; ps != nil && ps.Provider == constants.PubSubProviderRabbitMQ {
		if ps.RabbitMQ.URL == "" || ps.RabbitMQ.Exchange == "" || ps.RabbitMQ.Queue == "" {
			return nil, errors.New("url, exchange and queue are required for the rabbitmq consumer")
		}
		c.cfg = ps.RabbitMQ
		c.enabled = true
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve declares the topology and consumes until the connection is closed.
func (c *rabbitMQConsumer) Serve(ctx context.Context) error {
	if !c.enabled {
		c.logger.Info("RabbitMQ consumer disabled")

		return nil
	}

	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return errors.Wrap(err, "failed to dial rabbitmq")
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open rabbitmq channel")
	}

	deliveries, err := c.setup(ch)
	if err != nil {
		return err
	}

	c.logger.Info("Starting RabbitMQ consumer",
		slog.String("exchange", c.cfg.Exchange),
		slog.String("queue", c.cfg.Queue),
	)

	for d := range deliveries {
		c.handle(ctx, d)
	}

	c.logger.Info("RabbitMQ consumer stopped")

	return nil
}

func (c *rabbitMQConsumer) setup(ch *amqp.Channel) (<-chan amqp.Delivery, error) {
	if err := pubsub.DeclareExchange(ch, c.cfg.Exchange); err != nil {
		return nil, err
	}

	queue, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to declare queue %s", c.cfg.Queue)
	}

	if err := ch.QueueBind(queue.Name, orderEventBindingKey, c.cfg.Exchange, false, nil); err != nil {
		return nil, errors.Wrapf(err, "failed to bind queue %s", queue.Name)
	}

	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, errors.Wrap(err, "failed to set prefetch")
	}

	deliveries, err := ch.Consume(queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to consume queue %s", queue.Name)
	}

	return deliveries, nil
}

// handle acks processed and undeliverable messages and requeues retryable failures.
func (c *rabbitMQConsumer) handle(ctx context.Context, d amqp.Delivery) {
	err := c.processor.Process(ctx, d.Body, d.CorrelationId)
	if err == nil {
		c.settle(d.Ack(false), d.MessageId)

		return
	}

	retryable := handler.IsRetryable(err)
	c.logger.Error("[Worker] Failed to process order event",
		slog.String("message_id", d.MessageId),
		slog.String("routing_key", d.RoutingKey),
		slog.Any("error", err),
		slog.Bool("retryable", retryable),
	)

	if retryable && !d.Redelivered {
		c.settle(d.Nack(false, true), d.MessageId)

		return
	}

	// A redelivered message that fails again is dropped rather than looping.
	c.settle(d.Ack(false), d.MessageId)
}

func (c *rabbitMQConsumer) settle(err error, messageID string) {
	if err != nil {
		c.logger.Warn("[Worker] Failed to settle message",
			slog.String("message_id", messageID),
			slog.Any("error", err),
		)
	}
}

func (c *rabbitMQConsumer) stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	c.logger.Info("Closing RabbitMQ consumer")

	return errors.WithStack(c.conn.Close())
}
