package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"comanda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const rabbitExchangeKind = "topic"

// rabbitMQPublisher publishes to a topic exchange with publisher confirms.
// The routing key is the event type, e.g. "order.status_changed".
type rabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	acks     <-chan amqp.Confirmation
	exchange string
	logger   *slog.Logger

	// Confirms arrive in publish order; publishing is serialized to pair them up.
	mu sync.Mutex
}

// NewRabbitMQPublisher dials the broker, declares the exchange and enables confirms.
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (Bus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if err := DeclareExchange(ch, exchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to enable publisher confirms")
	}

	return &rabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		acks:     ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		exchange: exchange,
		logger:   logger,
	}, nil
}

// DeclareExchange declares the durable topic exchange shared by publisher and consumer.
func DeclareExchange(ch *amqp.Channel, exchange string) error {
	return errors.Wrapf(
		ch.ExchangeDeclare(exchange, rabbitExchangeKind, true, false, false, false, nil),
		"failed to declare exchange %s", exchange,
	)
}

// PublishOrderEvent publishes a persistent message and waits for the broker ack.
func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range Attributes(event) {
		headers[key] = value
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     uuid.NewString(),
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	}); err != nil {
		return errors.Wrap(err, "failed to publish order event")
	}

	select {
	case confirm, ok := <-p.acks:
		if !ok {
			return errors.New("rabbitmq channel closed before confirm")
		}
		if !confirm.Ack {
			return errors.New("publish NACK from broker")
		}
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	p.logger.Debug("[RabbitMQ] Order event published",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close closes the channel and the connection.
func (p *rabbitMQPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
