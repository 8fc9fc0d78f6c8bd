// Package realtime pushes order events to connected websocket clients.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"comanda/internal/domain/service"
	"comanda/internal/errors"
	"comanda/internal/infra/metrics"

	"github.com/google/uuid"
)

const (
	broadcastBuffer = 256
	clientBuffer    = 64
)

// Subscription decides which events a client receives. Staff and delivery
// clients follow a whole restaurant; customers only their own orders.
type Subscription struct {
	RestaurantID uuid.UUID
	CustomerID   *uuid.UUID
}

func (s Subscription) matches(event *service.OrderEvent) bool {
	if event.RestaurantID != s.RestaurantID.String() {
		return false
	}
	if s.CustomerID != nil {
		return event.CustomerID == s.CustomerID.String()
	}

	return true
}

type broadcast struct {
	event   *service.OrderEvent
	payload []byte
}

// Hub tracks connected clients and fans out order events. It implements
// service.OrderEventPublisher so it can sit next to the message-bus publishers.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcast
	done       chan struct{}
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewHub creates a hub; Run must be started before clients connect.
func NewHub(logger *slog.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcast, broadcastBuffer),
		done:       make(chan struct{}),
		logger:     logger,
		metrics:    m,
	}
}

// Run is the hub event loop. It returns when ctx is cancelled, closing every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			h.remove(client)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.metrics.WebSocketClients.Inc()
			h.logger.Debug("Order feed client connected", slog.Int("total", len(h.clients)))

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.subscription.matches(msg.event) {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer.
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)
	h.metrics.WebSocketClients.Dec()
	h.logger.Debug("Order feed client disconnected", slog.Int("total", len(h.clients)))
}

// PublishOrderEvent queues the event for delivery. It never blocks: when the
// broadcast buffer is full the event is dropped and an error returned.
func (h *Hub) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order event")
	}

	select {
	case h.broadcast <- broadcast{event: event, payload: payload}:
		return nil
	default:
		return errors.New("order feed broadcast buffer full")
	}
}

// Close is a no-op; the hub stops with the context given to Run.
func (h *Hub) Close() error {
	return nil
}
