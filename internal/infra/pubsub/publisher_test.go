package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comanda/config"
	"comanda/internal/domain/service"
	"comanda/internal/infra/metrics"
	"comanda/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:    "req-1",
		Type:         service.OrderEventStatusChanged,
		OrderID:      uuid.NewString(),
		RestaurantID: uuid.NewString(),
		FromStatus:   "pending",
		ToStatus:     "preparing",
		OccurredAt:   time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

type recordingPublisher struct {
	events []*service.OrderEvent
	err    error
	closed bool
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true

	return nil
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	event := sampleEvent()

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, event.OrderID, received.Message.Attributes["order_id"])
	assert.Equal(t, "order.status_changed", received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, "preparing", decoded.ToStatus)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "503")
}

func TestFanoutPublisher_DeliversToAllTargets(t *testing.T) {
	m := metrics.New()
	failing := &recordingPublisher{err: errors.New("broker down")}
	healthy := &recordingPublisher{}

	fanout := &fanoutPublisher{
		targets: []namedPublisher{
			{name: "bus", publisher: failing},
			{name: "websocket", publisher: healthy},
		},
		metrics: m,
	}

	err := fanout.PublishOrderEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.ErrorContains(t, err, "bus publisher")

	assert.Len(t, failing.events, 1)
	assert.Len(t, healthy.events, 1, "a failing target must not stop the others")
	assert.InDelta(t, 1, testutil.ToFloat64(m.PublishFailures.WithLabelValues("bus")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderEvents.WithLabelValues("order.status_changed", "preparing")), 0)

	require.NoError(t, fanout.Close())
	assert.True(t, failing.closed)
	assert.True(t, healthy.closed)
}

func TestNewOrderEventPublisher_WebSocketToggle(t *testing.T) {
	m := metrics.New()
	hub := realtime.NewHub(discardLogger(), m)
	bus := &recordingPublisher{}

	disabled := NewOrderEventPublisher(OrderEventPublisherParams{
		Config:  &config.Config{},
		Metrics: m,
		Bus:     bus,
		Hub:     hub,
	})
	assert.Len(t, disabled.(*fanoutPublisher).targets, 1)

	enabled := NewOrderEventPublisher(OrderEventPublisherParams{
		Config:  &config.Config{WebSocket: &config.WebSocketConfig{Enabled: true}},
		Metrics: m,
		Bus:     bus,
		Hub:     hub,
	})
	assert.Len(t, enabled.(*fanoutPublisher).targets, 2)
}

func TestAttributes(t *testing.T) {
	event := sampleEvent()
	attrs := Attributes(event)
	assert.Equal(t, "req-1", attrs["request_id"])
	assert.Equal(t, event.RestaurantID, attrs["restaurant_id"])

	event.RequestID = ""
	_, ok := Attributes(event)["request_id"]
	assert.False(t, ok)
}
