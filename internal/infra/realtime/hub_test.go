package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"comanda/internal/domain/service"
	"comanda/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, *metrics.Metrics) {
	t.Helper()

	m := metrics.New()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), m)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})

	return hub, m
}

// attach registers a client without a network connection.
func attach(hub *Hub, sub Subscription) *Client {
	client := &Client{hub: hub, send: make(chan []byte, clientBuffer), subscription: sub}
	hub.register <- client

	return client
}

func receive(t *testing.T, client *Client) *service.OrderEvent {
	t.Helper()

	select {
	case payload := <-client.send:
		var event service.OrderEvent
		require.NoError(t, json.Unmarshal(payload, &event))

		return &event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")

		return nil
	}
}

func assertNothing(t *testing.T, client *Client) {
	t.Helper()

	select {
	case payload := <-client.send:
		t.Fatalf("unexpected event: %s", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_RoutesByRestaurantAndCustomer(t *testing.T) {
	hub, _ := newTestHub(t)

	restaurantA := uuid.New()
	restaurantB := uuid.New()
	customer := uuid.New()

	staffA := attach(hub, Subscription{RestaurantID: restaurantA})
	staffB := attach(hub, Subscription{RestaurantID: restaurantB})
	customerA := attach(hub, Subscription{RestaurantID: restaurantA, CustomerID: &customer})

	event := &service.OrderEvent{
		Type:         service.OrderEventStatusChanged,
		OrderID:      uuid.NewString(),
		RestaurantID: restaurantA.String(),
		CustomerID:   customer.String(),
		ToStatus:     "preparing",
	}
	require.NoError(t, hub.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, event.OrderID, receive(t, staffA).OrderID)
	assert.Equal(t, event.OrderID, receive(t, customerA).OrderID)
	assertNothing(t, staffB)

	other := &service.OrderEvent{
		Type:         service.OrderEventCreated,
		OrderID:      uuid.NewString(),
		RestaurantID: restaurantA.String(),
		CustomerID:   uuid.NewString(),
		ToStatus:     "pending",
	}
	require.NoError(t, hub.PublishOrderEvent(context.Background(), other))

	assert.Equal(t, other.OrderID, receive(t, staffA).OrderID)
	assertNothing(t, customerA)
}

func TestHub_TracksClientGauge(t *testing.T) {
	hub, m := newTestHub(t)

	client := attach(hub, Subscription{RestaurantID: uuid.New()})
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.WebSocketClients) == 1
	}, time.Second, 5*time.Millisecond)

	hub.unregister <- client
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.WebSocketClients) == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_ServeOverWebsocket(t *testing.T) {
	hub, _ := newTestHub(t)
	restaurantID := uuid.New()
	upgrader := NewUpgrader(nil)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(upgrader, w, r, Subscription{RestaurantID: restaurantID})
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	event := &service.OrderEvent{
		Type:         service.OrderEventCreated,
		OrderID:      uuid.NewString(),
		RestaurantID: restaurantID.String(),
		ToStatus:     "pending",
	}

	deadline := time.Now().Add(2 * time.Second)
	require.NoError(t, conn.SetReadDeadline(deadline))

	received := make(chan *service.OrderEvent, 1)
	go func() {
		var got service.OrderEvent
		if err := conn.ReadJSON(&got); err == nil {
			received <- &got
		}
	}()

	// The client registers asynchronously; publish until it arrives.
	require.Eventually(t, func() bool {
		_ = hub.PublishOrderEvent(context.Background(), event)
		select {
		case got := <-received:
			return got.OrderID == event.OrderID
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUpgrader_CheckOrigin(t *testing.T) {
	upgrader := NewUpgrader([]string{"https://admin.example.com"})

	allowed := httptest.NewRequest(http.MethodGet, "/ws/orders", nil)
	allowed.Header.Set("Origin", "https://admin.example.com")
	assert.True(t, upgrader.CheckOrigin(allowed))

	denied := httptest.NewRequest(http.MethodGet, "/ws/orders", nil)
	denied.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, upgrader.CheckOrigin(denied))

	assert.True(t, NewUpgrader(nil).CheckOrigin(denied))
}
