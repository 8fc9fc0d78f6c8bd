package handler

import (
	"bytes"
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
	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/constants"
	"comanda/internal/domain/service"
	"comanda/internal/infra/metrics"
	"comanda/internal/infra/pubsub"
	mockUsecase "comanda/internal/mocks/usecase"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type:         service.OrderEventCreated,
		OrderID:      uuid.NewString(),
		RestaurantID: uuid.NewString(),
		OrderType:    "delivery",
		ToStatus:     "pending",
		Total:        "25.50",
		OccurredAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestPushHandler(t *testing.T, notifier usecase.NotifierUsecase) (*PushHandler, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	processor := NewOrderEventProcessor(OrderEventProcessorParams{
		Logger:     logger,
		Metrics:    m,
		NotifierUC: notifier,
	})

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Processor: processor}), m
}

func pushBody(t *testing.T, data []byte, attributes map[string]string) []byte {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/notifier"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("delivered event is acknowledged and counted", func(t *testing.T) {
		event := testEvent()
		data, err := json.Marshal(event)
		require.NoError(t, err)

		notifier := mockUsecase.NewMockNotifierUsecase(t)
		notifier.EXPECT().
			HandleOrderEvent(mock.Anything, mock.MatchedBy(func(got *service.OrderEvent) bool {
				return got.OrderID == event.OrderID && got.Type == service.OrderEventCreated
			})).
			Run(func(ctx context.Context, _ *service.OrderEvent) {
				assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(&usecase.NotifyResult{Recipients: 3, Sent: 2, Failed: 1, Deactivated: 1}, nil)

		h, m := newTestPushHandler(t, notifier)
		rec := servePush(h, pushBody(t, data, map[string]string{"request_id": "req-42"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 2, testutil.ToFloat64(m.PushNotifications.WithLabelValues("sent")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.PushNotifications.WithLabelValues("failed")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.PushNotifications.WithLabelValues("deactivated")), 0)
	})

	t.Run("skipped event is acknowledged", func(t *testing.T) {
		data, err := json.Marshal(testEvent())
		require.NoError(t, err)

		notifier := mockUsecase.NewMockNotifierUsecase(t)
		notifier.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(&usecase.NotifyResult{Skipped: true}, nil)

		h, m := newTestPushHandler(t, notifier)
		rec := servePush(h, pushBody(t, data, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, testutil.ToFloat64(m.PushNotifications.WithLabelValues("skipped")), 0)
	})

	t.Run("invalid event is acknowledged without retry", func(t *testing.T) {
		data, err := json.Marshal(testEvent())
		require.NoError(t, err)

		notifier := mockUsecase.NewMockNotifierUsecase(t)
		notifier.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(usecase.ErrInvalidOrderEvent, "restaurant id"))

		h, m := newTestPushHandler(t, notifier)
		rec := servePush(h, pushBody(t, data, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, testutil.ToFloat64(m.PushNotifications.WithLabelValues("invalid")), 0)
	})

	t.Run("provider failure asks for a retry", func(t *testing.T) {
		data, err := json.Marshal(testEvent())
		require.NoError(t, err)

		notifier := mockUsecase.NewMockNotifierUsecase(t)
		notifier.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
			Return(nil, errors.New("fcm unavailable"))

		h, _ := newTestPushHandler(t, notifier)
		rec := servePush(h, pushBody(t, data, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("undecodable payload is acknowledged", func(t *testing.T) {
		h, _ := newTestPushHandler(t, mockUsecase.NewMockNotifierUsecase(t))
		rec := servePush(h, pushBody(t, []byte("{not json"), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid base64 data is a bad request", func(t *testing.T) {
		h, _ := newTestPushHandler(t, mockUsecase.NewMockNotifierUsecase(t))
		rec := servePush(h, []byte(`{"message":{"data":"%%%","messageId":"1"}}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: logger,
		Processor: NewOrderEventProcessor(OrderEventProcessorParams{
			Logger:     logger,
			Metrics:    metrics.New(),
			NotifierUC: mockUsecase.NewMockNotifierUsecase(t),
		}),
	})

	rec := servePush(h, pushBody(t, []byte("{}"), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPickRequestID(t *testing.T) {
	event := &service.OrderEvent{RequestID: "from-event"}

	assert.Equal(t, "from-transport", pickRequestID(context.Background(), "from-transport", event))
	assert.Equal(t, "from-event", pickRequestID(context.Background(), "", event))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-request")
	assert.Equal(t, "from-request", pickRequestID(ctx, "", &service.OrderEvent{}))

	generated := pickRequestID(context.Background(), "", &service.OrderEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
