package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comanda/config"
	"comanda/internal/domain/constants"
	"comanda/internal/delivery/worker/handler"
	"comanda/internal/infra/metrics"
	mockUsecase "comanda/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
)

func TestNotifierServer_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	processor := handler.NewOrderEventProcessor(handler.OrderEventProcessorParams{
		Logger:     logger,
		Metrics:    m,
		NotifierUC: mockUsecase.NewMockNotifierUsecase(t),
	})
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Processor: processor})

	e := newEcho(ServerParams{Cfg: cfg, Logger: logger, Metrics: m, PushHandler: push})

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		wantBody string
	}{
		{name: "health", method: http.MethodGet, target: "/health", wantCode: http.StatusOK, wantBody: `"ok"`},
		{name: "metrics", method: http.MethodGet, target: "/metrics", wantCode: http.StatusOK, wantBody: "comanda_http_requests_in_flight"},
		{name: "push rejects a bad envelope", method: http.MethodPost, target: "/push", body: `{"message":{"data":"%%%"}}`, wantCode: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, target: "/nope", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
