package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_TagsLoggerAndStoresID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := Scope(context.Background(), base, "req-7")
	logger.Info("hello")

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func TestScope_NilBaseFallsBackToDefault(t *testing.T) {
	ctx, logger := Scope(context.Background(), nil, "req-8")

	require.NotNil(t, logger)
	assert.Equal(t, "req-8", GetRequestIDFromContext(ctx))
}

func TestGetRequestID_GeneratedOnceAndRemembered(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)
	second := GetRequestID(c)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	assert.Empty(t, GetRequestIDFromContext(ctx))
}
