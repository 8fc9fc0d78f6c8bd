// Package context carries request-scoped values (request ID, logger, token
// claims) across echo handlers and plain context.Context call chains.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	HeaderXRequestID = "X-Request-Id"

	logAttrRequestID = "request_id"
)

// Scope binds a request ID to ctx together with a logger that tags every line
// with it. The derived logger is returned for immediate use.
func Scope(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	if base == nil {
		base = slog.Default()
	}
	logger := base.With(slog.String(logAttrRequestID, requestID))

	ctx = context.WithValue(ctx, KeyRequestID, requestID)

	return context.WithValue(ctx, KeyLogger, logger), logger
}

// GetRequestID returns the request ID of c. When the middleware did not run,
// one is generated and remembered so the access log and the error envelope of
// the same request agree.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
