package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"comanda/config"
	deliverycontext "comanda/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) (*gormSlogLogger, *slog.Logger) {
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), base
}

func TestGormSlogLogger_LevelFromConfig(t *testing.T) {
	var buf bytes.Buffer

	quiet, _ := newTestGormLogger(&buf, false)
	assert.Equal(t, logger.Warn, quiet.level)

	verbose, _ := newTestGormLogger(&buf, true)
	assert.Equal(t, logger.Info, verbose.level)
}

func TestGormSlogLogger_TraceSkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TraceErrorUsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, base := newTestGormLogger(&buf, false)

	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-42")))
	l.Trace(ctx, time.Now(), func() (string, int64) { return "INSERT INTO orders", 0 }, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "req-42")
	assert.Contains(t, out, "INSERT INTO orders")
}

func TestGormSlogLogger_TraceSlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestGormLogger(&buf, false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT pg_sleep(1)", 1 }, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l, _ := newTestGormLogger(&buf, true)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	silent.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
	assert.Equal(t, logger.Info, l.level)
}
