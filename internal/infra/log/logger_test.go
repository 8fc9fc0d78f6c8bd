package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"comanda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_JSONCarriesServiceAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "comanda"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Info("order created", slog.String("order_id", "abc"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "comanda", line["service"])
	assert.Equal(t, "develop", line["env"])
	assert.Equal(t, "abc", line["order_id"])
}

func TestBuild_FiltersBelowLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Info("ignored")
	assert.Zero(t, buf.Len())
}
