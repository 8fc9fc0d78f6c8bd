package delivery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestEchoServer_Serve(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		startFn StartFunc
		wantErr bool
	}{
		{
			name:    "graceful close is not an error",
			startFn: func(*echo.Echo, string) error { return http.ErrServerClosed },
		},
		{
			name:    "bind failure is reported",
			startFn: func(*echo.Echo, string) error { return errors.New("address already in use") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			var gotAddr string
			start := func(e *echo.Echo, addr string) error {
				gotAddr = addr

				return tt.startFn(e, addr)
			}

			srv := NewEchoServer(lc, "api", 8080, echo.New(), logger, start)
			err := srv.Serve(context.Background())

			assert.Equal(t, "0.0.0.0:8080", gotAddr)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "api server stopped")
			} else {
				assert.NoError(t, err)
			}

			lc.RequireStart().RequireStop()
		})
	}
}
