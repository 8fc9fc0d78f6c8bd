package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "comanda/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "caller id is reused", header: "req-abc-123", wantSame: true},
		{name: "missing id is generated"},
		{name: "id with spaces is replaced", header: "bad id"},
		{name: "overlong id is replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := m.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, fromCtx)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}
