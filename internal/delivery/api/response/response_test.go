package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "comanda/internal/delivery/context"
	domainerrors "comanda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestError_DetailsByStatus(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusConflict, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "why"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, "why", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error is rendered", func(t *testing.T) {
		c, rec := newContext()

		err := errors.Wrap(domainerrors.ErrOrderNotFound, "loading order")
		require.NoError(t, HandleAppError(c, err))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", body.Error.Code)
	})

	t.Run("server error is returned for the central handler", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, domainerrors.ErrTransactionFailed)
		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("unknown error is returned", func(t *testing.T) {
		c, _ := newContext()

		assert.Error(t, HandleAppError(c, errors.New("boom")))
	})
}

func TestPaginated_HasMore(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int64
		want  bool
	}{
		{name: "more pages", page: 1, total: 25, want: true},
		{name: "last full page", page: 2, total: 20},
		{name: "partial last page", page: 3, total: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Paginated(c, []string{}, tt.total, tt.page, 10))

			var body struct {
				Data PageData `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Data.HasMore)
		})
	}
}
