package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/validator"
	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	testRestaurantID = uuid.MustParse("5b0c8f4e-3f7e-4d1a-9a57-0a5d6f1c2b10")
	testUserID       = uuid.MustParse("9d2b6a61-1c55-4c36-8a0f-3f3b8d7e4a21")
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// newTestContext builds an echo context with the API validator. A non-nil body is sent as JSON.
func newTestContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// withClaims authenticates the context as the given role of the test restaurant.
func withClaims(c echo.Context, role entity.Role) *service.Claims {
	restaurantID := testRestaurantID
	claims := &service.Claims{
		UserID:       testUserID,
		Name:         "Ana",
		Email:        "ana@example.com",
		Role:         role,
		RestaurantID: &restaurantID,
	}
	deliverycontext.SetClaims(c, claims)

	return claims
}

// serveTenant runs the handler behind tenant resolution, as the router does.
func serveTenant(c echo.Context, h echo.HandlerFunc) error {
	return middleware.NewAuthMiddleware(nil).TenantFromClaims(h)(c)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Data, "response has no data: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}

