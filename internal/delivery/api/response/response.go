package response

import (
	"net/http"

	deliverycontext "comanda/internal/delivery/context"
	domainerrors "comanda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Conditional request headers.
const (
	HeaderETag        = "ETag"
	HeaderIfNoneMatch = "If-None-Match"
)

// SuccessResponse is the envelope of every 2xx JSON body.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every 4xx/5xx JSON body.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// PageData is the payload of paginated listings.
type PageData struct {
	Items    any   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	HasMore  bool  `json:"has_more"`
}

// MetaInfo echoes the X-Request-Id so clients can quote it in support requests.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// exposesDetails reports whether error details may reach the client. Server
// faults and auth failures never explain themselves.
func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

// Error writes the error envelope, dropping details the status may not carry.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders client-side domain errors directly. Anything else is
// returned to echo so the central handler logs it once and answers 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// NotModified ends a conditional GET whose entity tag still matches.
func NotModified(c echo.Context, etag string) error {
	c.Response().Header().Set(HeaderETag, etag)

	return c.NoContent(http.StatusNotModified)
}

// Paginated wraps one page of a listing. page is 1-based.
func Paginated(c echo.Context, items any, total int64, page, pageSize int) error {
	return Success(c, http.StatusOK, PageData{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(page)*int64(pageSize) < total,
	})
}
