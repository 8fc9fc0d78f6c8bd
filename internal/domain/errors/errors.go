package errors

import (
	"fmt"
	"net/http"

	"comanda/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a more specific user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError with the same business code, so copies made by
// WithDetails or WithMessage still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrTokenGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"Failed to issue token",
		"",
	)

	// Account-related errors
	ErrCustomerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_ALREADY_EXISTS",
		"An account with this email already exists",
		"",
	)

	ErrStaffAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STAFF_ALREADY_EXISTS",
		"A staff member with this username already exists",
		"",
	)

	ErrStaffNotFound = NewBaseError(
		http.StatusNotFound,
		"STAFF_NOT_FOUND",
		"Staff member not found",
		"",
	)

	ErrDeliveryPersonAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DELIVERY_PERSON_ALREADY_EXISTS",
		"A delivery person with this username already exists",
		"",
	)

	ErrDeliveryPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_PERSON_NOT_FOUND",
		"Delivery person not found",
		"",
	)

	ErrDeliveryPersonInactive = NewBaseError(
		http.StatusForbidden,
		"DELIVERY_PERSON_INACTIVE",
		"Delivery person is not active",
		"",
	)

	// Restaurant-related errors
	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		"",
	)

	ErrRestaurantInactive = NewBaseError(
		http.StatusForbidden,
		"RESTAURANT_INACTIVE",
		"Restaurant is not active",
		"",
	)

	ErrRestaurantAlreadyExists = NewBaseError(
		http.StatusConflict,
		"RESTAURANT_ALREADY_EXISTS",
		"A restaurant with this identifier already exists",
		"",
	)

	ErrTenantRequired = NewBaseError(
		http.StatusBadRequest,
		"TENANT_REQUIRED",
		"A restaurant must be specified",
		"",
	)

	// Catalog-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrCategoryMismatch = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_MISMATCH",
		"Category does not belong to this restaurant",
		"",
	)

	ErrCategoryInUse = NewBaseError(
		http.StatusConflict,
		"CATEGORY_IN_USE",
		"Category still has products",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_UNAVAILABLE",
		"Product is not available",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_TRANSITION",
		"Invalid status transition",
		"",
	)

	ErrOrderNotAssigned = NewBaseError(
		http.StatusForbidden,
		"ORDER_NOT_ASSIGNED",
		"Order is assigned to another delivery person",
		"",
	)

	ErrOrderNotArchivable = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_ARCHIVABLE",
		"Only completed or cancelled orders can be archived",
		"",
	)

	// Cash register errors
	ErrCashRegisterAlreadyOpen = NewBaseError(
		http.StatusConflict,
		"CASH_REGISTER_ALREADY_OPEN",
		"A cash register is already open for this delivery person",
		"",
	)

	ErrCashRegisterNotFound = NewBaseError(
		http.StatusNotFound,
		"CASH_REGISTER_NOT_FOUND",
		"No open cash register",
		"",
	)

	ErrCashRegisterActiveOrders = NewBaseError(
		http.StatusBadRequest,
		"CASH_REGISTER_ACTIVE_ORDERS",
		"Cash register cannot be closed while orders are still active",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// NewInvalidTransitionError names the rejected from/to pair in the user-facing message.
func NewInvalidTransitionError(cause error) *BaseError {
	return ErrInvalidStatusTransition.WithMessage(cause.Error())
}

// NewValidationError returns a validation error with a specific message.
func NewValidationError(format string, args ...any) *BaseError {
	return ErrValidationFailed.WithMessage(fmt.Sprintf(format, args...))
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
