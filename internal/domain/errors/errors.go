package errors

import (
	"net/http"

	"qkart/internal/errors"
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

// Is matches errors derived through WithDetails against their sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode && e.httpCode == other.httpCode
}

// Kind classifies an error into the coarse categories callers branch on
type Kind string

const (
	KindNotFound   Kind = "NotFound"
	KindBadRequest Kind = "BadRequest"
	KindConflict   Kind = "Conflict"
	KindForbidden  Kind = "Forbidden"
	KindInternal   Kind = "InternalError"
)

// KindOf reports the kind of err, defaulting to KindInternal for non-application errors
func KindOf(err error) Kind {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return KindInternal
	}

	switch appErr.HTTPCode() {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusConflict:
		return KindConflict
	case http.StatusForbidden, http.StatusUnauthorized:
		return KindForbidden
	default:
		return KindInternal
	}
}

// Predefined error types
var (
	// Cart-related errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"User does not have a cart",
		"",
	)

	ErrCartRequired = NewBaseError(
		http.StatusBadRequest,
		"CART_REQUIRED",
		"User does not have a cart. Use POST to create cart and add a product",
		"",
	)

	ErrCartMissing = NewBaseError(
		http.StatusBadRequest,
		"CART_MISSING",
		"User does not have a cart",
		"",
	)

	ErrCartCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CART_CREATION_FAILED",
		"User cart creation failed",
		"",
	)

	ErrProductAlreadyInCart = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_IN_CART",
		"Product already in cart. Use the cart sidebar to update or remove product from cart",
		"",
	)

	ErrProductNotInCart = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NOT_IN_CART",
		"Product not in cart",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NOT_FOUND",
		"Product doesn't exist in the database",
		"",
	)

	ErrProductNotListed = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be a positive integer",
		"",
	)

	// Checkout-related errors
	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"User does not have items in the cart",
		"",
	)

	ErrAddressNotSet = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_NOT_SET",
		"Address not set",
		"",
	)

	ErrInsufficientBalance = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_BALANCE",
		"User does not have sufficient balance",
		"",
	)

	ErrIdempotencyKeyRequired = NewBaseError(
		http.StatusBadRequest,
		"IDEMPOTENCY_KEY_REQUIRED",
		"Idempotency-Key header is required",
		"",
	)

	ErrIdempotencyKeyInvalid = NewBaseError(
		http.StatusBadRequest,
		"IDEMPOTENCY_KEY_INVALID",
		"Idempotency-Key header is invalid",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrAddressInvalid = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_INVALID",
		"Address must not be empty",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid access token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"User not authorized to access this resource",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input parameters",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Transaction processing failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

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

// Unwrap exposes the driver error
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
