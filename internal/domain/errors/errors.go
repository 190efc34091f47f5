package errors

import (
	"net/http"

	"expo/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so that WithDetails copies still
// satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Invalid category. Please choose from predefined categories.",
		"",
	)

	// Payment errors
	ErrInvalidIdentifierFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTIFIER_FORMAT",
		"Invalid BBPAY ID format. Must be BBPAY followed by 9 digits.",
		"",
	)

	ErrIncorrectCredential = NewBaseError(
		http.StatusPaymentRequired,
		"INCORRECT_CREDENTIAL",
		"Incorrect PIN. Please try again.",
		"",
	)

	ErrPaymentMethodUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_UNAVAILABLE",
		"This payment method will be available soon. Please use BBPAY for now.",
		"",
	)

	// Checkout errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty!",
		"",
	)

	ErrCheckoutState = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_STATE",
		"This action is not allowed at the current checkout step",
		"",
	)

	ErrCheckoutBusy = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_BUSY",
		"A payment is being processed for this checkout",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"Checkout session not found or expired",
		"",
	)

	// Ledger errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrStorageUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_UNAVAILABLE",
		"Ledger storage is unavailable",
		"",
	)

	ErrCorruptRecord = NewBaseError(
		http.StatusInternalServerError,
		"CORRUPT_RECORD",
		"A stored record could not be decoded",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// StorageError represents a failure of the ledger bucket, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "ledger storage failed").Error()
}

// Unwrap exposes the underlying bucket error
func (e *StorageError) Unwrap() error {
	return e.err
}

// Is lets callers match a StorageError against ErrStorageUnavailable
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return ErrStorageUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return ErrStorageUnavailable.Message()
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
