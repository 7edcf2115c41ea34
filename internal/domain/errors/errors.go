// Package errors defines the application error taxonomy. Every error that
// reaches the delivery layer is one of these classes; the HTTP error handler
// maps anything else to a generic internal error.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface for application-specific errors that carry
// their own HTTP mapping.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithMessage returns a copy with a different user-facing message, keeping
// the status and code. Used to surface specific validation failures.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
	}
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types.
var (
	// ErrValidation covers malformed input, password policy violations and
	// invalid email addresses. Surfaced as 400.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"validation failed",
	)

	// ErrInvalidUpdates is returned when an update names a field outside the
	// resource's allowlist. The whole update is rejected.
	ErrInvalidUpdates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_UPDATES",
		"Invalid updates attempted.",
	)

	// ErrLoginFailed deliberately does not say which part of the credentials
	// was wrong. Login failures are 400, matching the login route contract.
	ErrLoginFailed = NewBaseError(
		http.StatusBadRequest,
		"LOGIN_FAILED",
		"unable to login",
	)

	// ErrUnauthorized is the single error class for every middleware
	// authentication failure: missing header, bad signature, unknown user,
	// revoked token. Undifferentiated on purpose.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"please authenticate",
	)

	// ErrNotFound is returned when a well-formed identifier matches nothing.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"not found",
	)

	// ErrEmailTaken is raised by the unique index on users.email.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"email is already registered",
	)

	// ErrInternal covers persistence faults and anything unexpected.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)

	// ErrUnsupportedImage is the image pipeline's own failure mode for
	// uploads that are not an accepted image type.
	ErrUnsupportedImage = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE",
		"file must be a jpg, jpeg or png image",
	)

	// ErrImageTooLarge is the image pipeline's failure mode for uploads
	// exceeding the size limit.
	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"image exceeds the upload size limit",
	)
)
