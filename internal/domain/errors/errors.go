package errors

import (
	"net/http"

	"registrar/internal/errors"
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

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
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
	// Registration errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email already exists or is awaiting confirmation",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too weak. It should be at least 8 characters long, contain uppercase and lowercase letters, a number, and a special character.",
		"",
	)

	ErrPasswordTooLong = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_LONG",
		"Password is too long. It must be at most 72 bytes.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrCodeDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"CODE_DELIVERY_FAILED",
		"Could not send the confirmation email. Please register again.",
		"",
	)

	// Confirmation errors
	ErrPendingRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"PENDING_REGISTRATION_NOT_FOUND",
		"No pending registration found for this email",
		"",
	)

	ErrConfirmationCodeExpired = NewBaseError(
		http.StatusGone,
		"CONFIRMATION_CODE_EXPIRED",
		"Confirmation code has expired. Please register again.",
		"",
	)

	ErrConfirmationCodeMismatch = NewBaseError(
		http.StatusBadRequest,
		"CONFIRMATION_CODE_MISMATCH",
		"Invalid confirmation code",
		"",
	)

	ErrConfirmationInProgress = NewBaseError(
		http.StatusConflict,
		"CONFIRMATION_IN_PROGRESS",
		"Confirmation is already in progress for this email",
		"",
	)

	ErrPersistenceFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"PERSISTENCE_FAILED",
		"Could not create the account. Please retry the confirmation.",
		"",
	)

	// Login errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrAccountLocked = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_LOCKED",
		"Too many failed login attempts. Please try again later.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
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

// Unwrap exposes the driver error.
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
