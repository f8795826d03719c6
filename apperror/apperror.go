// Package apperror defines a centralized system for application-specific errors.
// Services return *AppError values; HTTP handlers map them to status codes and
// a uniform JSON error body without inspecting the underlying cause.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database
	DatabaseError
	// ConfigError represents an error related to application configuration
	ConfigError
	// MigrationError represents an error during database migrations
	MigrationError
	// InvalidCredentialsError represents a failed username/password check
	InvalidCredentialsError
	// UnauthorizedError represents an auth-gate failure (missing or wrong identity)
	UnauthorizedError
	// NotFoundError represents a resource not found error
	NotFoundError
	// BadRequestError represents a malformed or incomplete request
	BadRequestError
	// InternalError represents a generic internal server error
	InternalError
	// ConflictError represents a conflict, e.g. a username already taken
	ConflictError
)

// AppError is the custom error type for the application. It carries a
// user-facing message and optionally wraps an underlying error for debugging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // underlying error, never exposed to clients
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so errors.Is/As can walk the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case DatabaseError, ConfigError, MigrationError, InternalError:
		return http.StatusInternalServerError
	case InvalidCredentialsError:
		// A bad username/password is reported as 400, not 401; the 401s are
		// reserved for the auth gates.
		return http.StatusBadRequest
	case UnauthorizedError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError. Prefer the typed constructors below.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewDatabaseError creates a new DatabaseError
func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

// NewConfigError creates a new ConfigError
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewMigrationError creates a new MigrationError
func NewMigrationError(message string, underlyingError error) *AppError {
	return NewAppError(MigrationError, message, underlyingError)
}

// NewInvalidCredentialsError creates a new InvalidCredentialsError
func NewInvalidCredentialsError(message string, underlyingError error) *AppError {
	return NewAppError(InvalidCredentialsError, message, underlyingError)
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(message string, underlyingError error) *AppError {
	return NewAppError(UnauthorizedError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewBadRequestError creates a new BadRequestError
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// ErrorResponse is the JSON error payload returned to API clients.
type ErrorResponse struct {
	Error string `json:"error" example:"A description of the error"`
}

// ToResponse converts an AppError to an ErrorResponse. Only the user-facing
// message is included, never the wrapped error.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
// It returns the *AppError and true if successful, otherwise nil and false.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsConflict checks if an error is a Conflict error
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}

// IsUnauthorized checks if an error is an Unauthorized error
func IsUnauthorized(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == UnauthorizedError
}

// IsInvalidCredentials checks if an error is an InvalidCredentials error
func IsInvalidCredentials(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == InvalidCredentialsError
}
