// Package errors defines the application error taxonomy surfaced over the API.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// API status codes carried in every response body.
const (
	CodeSuccess           = "SUCCESS"
	CodeMissingParameters = "MISSING_PARAMETERS"
	CodeWrongParameters   = "WRONG_PARAMETERS"
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeDatabaseError     = "DATABASE_ERROR"
	CodeUnauthorized      = "UNAUTHORIZED"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // API status code, e.g. "WRONG_PARAMETERS"
	Message() string   // User-facing error message
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

// ErrorCode returns the API status code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// MissingParameters reports a required field the client omitted. 400.
func MissingParameters(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeMissingParameters, message, "")
}

// WrongParameters reports a referenced entity that is absent, not owned by
// the caller, or a malformed value. 400.
func WrongParameters(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeWrongParameters, message, "")
}

// WrongCredentials is the authentication flavour of WrongParameters: same API
// code, 401 status. Login and password re-verification failures use this so
// the status code never reveals whether the account exists.
func WrongCredentials(message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, CodeWrongParameters, message, "")
}

// AlreadyRegistered reports a uniqueness conflict. 403.
func AlreadyRegistered(message string) *BaseError {
	return NewBaseError(http.StatusForbidden, CodeAlreadyRegistered, message, "")
}

// Unauthorized reports a failed bearer-token authorization. 401.
func Unauthorized(message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, CodeUnauthorized, message, "")
}

// DatabaseExecuteError represents a storage failure, opaque to the caller.
// The underlying cause is logged, never surfaced.
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

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the API status code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeDatabaseError
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Query to database error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
