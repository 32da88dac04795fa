// Package apierror defines the error taxonomy shared by the provider
// adapters and the HTTP boundary.
package apierror

import (
	"errors"
	"net/http"
)

// Code identifies a class of failure reported to API clients
type Code string

const (
	// CodeValidation - 400: client input is malformed
	CodeValidation Code = "VALIDATION"
	// CodeRateLimited - 429: an upstream provider is throttling us
	CodeRateLimited Code = "RATE_LIMITED"
	// CodeNotFound - 404: the upstream has no data for the location
	CodeNotFound Code = "NOT_FOUND"
	// CodeProviderError - 502: transport failure, malformed upstream
	// response or unexpected error
	CodeProviderError Code = "PROVIDER_ERROR"
)

var statusByCode = map[Code]int{
	CodeValidation:    http.StatusBadRequest,
	CodeRateLimited:   http.StatusTooManyRequests,
	CodeNotFound:      http.StatusNotFound,
	CodeProviderError: http.StatusBadGateway,
}

// HTTPStatus returns the HTTP status for a code. Unknown codes map to 502.
func HTTPStatus(code Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusBadGateway
}

// Error is a classified failure. Err keeps the underlying cause for logging
// and is never shown to API clients.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, so callers can write
// errors.Is(err, apierror.ErrRateLimited).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks
var (
	ErrValidation  = &Error{Code: CodeValidation, Message: "invalid request"}
	ErrRateLimited = &Error{Code: CodeRateLimited, Message: "rate limited by provider"}
	ErrNotFound    = &Error{Code: CodeNotFound, Message: "no data for location"}
	ErrProvider    = &Error{Code: CodeProviderError, Message: "provider request failed"}
)

// New creates a classified error
func New(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Err: cause}
}

// Validation creates a VALIDATION error with a client-facing message
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// RateLimited wraps cause as RATE_LIMITED
func RateLimited(cause error) *Error {
	return New(CodeRateLimited, ErrRateLimited.Message, cause)
}

// NotFound wraps cause as NOT_FOUND
func NotFound(cause error) *Error {
	return New(CodeNotFound, ErrNotFound.Message, cause)
}

// Provider wraps cause as PROVIDER_ERROR
func Provider(cause error) *Error {
	return New(CodeProviderError, ErrProvider.Message, cause)
}

// CodeOf classifies any error. Unclassified errors are provider errors.
func CodeOf(err error) Code {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return CodeProviderError
}
