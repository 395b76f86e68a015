// Package domainerrors defines the error taxonomy shared by every layer of the
// service. Infrastructure code translates raw failures into a Code exactly once;
// the HTTP layer maps each Code to a status in pkg/platform/httputil.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies an error kind. Values are stable snake_case strings.
type Code string

const (
	// CodeBadRequest marks malformed input (bad path params, unreadable JSON).
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks well-formed input that violates field constraints.
	CodeValidation Code = "validation_error"
	// CodeNotFound marks an entity the upstream does not know.
	CodeNotFound Code = "not_found"
	// CodeTooManyRequests marks upstream throttling (HTTP 429).
	CodeTooManyRequests Code = "too_many_requests"
	// CodeUnavailable marks upstream 5xx, connection failures and timeouts.
	CodeUnavailable Code = "service_unavailable"
	// CodeBadUpstreamRequest marks an upstream 4xx other than 404 and 429.
	CodeBadUpstreamRequest Code = "bad_upstream_request"
	// CodeUpstreamProtocol marks an upstream body that could not be decoded.
	CodeUpstreamProtocol Code = "upstream_protocol"
	// CodeInternal is the fallback for anything unexpected.
	CodeInternal Code = "internal_error"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// From extracts the outermost coded error from err's chain.
func From(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether the outermost coded error in err's chain has code.
func HasCode(err error, code Code) bool {
	de, ok := From(err)
	return ok && de.Code == code
}

// CodeOf returns the code of err, or CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	if de, ok := From(err); ok {
		return de.Code
	}
	return CodeInternal
}
