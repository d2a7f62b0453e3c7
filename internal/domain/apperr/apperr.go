// Package apperr defines the typed error taxonomy of the identity core.
//
// Domain services and use cases return *Error values; the HTTP layer maps
// them to status codes via HTTPStatus without inspecting message text.
package apperr

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error identifier.
type Code string

const (
	CodeValidation     Code = "VALIDATION_ERROR"
	CodeAlreadyExists  Code = "ALREADY_EXISTS"
	CodeAuthentication Code = "AUTHENTICATION_FAILED"
	CodeUnauthorized   Code = "UNAUTHORIZED"
	CodeTokenExpired   Code = "TOKEN_EXPIRED"
	CodeTokenInvalid   Code = "TOKEN_INVALID"
	CodeNotFound       Code = "NOT_FOUND"
	CodeInternal       Code = "INTERNAL_ERROR"
)

// Error is the canonical domain error.
//
// Message is client-safe; Cause is for server-side logging only and is
// never serialized.
type Error struct {
	Code       Code   `json:"code"`
	Message    string `json:"error"`
	HTTPStatus int    `json:"-"`
	Cause      error  `json:"-"`
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is and errors.As traverse the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

// Validation reports malformed input at the value-object boundary.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg, HTTPStatus: http.StatusBadRequest}
}

// AlreadyExists reports a uniqueness-invariant violation (duplicate email,
// duplicate super-admin).
func AlreadyExists(msg string) *Error {
	return &Error{Code: CodeAlreadyExists, Message: msg, HTTPStatus: http.StatusConflict}
}

// Authentication reports a credential mismatch or an inactive account.
func Authentication(msg string) *Error {
	return &Error{Code: CodeAuthentication, Message: msg, HTTPStatus: http.StatusUnauthorized}
}

// Unauthorized reports a caller lacking the role a privileged operation
// requires.
func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg, HTTPStatus: http.StatusForbidden}
}

// TokenExpired reports a token whose exp instant has passed.
func TokenExpired(msg string) *Error {
	return &Error{Code: CodeTokenExpired, Message: msg, HTTPStatus: http.StatusUnauthorized}
}

// TokenInvalid reports a token that fails signature or structural checks.
func TokenInvalid(msg string) *Error {
	return &Error{Code: CodeTokenInvalid, Message: msg, HTTPStatus: http.StatusUnauthorized}
}

// NotFound reports an absent resource.
func NotFound(resource string) *Error {
	return &Error{Code: CodeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

// Internal wraps an unexpected failure; the cause stays server-side.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "an unexpected error occurred", HTTPStatus: http.StatusInternalServerError, Cause: cause}
}

// As extracts the *Error from err's chain, or nil.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	if ae := As(err); ae != nil {
		return ae.Code == code
	}
	return false
}
