// Package apperrors defines the closed set of domain error kinds and the
// HTTP status each one maps to. Handlers attach these to the gin context and
// a single middleware translates them into the response envelope.
package apperrors

import "net/http"

// Code identifies the error kind to clients. Token codes in particular must
// stay distinguishable so a client can re-login silently on expiry but treat
// a tampered token as a hard failure.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeConflict     Code = "conflict"
	CodeAuth         Code = "auth_failed"
	CodeNoToken      Code = "no_token"
	CodeInvalidToken Code = "invalid_token"
	CodeTokenExpired Code = "token_expired"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"
)

// Error carries a status and a client-safe message for one of the known
// kinds. Anything that is not an *Error surfaces as a generic 500.
type Error struct {
	Code    Code
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusConflict, Message: message}
}

func Auth(message string) *Error {
	return &Error{Code: CodeAuth, Status: http.StatusUnauthorized, Message: message}
}

func NoToken() *Error {
	return &Error{Code: CodeNoToken, Status: http.StatusForbidden, Message: "Access denied. No token provided"}
}

func InvalidToken() *Error {
	return &Error{Code: CodeInvalidToken, Status: http.StatusUnauthorized, Message: "Invalid token."}
}

func TokenExpired() *Error {
	return &Error{Code: CodeTokenExpired, Status: http.StatusUnauthorized, Message: "Token has expired, please log in again."}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}
