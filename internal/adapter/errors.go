package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInternalServerError  = errors.New("internal server error")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrUnexpectedStatus     = errors.New("unexpected status")

	ErrMissingToken = errors.New("response carries no bearer token")
	ErrNotLoggedIn  = errors.New("no token set, register or login first")
)

// ResponseError is a non-2xx API response.
type ResponseError struct {
	StatusCode int
	Message    string
	// Violations lists every failed rule of a rejected request, e.g. all
	// password strength rules a weak password broke.
	Violations []string

	err error
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("%s (http %d): %s", e.err, e.StatusCode, e.Message)
	if len(e.Violations) > 0 {
		msg += ": " + strings.Join(e.Violations, "; ")
	}

	return msg
}

func (e *ResponseError) Unwrap() error {
	return e.err
}
