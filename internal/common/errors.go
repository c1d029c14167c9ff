// Package common defines shared constants and sentinel errors used across
// the server and the CLI client. Callers should use errors.Is to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// store-level errors
	ErrorNotFound = errors.New("not found")

	// service-level errors
	ErrorInternal     = errors.New("internal error")
	ErrorInvalidInput = errors.New("invalid input")
	ErrorConflict     = errors.New("conflict")
	ErrorForbidden    = errors.New("forbidden")
	ErrorThrottled    = errors.New("throttled")
)

// Error is a request-level failure with a human-readable message.
// It matches its Kind through errors.Is.
type Error struct {
	Kind    error
	Message string
}

// NewError returns an Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// ThrottledError reports how long a caller must wait before retrying.
type ThrottledError struct {
	RemainingSeconds int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("Wait %d seconds before resending OTP.", e.RemainingSeconds)
}

func (e *ThrottledError) Unwrap() error { return ErrorThrottled }
