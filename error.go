package wearbot

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is an error code which classifies a failure. Wrapped errors can be
// matched with errors.Is or recovered with errors.As.
type Err int

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrConflict
	ErrInternalServerError
	ErrMaxTokens
	ErrUnauthorized
	ErrUpstream
)

var errText = map[Err]string{
	ErrSuccess:             "success",
	ErrNotFound:            "not found",
	ErrBadParameter:        "bad parameter",
	ErrNotImplemented:      "not implemented",
	ErrConflict:            "conflict",
	ErrInternalServerError: "internal server error",
	ErrMaxTokens:           "response truncated: max tokens reached",
	ErrUnauthorized:        "unauthorized",
	ErrUpstream:            "upstream error",
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	if text, exists := errText[e]; exists {
		return text
	}
	return fmt.Sprintf("error code %d", int(e))
}

// With returns the error code wrapped with a message
func (e Err) With(args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

// Withf returns the error code wrapped with a formatted message
func (e Err) Withf(format string, args ...any) error {
	return e.With(fmt.Sprintf(format, args...))
}
