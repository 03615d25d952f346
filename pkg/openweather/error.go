package openweather

import (
	"fmt"

	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Error is returned when the weather provider responds with a non-success
// status. It unwraps to one of wearbot.ErrUnauthorized, wearbot.ErrNotFound
// or wearbot.ErrUpstream.
type Error struct {
	Code    wearbot.Err `json:"-"`
	Status  int         `json:"status"`
	Message string      `json:"message"`
}

var _ error = (*Error)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newError(code wearbot.Err, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *Error) Error() string {
	switch e.Code {
	case wearbot.ErrUpstream:
		return fmt.Sprintf("weather provider returned status %d", e.Status)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Code
}
