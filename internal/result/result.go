// Package result defines the JSON payloads emitted by every command and the
// typed error kinds carried in error payloads.
//
// Each command has its own closed payload struct rather than a loose map, so
// the fields a consumer depends on are checked at compile time. All failures
// share the {"error": KIND, "message": ...} shape.
package result

import (
	"errors"
	"fmt"
)

// Kind identifies the error class reported to the caller.
type Kind string

const (
	KindConnectionFailed Kind = "CONNECTION_FAILED"
	KindSessionNotFound  Kind = "SESSION_NOT_FOUND"
	KindNotInMux         Kind = "NOT_IN_MUX"
	KindNoSidePane       Kind = "NO_SIDE_PANE"
	KindReadFailed       Kind = "READ_FAILED"
	KindSendFailed       Kind = "SEND_FAILED"
	KindSplitFailed      Kind = "SPLIT_FAILED"
	KindInvalidControl   Kind = "INVALID_CONTROL"

	// KindError is the fallback for failures with no specific class.
	KindError Kind = "ERROR"
)

// Error is a terminal command failure. The first Error encountered ends the
// invocation; there is no retry and no partial success.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by err, or KindError for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindError
}

// ErrorPayload is the JSON shape shared by all failures.
type ErrorPayload struct {
	Error   Kind   `json:"error"`
	Message string `json:"message"`
}

// PayloadFor maps any error to its structured payload. The message is
// surfaced verbatim — errors are reported, never swallowed.
func PayloadFor(err error) ErrorPayload {
	return ErrorPayload{Error: KindOf(err), Message: err.Error()}
}
