package plugin

import (
	"errors"
	"fmt"
)

// HandlerError describes a failed plugin invocation. It carries a
// human-readable message only.
//
// HandlerError is comparable, so errors.Is matches two HandlerErrors with
// the same message. Crash outcomes only match other crash outcomes.
type HandlerError struct {
	Message string

	crashed bool
}

// NewHandlerError creates a HandlerError with the given message.
func NewHandlerError(message string) HandlerError {
	return HandlerError{Message: message}
}

// Error returns the message unchanged.
func (e HandlerError) Error() string { return e.Message }

// Outcomes produced by the dispatcher rather than by a plugin.
var (
	// ErrTimedOut is the outcome of a plugin that did not finish within its
	// timeout window.
	ErrTimedOut = HandlerError{Message: "Plugin timed out"}

	// ErrNotImplemented is the outcome of a plugin that implements neither
	// Handler nor ContextHandler.
	ErrNotImplemented = HandlerError{Message: "Plugin does not implement handle"}

	// ErrCancelled is the outcome of a plugin still running when the
	// caller's context was cancelled.
	ErrCancelled = HandlerError{Message: "Dispatch cancelled"}
)

// Crashed converts a recovered panic value into a HandlerError that
// identifies an abnormal termination.
func Crashed(recovered any) HandlerError {
	return HandlerError{Message: fmt.Sprintf("Plugin crashed: %v", recovered), crashed: true}
}

// IsCrash reports whether err is an abnormal-termination outcome produced
// by Crashed. A plugin failure whose message merely looks like a crash is
// not one.
func IsCrash(err error) bool {
	var he HandlerError
	return errors.As(err, &he) && he.crashed
}

// Normalize turns a plugin's returned error into an outcome. nil stays nil,
// a HandlerError is returned as is, and any other error becomes a
// HandlerError with the same message.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	if he, ok := err.(HandlerError); ok { //nolint:errorlint // wrapped errors keep the wrapper's message
		return he
	}
	if he, ok := err.(*HandlerError); ok && he != nil { //nolint:errorlint // see above
		return *he
	}
	return HandlerError{Message: err.Error()}
}
