// Package outcome provides the closed failure taxonomy for the client SDK.
// Every failure that crosses the dispatcher boundary is one of these kinds;
// downstream consumers switch on a closed set instead of probing error shape.
package outcome

import (
	"errors"
	"fmt"
)

// Kind determines how a failure is handled by retry and presentation logic.
type Kind int

const (
	// Transient covers timeouts and connectivity loss. Retry-eligible:
	// the service may simply be asleep (cold start).
	Transient Kind = iota

	// Unauthorized is a 401. Terminal for the call and tears down the
	// session globally.
	Unauthorized

	// ClientError is any 4xx other than 401. Terminal, caller-correctable.
	ClientError

	// ServerError is any 5xx. Terminal and not retried by default; a
	// served 5xx is a remote logic fault, not a cold start.
	ServerError

	// Unknown is the defensive catch-all for unrecognized failures.
	Unknown
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Transient:
		return "Transient"
	case Unauthorized:
		return "Unauthorized"
	case ClientError:
		return "ClientError"
	case ServerError:
		return "ServerError"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error wraps a failure with its classification. Status is 0 when no HTTP
// response was received. Message carries the server-provided error text when
// the response body included one.
type Error struct {
	Kind       Kind
	Status     int
	Message    string
	Body       string
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		if e.Message != "" {
			return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.Status, e.Message)
		}
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Kind, e.Status, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Kind, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// KindOf reports the classification of err. Errors that did not pass through
// the dispatcher classify as Unknown.
func KindOf(err error) Kind {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return Unknown
}

// IsTransient reports whether err should be retried.
func IsTransient(err error) bool { return KindOf(err) == Transient }

// StatusOf returns the HTTP status carried by err, or 0 when the failure
// produced no response.
func StatusOf(err error) int {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Status
	}
	return 0
}

// MessageOf returns the server-provided message when present, else the
// error text. Intended for presentation-layer notifications.
func MessageOf(err error) string {
	var oe *Error
	if errors.As(err, &oe) && oe.Message != "" {
		return oe.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
