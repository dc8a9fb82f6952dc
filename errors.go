package client

import (
	"errors"

	"github.com/inkwell/inkwell-client/internal/outcome"
)

// ErrNoToken is returned by Login when the backend answered successfully
// but its body carried none of the known token keys.
var ErrNoToken = errors.New("no authentication token received from server")

// FailureKind is the closed classification every failed call carries.
type FailureKind = outcome.Kind

// Failure kinds, re-exported so callers compare against a single set.
const (
	Transient    = outcome.Transient
	Unauthorized = outcome.Unauthorized
	ClientError  = outcome.ClientError
	ServerError  = outcome.ServerError
	Unknown      = outcome.Unknown
)

// KindOf reports the classification of err. Errors that did not pass
// through the dispatcher classify as Unknown.
func KindOf(err error) FailureKind { return outcome.KindOf(err) }

// IsTransient reports whether err is retry-eligible (timeout or
// connectivity loss).
func IsTransient(err error) bool { return outcome.IsTransient(err) }

// StatusOf returns the HTTP status carried by err, or 0 when the failure
// produced no response.
func StatusOf(err error) int { return outcome.StatusOf(err) }

// MessageOf returns the server-provided message when present, else the
// error text. Intended for presentation-layer notifications.
func MessageOf(err error) string { return outcome.MessageOf(err) }
