package outcome

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// FromStatus classifies a received HTTP response by status code.
// body is kept for debugging; a server-provided error/message field is
// surfaced as Message.
func FromStatus(operation string, status int, body []byte) *Error {
	e := &Error{
		Status:     status,
		Body:       string(body),
		Message:    serverMessage(body),
		Underlying: fmt.Errorf("%s: status %d", operation, status),
	}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = Unauthorized
	case status >= 400 && status < 500:
		e.Kind = ClientError
	case status >= 500:
		e.Kind = ServerError
	default:
		e.Kind = Unknown
	}
	return e
}

// FromTransport classifies a failure that produced no response. Timeouts and
// connectivity errors are Transient; a cancelled context is Transient as
// well so an abandoned call never masquerades as a definitive rejection.
func FromTransport(operation string, err error) *Error {
	kind := Unknown
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = Transient
	case isTimeout(err), isConnectivity(err):
		kind = Transient
	}
	return &Error{
		Kind:       kind,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isConnectivity(err error) bool {
	var oe *net.OpError
	if errors.As(err, &oe) {
		return true
	}
	var de *net.DNSError
	return errors.As(err, &de)
}

// serverMessage extracts the error text the backend includes in failure
// bodies. Both {"error": ...} and {"message": ...} shapes occur.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
