// Package api implements the request dispatcher and the named operations
// against the blog backend. Every call funnels through Send, which owns
// classification: no raw transport error crosses this boundary.
package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/inkwell-client/internal/outcome"
	"github.com/inkwell/inkwell-client/internal/session"
)

// Dispatcher executes requests against one backend. baseURL is the API
// prefix (e.g. https://host/api); the health probe lives at the service
// root above it.
type Dispatcher struct {
	http    *http.Client
	baseURL string
	root    string
	session *session.Store
}

// NewDispatcher constructs a Dispatcher. httpClient carries the bearer
// transport installed by the client; sess is consulted on 401 so the
// session is torn down before Send returns.
func NewDispatcher(httpClient *http.Client, baseURL string, sess *session.Store) *Dispatcher {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &Dispatcher{
		http:    httpClient,
		baseURL: baseURL,
		root:    strings.TrimSuffix(baseURL, "/api"),
		session: sess,
	}
}

// BaseURL returns the API prefix the dispatcher was constructed with.
func (d *Dispatcher) BaseURL() string { return d.baseURL }

// Descriptor describes one outgoing request. It is constructed per call
// and not retained.
type Descriptor struct {
	Method      string
	Path        string
	Body        io.Reader
	ContentType string
	Timeout     time.Duration

	// AtServiceRoot joins Path to the service root instead of the API
	// prefix. Used by the health probe.
	AtServiceRoot bool
}

// Result is a successful (2xx) response.
type Result struct {
	Status int
	Body   []byte
}

// Send executes the descriptor and classifies the result. The bearer token
// is attached by the transport iff the session holds one; an absent token
// is not an error. A 401 invalidates the session before Send returns.
func (d *Dispatcher) Send(ctx context.Context, op string, desc Descriptor) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, outcome.FromTransport(op, err)
	}
	if desc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, desc.Timeout)
		defer cancel()
	}

	base := d.baseURL
	if desc.AtServiceRoot {
		base = d.root
	}
	req, err := http.NewRequestWithContext(ctx, desc.Method, base+desc.Path, desc.Body)
	if err != nil {
		return nil, &outcome.Error{Kind: outcome.Unknown, Underlying: err}
	}
	if desc.ContentType != "" {
		req.Header.Set("Content-Type", desc.ContentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := d.http.Do(req)
	if err != nil {
		oe := outcome.FromTransport(op, err)
		requestsTotal.WithLabelValues(oe.Kind.String()).Inc()
		log.Debug().Str("op", op).Str("request_id", requestID).Err(oe).Msg("request failed before response")
		return nil, oe
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		oe := outcome.FromTransport(op, err)
		requestsTotal.WithLabelValues(oe.Kind.String()).Inc()
		return nil, oe
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		requestsTotal.WithLabelValues("Success").Inc()
		return &Result{Status: resp.StatusCode, Body: body}, nil
	}

	oe := outcome.FromStatus(op, resp.StatusCode, body)
	if oe.Kind == outcome.Unauthorized && d.session != nil {
		// Teardown and notification complete before the caller sees
		// the outcome.
		d.session.Invalidate()
	}
	requestsTotal.WithLabelValues(oe.Kind.String()).Inc()
	log.Debug().Str("op", op).Str("request_id", requestID).Int("status", resp.StatusCode).Msg("request rejected")
	return nil, oe
}
