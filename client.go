// Package client is the Go SDK for the Inkwell blog service: an
// authenticated HTTP client with failure classification, bounded retry
// with cold-start recovery, a session store with single global
// invalidation, and a reconciling collection cache for the presentation
// tier.
package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/inkwell/inkwell-client/internal/api"
	"github.com/inkwell/inkwell-client/internal/retry"
	"github.com/inkwell/inkwell-client/internal/session"
)

// Client core. Construct with New or NewFromEnv; the zero value is not
// usable. A Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	disp    *api.Dispatcher

	requestTimeout time.Duration
	uploadTimeout  time.Duration
	probeTimeout   time.Duration
	retryPolicy    retry.Policy

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given API base URL (the prefix under
// which /blogs, /authors and /admin live; the health probe targets the
// service root above it). Additional options can be provided via
// functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:        baseURL,
		http:           &http.Client{},
		requestTimeout: DefaultRequestTimeout,
		uploadTimeout:  DefaultUploadTimeout,
		probeTimeout:   DefaultProbeTimeout,
		retryPolicy:    retry.Policy{MaxAttempts: retry.DefaultMaxAttempts, BaseDelay: retry.DefaultBaseDelay},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.session == nil {
		c.session = session.New(defaultSlot())
	}
	if err := c.session.Init(); err != nil {
		log.Warn().Err(err).Msg("session rehydration failed, starting unauthenticated")
	}
	c.session.Subscribe(func() { sessionInvalidationsTotal.Inc() })

	// Wrap the HTTP transport to attach the bearer token of the live
	// session to every outgoing request.
	c.wrapTransportWithSession()

	c.disp = api.NewDispatcher(c.http, c.baseURL, c.session)
	return c
}

// defaultSlot resolves the durable token slot. When no config directory is
// available the session stays in memory only.
func defaultSlot() session.Slot {
	path, err := session.DefaultPath()
	if err != nil {
		log.Warn().Err(err).Msg("no user config dir, session will not persist")
		return session.NopSlot{}
	}
	return session.FileSlot{Path: path}
}

// wrapTransportWithSession wraps the HTTP client's transport so every
// request carries Authorization: Bearer <token> iff the session holds a
// token at dispatch time. Unauthenticated calls (login, health) go out
// bare.
func (c *Client) wrapTransportWithSession() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:    baseTransport,
		session: c.session,
	}
}

// bearerTransport wraps an http.RoundTripper to attach the session token.
type bearerTransport struct {
	base    http.RoundTripper
	session *session.Store
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.session.CurrentToken()
	if token == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// OnSessionInvalidated registers fn to run when the session is torn down,
// whether by explicit logout or by a 401. The presentation layer uses this
// to navigate to the login surface; concurrent 401s fire it once.
func (c *Client) OnSessionInvalidated(fn func()) {
	c.session.Subscribe(fn)
}

// IsAuthenticated reports whether a session token is held.
func (c *Client) IsAuthenticated() bool {
	return c.session.CurrentToken() != ""
}

// CurrentSession returns a copy of the live session. Token and Email are
// both set or both empty.
func (c *Client) CurrentSession() Session {
	return c.session.Current()
}

// probe is the recovery action threaded into every retried operation: a
// best-effort wake-up request against the service root, failure ignored.
func (c *Client) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()
	if err := api.Health(probeCtx, c.disp, 0); err != nil {
		log.Debug().Err(err).Msg("wake probe failed; expected during cold start")
		return
	}
	log.Debug().Msg("wake probe answered")
}
