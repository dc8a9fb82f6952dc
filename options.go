package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/inkwell/inkwell-client/internal/retry"
	"github.com/inkwell/inkwell-client/internal/session"
)

const (
	// DefaultRequestTimeout bounds a metadata round-trip. Generous
	// because the backend may need to wake from scale-to-zero.
	DefaultRequestTimeout = 120 * time.Second

	// DefaultUploadTimeout bounds blog creation, whose multipart payload
	// may carry an image.
	DefaultUploadTimeout = 180 * time.Second

	// DefaultProbeTimeout bounds the recovery probe between retries.
	DefaultProbeTimeout = 10 * time.Second
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer transport wrapper is installed, so
// transport-related options (like debug logging) end up underneath it.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. The bearer transport
// wrapper is still installed on top of its transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = h
		return nil
	}
}

// WithRequestTimeout sets the per-call timeout for metadata operations.
// The value must be greater than zero.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("request timeout must be > 0")
		}
		c.requestTimeout = d
		return nil
	}
}

// WithUploadTimeout sets the per-call timeout for blog creation. Uploads
// carry larger payloads than metadata reads, so this defaults higher.
func WithUploadTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("upload timeout must be > 0")
		}
		c.uploadTimeout = d
		return nil
	}
}

// WithProbeTimeout bounds the recovery probe issued between retries.
func WithProbeTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("probe timeout must be > 0")
		}
		c.probeTimeout = d
		return nil
	}
}

// WithRetryPolicy sets the retry budget. maxAttempts counts the initial
// attempt; baseDelay is the first retry wait, the n-th retry waits n times
// baseDelay.
func WithRetryPolicy(maxAttempts int, baseDelay time.Duration) Option {
	return func(c *Client) error {
		if maxAttempts < 1 {
			return fmt.Errorf("max attempts must be >= 1")
		}
		if baseDelay <= 0 {
			return fmt.Errorf("base delay must be > 0")
		}
		c.retryPolicy = retry.Policy{MaxAttempts: maxAttempts, BaseDelay: baseDelay}
		return nil
	}
}

// WithTokenFile persists the session at the given path instead of the
// default location under the user config directory.
func WithTokenFile(path string) Option {
	return func(c *Client) error {
		if path == "" {
			return fmt.Errorf("token file path must not be empty")
		}
		c.session = session.New(session.FileSlot{Path: path})
		return nil
	}
}

// WithInMemorySession keeps the session in memory only; nothing survives
// process restart.
func WithInMemorySession() Option {
	return func(c *Client) error {
		c.session = session.New(session.NopSlot{})
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// The debug transport is installed beneath the bearer wrapper; logs are
// emitted before the request is forwarded to the next transport. Do not
// enable this option in production environments as it increases verbosity
// and dumps headers, including the Authorization header.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
