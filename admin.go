package client

import (
	"context"

	"github.com/inkwell/inkwell-client/internal/api"
	"github.com/inkwell/inkwell-client/internal/retry"
	"github.com/inkwell/inkwell-client/internal/types"
)

// --------------------------------------------------------------------
// Admin operations - login, logout, health
// --------------------------------------------------------------------

// Login authenticates with admin credentials and establishes the session
// (token and identity, persisted durably). Login itself goes out
// unauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var token string
	err := retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		var err error
		token, err = api.Login(ctx, c.disp, types.LoginRequest{Email: email, Password: password}, c.requestTimeout)
		return err
	}, c.probe)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoToken
	}
	return c.session.Establish(token, email)
}

// Logout ends the server-side session and clears the local one. The local
// session is cleared even when the wire call fails, so a dead backend
// cannot pin a stale token.
func (c *Client) Logout(ctx context.Context) error {
	wireErr := retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		return api.Logout(ctx, c.disp, c.requestTimeout)
	}, c.probe)
	if err := c.session.Clear(); err != nil {
		return err
	}
	return wireErr
}

// Health probes the service root once, without retry. A nil error means
// the backend is reachable and awake.
func (c *Client) Health(ctx context.Context) error {
	return api.Health(ctx, c.disp, c.probeTimeout)
}
