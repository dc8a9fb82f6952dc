package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/inkwell/inkwell-client/internal/outcome"
	"github.com/inkwell/inkwell-client/internal/types"
)

// Login authenticates with admin credentials and returns the bearer token.
// Different backend versions key the token as token, accessToken or
// authToken; an empty string means the response carried none of them.
func Login(ctx context.Context, d *Dispatcher, req types.LoginRequest, timeout time.Duration) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", &outcome.Error{Kind: outcome.Unknown, Underlying: err}
	}
	res, err := d.Send(ctx, "login", Descriptor{
		Method:      http.MethodPost,
		Path:        "/admin/login",
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
		Timeout:     timeout,
	})
	if err != nil {
		return "", err
	}
	var lr types.LoginResponse
	if err := json.Unmarshal(res.Body, &lr); err != nil {
		return "", decodeError("login", res.Status, err)
	}
	return lr.BearerToken(), nil
}

// Logout ends the server-side session.
func Logout(ctx context.Context, d *Dispatcher, timeout time.Duration) error {
	_, err := d.Send(ctx, "logout", Descriptor{
		Method:  http.MethodPost,
		Path:    "/admin/logout",
		Timeout: timeout,
	})
	return err
}

// Health probes the service root. A nil error means the backend answered,
// which is all the recovery controller needs to know.
func Health(ctx context.Context, d *Dispatcher, timeout time.Duration) error {
	_, err := d.Send(ctx, "health", Descriptor{
		Method:        http.MethodGet,
		Path:          "/health",
		Timeout:       timeout,
		AtServiceRoot: true,
	})
	return err
}
