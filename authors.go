package client

import (
	"context"

	"github.com/inkwell/inkwell-client/internal/api"
	"github.com/inkwell/inkwell-client/internal/retry"
)

// --------------------------------------------------------------------
// Author operations - delegated to internal/api through the retry layer
// --------------------------------------------------------------------

// ListAuthors retrieves all authors.
func (c *Client) ListAuthors(ctx context.Context) ([]Author, error) {
	var authors []Author
	err := retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		var err error
		authors, err = api.ListAuthors(ctx, c.disp, c.requestTimeout)
		return err
	}, c.probe)
	return authors, err
}

// CreateAuthor creates a new author. The server-confirmed entity is
// returned when the response carries one.
func (c *Client) CreateAuthor(ctx context.Context, req CreateAuthorRequest) (*Author, error) {
	var author *Author
	err := retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		var err error
		author, err = api.CreateAuthor(ctx, c.disp, req, c.requestTimeout)
		return err
	}, c.probe)
	return author, err
}
