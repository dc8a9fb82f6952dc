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

// ListAuthors retrieves all authors.
func ListAuthors(ctx context.Context, d *Dispatcher, timeout time.Duration) ([]types.Author, error) {
	res, err := d.Send(ctx, "list authors", Descriptor{
		Method:  http.MethodGet,
		Path:    "/authors",
		Timeout: timeout,
	})
	if err != nil {
		return nil, err
	}
	var authors []types.Author
	if err := json.Unmarshal(res.Body, &authors); err != nil {
		return nil, decodeError("list authors", res.Status, err)
	}
	return authors, nil
}

// CreateAuthor creates a new author and returns the server-confirmed
// entity when the response carries one.
func CreateAuthor(ctx context.Context, d *Dispatcher, req types.CreateAuthorRequest, timeout time.Duration) (*types.Author, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &outcome.Error{Kind: outcome.Unknown, Underlying: err}
	}
	res, err := d.Send(ctx, "create author", Descriptor{
		Method:      http.MethodPost,
		Path:        "/authors",
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
		Timeout:     timeout,
	})
	if err != nil {
		return nil, err
	}
	var author types.Author
	if len(res.Body) == 0 || json.Unmarshal(res.Body, &author) != nil || author.ID == "" {
		return nil, nil
	}
	return &author, nil
}
