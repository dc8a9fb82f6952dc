package client

import (
	"context"

	"github.com/inkwell/inkwell-client/internal/api"
	"github.com/inkwell/inkwell-client/internal/retry"
)

// --------------------------------------------------------------------
// Blog operations - delegated to internal/api through the retry layer
// --------------------------------------------------------------------

// ListBlogs retrieves the full blog collection. Feed the result to
// BlogCache.Load.
func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	var blogs []Blog
	err := retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		var err error
		blogs, err = api.ListBlogs(ctx, c.disp, c.requestTimeout)
		return err
	}, c.probe)
	return blogs, err
}

// CreateBlog uploads a new post as a multipart form. The image reader, if
// any, is buffered once so retries can replay the body. When the backend
// returns the created entity it is returned for BlogCache.ApplyCreate;
// (nil, nil) means reconcile via the next ListBlogs.
func (c *Client) CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error) {
	form, contentType, err := api.EncodeBlogForm(req)
	if err != nil {
		return nil, err
	}
	var blog *Blog
	err = retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		var err error
		blog, err = api.CreateBlog(ctx, c.disp, contentType, form, c.uploadTimeout)
		return err
	}, c.probe)
	return blog, err
}

// UpdateBlog replaces the editable fields of the post with the given id.
// On success apply the same fields via BlogCache.ApplyUpdate.
func (c *Client) UpdateBlog(ctx context.Context, id string, req UpdateBlogRequest) error {
	return retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		return api.UpdateBlog(ctx, c.disp, id, req, c.requestTimeout)
	}, c.probe)
}

// DeleteBlog removes the post with the given id. On success apply
// BlogCache.ApplyDelete.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return retry.Do(ctx, c.retryPolicy, func(ctx context.Context) error {
		return api.DeleteBlog(ctx, c.disp, id, c.requestTimeout)
	}, c.probe)
}
