package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/inkwell/inkwell-client/internal/outcome"
	"github.com/inkwell/inkwell-client/internal/types"
)

// ListBlogs retrieves the full blog collection.
func ListBlogs(ctx context.Context, d *Dispatcher, timeout time.Duration) ([]types.Blog, error) {
	res, err := d.Send(ctx, "list blogs", Descriptor{
		Method:  http.MethodGet,
		Path:    "/blogs",
		Timeout: timeout,
	})
	if err != nil {
		return nil, err
	}
	var blogs []types.Blog
	if err := json.Unmarshal(res.Body, &blogs); err != nil {
		return nil, decodeError("list blogs", res.Status, err)
	}
	return blogs, nil
}

// EncodeBlogForm renders the multipart body for blog creation once, so
// retries can replay it from a byte slice instead of a drained reader.
func EncodeBlogForm(req types.CreateBlogRequest) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("title", req.Title); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("content", req.Content); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("author", req.AuthorID); err != nil {
		return nil, "", err
	}
	if req.Image != nil {
		name := req.ImageName
		if name == "" {
			name = "image"
		}
		part, err := w.CreateFormFile("image", name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, req.Image); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// CreateBlog posts an encoded multipart form. When the backend returns the
// created entity it is decoded and returned; a body without one yields
// (nil, nil) and the caller reconciles via the next full fetch.
func CreateBlog(ctx context.Context, d *Dispatcher, contentType string, form []byte, timeout time.Duration) (*types.Blog, error) {
	res, err := d.Send(ctx, "create blog", Descriptor{
		Method:      http.MethodPost,
		Path:        "/blogs",
		Body:        bytes.NewReader(form),
		ContentType: contentType,
		Timeout:     timeout,
	})
	if err != nil {
		return nil, err
	}
	var blog types.Blog
	if len(res.Body) == 0 || json.Unmarshal(res.Body, &blog) != nil || blog.ID == "" {
		return nil, nil
	}
	return &blog, nil
}

// UpdateBlog replaces the editable fields of the post with the given id.
func UpdateBlog(ctx context.Context, d *Dispatcher, id string, req types.UpdateBlogRequest, timeout time.Duration) error {
	body, err := json.Marshal(req)
	if err != nil {
		return &outcome.Error{Kind: outcome.Unknown, Underlying: err}
	}
	_, err = d.Send(ctx, "update blog", Descriptor{
		Method:      http.MethodPut,
		Path:        "/blogs/" + id,
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
		Timeout:     timeout,
	})
	return err
}

// DeleteBlog removes the post with the given id.
func DeleteBlog(ctx context.Context, d *Dispatcher, id string, timeout time.Duration) error {
	_, err := d.Send(ctx, "delete blog", Descriptor{
		Method:  http.MethodDelete,
		Path:    "/blogs/" + id,
		Timeout: timeout,
	})
	return err
}

func decodeError(op string, status int, err error) *outcome.Error {
	return &outcome.Error{
		Kind:       outcome.Unknown,
		Status:     status,
		Underlying: fmt.Errorf("%s: decoding response: %w", op, err),
	}
}
