package client

import (
	"github.com/inkwell/inkwell-client/internal/cache"
	"github.com/inkwell/inkwell-client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	CreateBlogRequest   = types.CreateBlogRequest
	UpdateBlogRequest   = types.UpdateBlogRequest
	CreateAuthorRequest = types.CreateAuthorRequest

	// Domain entities
	Blog    = types.Blog
	Author  = types.Author
	Session = types.Session

	// Collection cache
	BlogCache = cache.Blogs
	BlogPatch = cache.Patch
)

// NewBlogCache returns an empty collection cache for the presentation
// tier. Apply mutations only after the corresponding operation succeeded.
func NewBlogCache() *BlogCache { return cache.NewBlogs() }

// Errors re-exported in errors.go
