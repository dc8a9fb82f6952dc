package types

import "io"

// ------------------------------
// Request Types
// ------------------------------

// CreateBlogRequest holds parameters for a new post. The wire encoding is
// multipart form data; Image, when non-nil, is streamed as the binary part
// named "image" with ImageName as its filename.
type CreateBlogRequest struct {
	Title     string
	Content   string
	AuthorID  string
	ImageName string
	Image     io.Reader
}

// UpdateBlogRequest holds the editable fields of a post. Author, image and
// creation time are never sent; the server keeps them untouched.
type UpdateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateAuthorRequest holds parameters for a new author.
type CreateAuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// LoginRequest holds admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
