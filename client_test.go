package client

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewPanicsOnEmptyBaseURL(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	New("")
}

func TestCloseIdempotent(t *testing.T) {
	t.Parallel()
	c := New("http://example.com/api", WithInMemorySession())
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestLoginEstablishesSessionAndBearer(t *testing.T) {
	t.Parallel()
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			if r.Header.Get("Authorization") != "" {
				t.Errorf("login went out authenticated")
			}
			_, _ = w.Write([]byte(`{"accessToken":"tok-1"}`))
		case "/api/blogs":
			authHeader = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", WithInMemorySession())
	defer func() { _ = c.Close() }()

	if err := c.Login(context.Background(), "admin@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !c.IsAuthenticated() || c.CurrentSession().Email != "admin@example.com" {
		t.Fatalf("session not established: %+v", c.CurrentSession())
	}
	if _, err := c.ListBlogs(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if authHeader != "Bearer tok-1" {
		t.Fatalf("Authorization = %q", authHeader)
	}
}

func TestLoginWithoutTokenInResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithInMemorySession())
	defer func() { _ = c.Close() }()

	if err := c.Login(context.Background(), "a@b.c", "pw"); !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if c.IsAuthenticated() {
		t.Fatalf("session established without a token")
	}
}

func TestUnauthorizedTearsDownSessionOnce(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/login" {
			_, _ = w.Write([]byte(`{"token":"tok"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, WithInMemorySession())
	defer func() { _ = c.Close() }()

	var fired int
	c.OnSessionInvalidated(func() { fired++ })

	if err := c.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err := c.ListBlogs(context.Background())
	if KindOf(err) != Unauthorized {
		t.Fatalf("kind = %v, want Unauthorized", KindOf(err))
	}
	if c.IsAuthenticated() {
		t.Fatalf("token survived a 401")
	}
	// A second failing call is the same invalidation event.
	_ = c.DeleteBlog(context.Background(), "1")
	if fired != 1 {
		t.Fatalf("invalidation notifications = %d, want 1", fired)
	}
}

func TestLogoutClearsSessionEvenOnWireFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/login" {
			_, _ = w.Write([]byte(`{"token":"tok"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, WithInMemorySession())
	defer func() { _ = c.Close() }()

	var fired int
	c.OnSessionInvalidated(func() { fired++ })

	if err := c.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	err := c.Logout(context.Background())
	if KindOf(err) != ServerError {
		t.Fatalf("wire error kind = %v, want ServerError", KindOf(err))
	}
	if c.IsAuthenticated() || fired != 1 {
		t.Fatalf("authenticated=%v fired=%d after logout", c.IsAuthenticated(), fired)
	}
}

// flakyTransport fails the first n matching requests with a connection
// error, letting probe traffic through untouched.
type flakyTransport struct {
	base      http.RoundTripper
	remaining int
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Path == "/api/blogs" && f.remaining > 0 {
		f.remaining--
		return nil, &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	}
	return f.base.RoundTrip(req)
}

func TestColdStartRecovery(t *testing.T) {
	t.Parallel()
	var probes int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			probes++
		case "/api/blogs":
			_ = json.NewEncoder(w).Encode([]Blog{{ID: "1", Title: "Hi"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/api",
		WithInMemorySession(),
		WithHTTPClient(&http.Client{Transport: &flakyTransport{base: http.DefaultTransport, remaining: 2}}),
		WithRetryPolicy(3, 20*time.Millisecond),
	)
	defer func() { _ = c.Close() }()

	start := time.Now()
	blogs, err := c.ListBlogs(context.Background())
	if err != nil || len(blogs) != 1 || blogs[0].ID != "1" {
		t.Fatalf("ListBlogs: blogs=%+v err=%v", blogs, err)
	}
	if probes != 2 {
		t.Fatalf("wake probes = %d, want 2", probes)
	}
	// Linear backoff: 20ms + 40ms before the third attempt.
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Fatalf("elapsed %v, want >= 60ms", elapsed)
	}
}

func TestHealthProbesServiceRoot(t *testing.T) {
	t.Parallel()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	c := New(srv.URL+"/api", WithInMemorySession())
	defer func() { _ = c.Close() }()

	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
	if gotPath != "/health" {
		t.Fatalf("path = %q, want /health", gotPath)
	}
}
