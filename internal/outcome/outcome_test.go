package outcome

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
)

func TestFromStatusKinds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		want   Kind
	}{
		{401, Unauthorized},
		{400, ClientError},
		{404, ClientError},
		{422, ClientError},
		{500, ServerError},
		{503, ServerError},
		{302, Unknown},
	}
	for _, tc := range cases {
		if got := FromStatus("op", tc.status, nil).Kind; got != tc.want {
			t.Fatalf("status %d classified %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestFromStatusServerMessage(t *testing.T) {
	t.Parallel()
	e := FromStatus("op", 400, []byte(`{"message":"title required"}`))
	if e.Message != "title required" {
		t.Fatalf("message = %q", e.Message)
	}
	e = FromStatus("op", 400, []byte(`{"error":"bad author"}`))
	if e.Message != "bad author" {
		t.Fatalf("message = %q", e.Message)
	}
	e = FromStatus("op", 400, []byte(`not json`))
	if e.Message != "" {
		t.Fatalf("message = %q, want empty", e.Message)
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestFromTransportClassification(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"deadline", &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}, Transient},
		{"canceled", context.Canceled, Transient},
		{"net timeout", timeoutErr{}, Transient},
		{"op error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, Transient},
		{"dns", &net.DNSError{Err: "no such host", Name: "x"}, Transient},
		{"other", errors.New("boom"), Unknown},
	}
	for _, tc := range cases {
		if got := FromTransport("op", tc.err).Kind; got != tc.want {
			t.Fatalf("%s classified %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHelpers(t *testing.T) {
	t.Parallel()
	base := errors.New("boom")
	e := &Error{Kind: ClientError, Status: 404, Message: "gone", Underlying: base}
	wrapped := fmt.Errorf("outer: %w", e)

	if KindOf(wrapped) != ClientError {
		t.Fatalf("KindOf = %v", KindOf(wrapped))
	}
	if StatusOf(wrapped) != 404 {
		t.Fatalf("StatusOf = %d", StatusOf(wrapped))
	}
	if MessageOf(wrapped) != "gone" {
		t.Fatalf("MessageOf = %q", MessageOf(wrapped))
	}
	if !errors.Is(wrapped, base) {
		t.Fatalf("unwrap chain broken")
	}
	if KindOf(errors.New("raw")) != Unknown {
		t.Fatalf("raw error should classify Unknown")
	}
	if IsTransient(e) {
		t.Fatalf("client error is not transient")
	}
}
