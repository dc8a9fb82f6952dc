package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inkwell/inkwell-client/internal/outcome"
)

func transient() error {
	return &outcome.Error{Kind: outcome.Transient, Underlying: errors.New("timeout")}
}

func terminal(kind outcome.Kind) error {
	return &outcome.Error{Kind: kind, Status: 500, Underlying: errors.New("nope")}
}

func TestTransientTwiceThenSuccess(t *testing.T) {
	t.Parallel()
	p := Policy{MaxAttempts: 3, BaseDelay: 20 * time.Millisecond}

	var attempts, probes int32
	start := time.Now()
	err := Do(context.Background(), p, func(context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return transient()
		}
		return nil
	}, func(context.Context) { atomic.AddInt32(&probes, 1) })

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if attempts != 3 || probes != 2 {
		t.Fatalf("attempts=%d probes=%d, want 3 and 2", attempts, probes)
	}
	// Linear waits: base*1 + base*2.
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Fatalf("elapsed %v, want >= 60ms", elapsed)
	}
}

func TestNonTransientReturnsImmediately(t *testing.T) {
	t.Parallel()
	p := Policy{MaxAttempts: 3, BaseDelay: time.Hour}

	for _, kind := range []outcome.Kind{outcome.Unauthorized, outcome.ClientError, outcome.ServerError, outcome.Unknown} {
		var attempts, probes int32
		start := time.Now()
		err := Do(context.Background(), p, func(context.Context) error {
			atomic.AddInt32(&attempts, 1)
			return terminal(kind)
		}, func(context.Context) { atomic.AddInt32(&probes, 1) })

		if outcome.KindOf(err) != kind {
			t.Fatalf("kind = %v, want %v", outcome.KindOf(err), kind)
		}
		if attempts != 1 || probes != 0 {
			t.Fatalf("%v: attempts=%d probes=%d, want 1 and 0", kind, attempts, probes)
		}
		if time.Since(start) > time.Second {
			t.Fatalf("%v: backoff wait occurred", kind)
		}
	}
}

func TestBudgetExhaustedReturnsLastTransient(t *testing.T) {
	t.Parallel()
	p := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	var attempts int32
	err := Do(context.Background(), p, func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return transient()
	}, nil)

	if !outcome.IsTransient(err) {
		t.Fatalf("expected transient, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}

func TestCancelDuringBackoffStopsChain(t *testing.T) {
	t.Parallel()
	p := Policy{MaxAttempts: 3, BaseDelay: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	var attempts int32
	done := make(chan error, 1)
	go func() {
		done <- Do(ctx, p, func(context.Context) error {
			atomic.AddInt32(&attempts, 1)
			return transient()
		}, nil)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !outcome.IsTransient(err) {
			t.Fatalf("cancellation classified %v", outcome.KindOf(err))
		}
		if got := atomic.LoadInt32(&attempts); got != 1 {
			t.Fatalf("attempts = %d, want 1", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("retry chain did not stop on cancellation")
	}
}

func TestZeroPolicyUsesDefaults(t *testing.T) {
	t.Parallel()
	var attempts int32
	err := Do(context.Background(), Policy{}, func(context.Context) error {
		atomic.AddInt32(&attempts, 1)
		return nil
	}, nil)
	if err != nil || attempts != 1 {
		t.Fatalf("attempts=%d err=%v", attempts, err)
	}
}

func TestLinearDelaySequence(t *testing.T) {
	t.Parallel()
	d := &linearDelay{base: 5 * time.Second}
	if d.NextBackOff() != 5*time.Second || d.NextBackOff() != 10*time.Second || d.NextBackOff() != 15*time.Second {
		t.Fatalf("linear delay sequence wrong")
	}
	d.Reset()
	if d.NextBackOff() != 5*time.Second {
		t.Fatalf("reset did not restart sequence")
	}
}
