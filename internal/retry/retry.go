// Package retry wraps dispatcher calls with a bounded retry budget tuned
// for cold-start recovery: only transient failures are retried, with a
// linear wait and a best-effort wake probe between attempts.
package retry

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/inkwell-client/internal/outcome"
)

const (
	// DefaultMaxAttempts is 1 initial attempt plus 2 retries.
	DefaultMaxAttempts = 3

	// DefaultBaseDelay is the first retry wait; the n-th retry waits
	// n times this value. Sized for a backend waking from scale-to-zero.
	DefaultBaseDelay = 5 * time.Second
)

// Policy groups the retry tunables for one operation.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// Operation is a single dispatcher call. A nil error is success; failures
// carry an outcome classification.
type Operation func(ctx context.Context) error

// Probe is the best-effort recovery action fired between attempts,
// typically an unauthenticated health request to the service root. Its own
// failure is ignored.
type Probe func(ctx context.Context)

// linearDelay yields BaseDelay, 2×BaseDelay, … It implements
// backoff.BackOff so the wait source is interchangeable with the
// exponential policies used elsewhere.
type linearDelay struct {
	base time.Duration
	n    int
}

func (l *linearDelay) NextBackOff() time.Duration {
	l.n++
	return time.Duration(l.n) * l.base
}

func (l *linearDelay) Reset() { l.n = 0 }

var _ backoff.BackOff = (*linearDelay)(nil)

// Do runs op under the policy. Success and every non-transient failure
// return immediately; a transient failure waits, probes, and retries until
// the budget is spent, after which the last transient failure is returned.
// Cancelling ctx stops the chain at the next suspension point.
func Do(ctx context.Context, p Policy, op Operation, probe Probe) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}

	var delay backoff.BackOff = &linearDelay{base: p.BaseDelay}
	delay.Reset()

	for attempt := 1; ; attempt++ {
		err := op(ctx)
		if err == nil || !outcome.IsTransient(err) {
			return err
		}
		if attempt >= p.MaxAttempts {
			return err
		}

		wait := delay.NextBackOff()
		log.Debug().
			Int("attempt", attempt).
			Int("max_attempts", p.MaxAttempts).
			Dur("wait", wait).
			Msg("transient failure, backing off before retry")
		retriesTotal.Inc()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return outcome.FromTransport("retry wait", ctx.Err())
		case <-timer.C:
		}

		if probe != nil {
			probesTotal.Inc()
			probe(ctx)
		}
	}
}
