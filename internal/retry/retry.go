// Package retry provides a small, explicit retry helper for transient
// filesystem and subprocess failures.
package retry

import (
	"context"
	"time"
)

// Policy controls how Do re-attempts a failing operation.
type Policy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int

	// Delay is the fixed pause between attempts.
	Delay time.Duration

	// Retryable decides whether an error is worth another attempt.
	// A nil predicate retries every error.
	Retryable func(error) bool
}

// DefaultPolicy retries transient errors three times with a one second pause.
func DefaultPolicy(retryable func(error) bool) Policy {
	return Policy{Attempts: 3, Delay: time.Second, Retryable: retryable}
}

// Do runs op until it succeeds, the policy is exhausted, the error is not
// retryable, or ctx is cancelled. The last error is returned.
func Do(ctx context.Context, p Policy, op func(context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Delay):
		}
	}
	return err
}
