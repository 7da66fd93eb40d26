package workers

import (
	"context"
	"fmt"
	"time"

	"voice-bridge/internal/observability"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how often a failing event is retried in place before it
// is left for redelivery.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy returns the retry policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: 500 * time.Millisecond}
}

func (r RetryPolicy) normalized() RetryPolicy {
	if r.MaxAttempts <= 0 {
		r.MaxAttempts = 1
	}
	if r.Backoff < 0 {
		r.Backoff = 0
	}
	return r
}

// backOff doubles the wait after each failure, without jitter, and stops
// after MaxAttempts or when ctx is done.
func (r RetryPolicy) backOff(ctx context.Context) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.Backoff),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(r.MaxAttempts-1)), ctx)
}

// processWithRetry runs the processor until it succeeds, attempts run out, or
// ctx is cancelled.
func processWithRetry(ctx context.Context, processor EventProcessor, event EventMessage,
	policy RetryPolicy, logger *observability.Logger) error {
	policy = policy.normalized()

	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		return processor.Process(ctx, event)
	}, policy.backOff(ctx), func(err error, wait time.Duration) {
		logger.Warn(ctx, fmt.Sprintf("attempt %d/%d for event %s failed, retrying in %s: %v",
			attempt, policy.MaxAttempts, event.ID, wait, err))
	})
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return fmt.Errorf("retry of event %s cancelled after %d attempts: %w", event.ID, attempt, ctx.Err())
	default:
		return fmt.Errorf("event %s failed after %d attempts: %w", event.ID, attempt, err)
	}
}
