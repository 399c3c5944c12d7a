package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy handles retry logic with exponential backoff. Transient store
// failures get a bounded number of attempts; exhaustion surfaces the last
// error instead of retrying indefinitely.
type Policy struct {
	maxAttempts  int
	initialDelay time.Duration
	maxDelay     time.Duration
}

// NewPolicy creates a new retry policy.
func NewPolicy(maxAttempts int, initialDelay time.Duration) *Policy {
	return &Policy{
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
		maxDelay:     30 * time.Second, // Cap at 30 seconds
	}
}

// Execute runs a function with retry logic, giving up early if the context
// is cancelled.
func (p *Policy) Execute(ctx context.Context, fn func() error) error {
	var lastErr error
	delay := p.initialDelay

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't sleep after the last attempt
		if attempt < p.maxAttempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("cancelled after %d attempts: %w", attempt, lastErr)
			case <-time.After(delay):
			}

			delay = time.Duration(float64(delay) * 1.5)
			if delay > p.maxDelay {
				delay = p.maxDelay
			}
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", p.maxAttempts, lastErr)
}
