package retry

import (
	"context"
	"fmt"
	"time"
)

// Do runs fn up to maxAttempts times with a fixed delay between attempts,
// respecting context cancellation while sleeping. It returns nil on the
// first success and the last error once attempts are exhausted.
//
// Used for printer reconnection, where concurrent or unbounded retries
// against the same device are unsafe.
func Do(ctx context.Context, maxAttempts int, delay time.Duration, fn func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		return fmt.Errorf("retry: maxAttempts must be at least 1, got %d", maxAttempts)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
