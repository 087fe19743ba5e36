package jikan

import (
	"context"
	"fmt"
	"time"
)

// backoffFactor is the multiplier applied to the retry delay after each retried attempt
const backoffFactor = 1.5

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepWithContext blocks for the given duration, returning early if the
// context is cancelled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// nextDelay grows the delay by the backoff factor. There is no cap; the
// retry count bounds the total wait.
func nextDelay(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * backoffFactor)
	if next < 0 {
		return 0
	}
	return next
}

// MaxTotalDelay returns the worst-case cumulative wait of a fetch that
// exhausts maxRetries starting from initialDelay.
func MaxTotalDelay(maxRetries int, initialDelay time.Duration) time.Duration {
	var total time.Duration
	delay := initialDelay
	for i := 0; i < maxRetries; i++ {
		total += delay
		delay = nextDelay(delay)
	}
	return total
}

// FetchWithRetry GETs endpoint (relative to the base URL) and returns the raw body.
//
// Transport failures and HTTP 429 are retried up to the configured budget with
// multiplicative backoff. Any other non-2xx status fails immediately.
func (c *Client) FetchWithRetry(ctx context.Context, endpoint string) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	retries := c.maxRetries
	delay := c.retryDelay

	for attempt := 1; ; attempt++ {
		body, err := c.get(ctx, requestURL)
		if err == nil {
			if attempt > 1 {
				c.logger.Debug().
					Str("url", requestURL).
					Int("attempts", attempt).
					Msg("Jikan request recovered")
			}
			return body, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !isRetryable(err) {
			return nil, err
		}
		if retries <= 0 {
			if attempt == 1 {
				return nil, err
			}
			return nil, fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		c.logger.Warn().
			Err(err).
			Str("url", requestURL).
			Dur("delay", delay).
			Int("retries_left", retries).
			Msg("Jikan request failed, retrying")

		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
		retries--
		delay = nextDelay(delay)
	}
}
