package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/lexicon"
)

// Default retry settings: three attempts, waiting 1s then 2s between them.
const (
	DefaultRetries    = 3
	DefaultRetryDelay = 1 * time.Second
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// RetryOptions configures FetchWithRetry.
type RetryOptions struct {
	// Retries is the total number of attempts. Values below 1 mean one attempt.
	Retries int

	// Delay is the base backoff. After failed attempt n the next attempt
	// waits Delay*n.
	Delay time.Duration

	// Wait overrides how backoff delays are spent. Used by tests.
	Wait WaitFunc
}

// DefaultRetryOptions returns three attempts with a 1s linear backoff.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{Retries: DefaultRetries, Delay: DefaultRetryDelay}
}

// FetchWithRetry calls fetch until it succeeds or opts.Retries attempts
// have failed, backing off linearly between attempts. On exhaustion it
// returns a *lexicon.FetchExhaustedError wrapping the last failure.
// The logger, if provided, is called for each failed attempt.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, opts RetryOptions) (string, error) {
	attempts := max(opts.Retries, 1)
	wait := opts.Wait
	if wait == nil {
		wait = sleep
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if logger != nil {
			logger("attempt %d/%d failed for %s: %v", attempt, attempts, url, err)
		}

		if attempt == attempts {
			break
		}

		if err := wait(ctx, opts.Delay*time.Duration(attempt)); err != nil {
			return "", err
		}
	}

	return "", &lexicon.FetchExhaustedError{URL: url, Attempts: attempts, Err: lastErr}
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
