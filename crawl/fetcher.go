// Package crawl provides polite retrieval primitives: bounded retries with
// linear backoff and per-host request pacing.
package crawl

import (
	"context"

	"github.com/fwojciec/lexicon"
)

// Ensure RetryFetcher implements lexicon.Fetcher at compile time.
var _ lexicon.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher decorates a lexicon.Fetcher with per-host pacing and
// bounded retries. Every attempt, including retries, waits for the host's
// rate limit first.
type RetryFetcher struct {
	next    lexicon.Fetcher
	limiter lexicon.DomainLimiter
	opts    RetryOptions
	logger  LogFunc
}

// FetcherOption configures a RetryFetcher.
type FetcherOption func(*RetryFetcher)

// WithRetryOptions overrides DefaultRetryOptions.
func WithRetryOptions(opts RetryOptions) FetcherOption {
	return func(f *RetryFetcher) {
		f.opts = opts
	}
}

// WithLimiter paces every attempt through limiter.
func WithLimiter(limiter lexicon.DomainLimiter) FetcherOption {
	return func(f *RetryFetcher) {
		f.limiter = limiter
	}
}

// WithLogger reports failed attempts through logger.
func WithLogger(logger LogFunc) FetcherOption {
	return func(f *RetryFetcher) {
		f.logger = logger
	}
}

// NewRetryFetcher wraps next.
func NewRetryFetcher(next lexicon.Fetcher, opts ...FetcherOption) *RetryFetcher {
	f := &RetryFetcher{
		next: next,
		opts: DefaultRetryOptions(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves url, retrying failed attempts.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	host := Host(url)
	attempt := func(ctx context.Context, url string) (string, error) {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx, host); err != nil {
				return "", err
			}
		}
		return f.next.Fetch(ctx, url)
	}
	return FetchWithRetry(ctx, url, attempt, f.logger, f.opts)
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
