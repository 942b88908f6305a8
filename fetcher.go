package lexicon

import "context"

// Fetcher retrieves raw document text from URLs.
type Fetcher interface {
	// Fetch issues a GET for url and returns the response body.
	// Any non-success status is reported as an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases underlying resources.
	Close() error
}

// DomainLimiter paces requests per host.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
