package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/lexicon"
	"golang.org/x/time/rate"
)

var _ lexicon.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per host using token buckets.
// Independent sources usually live on different hosts, so they never
// wait on each other, while requests to one documentation site are spaced
// out no matter how many collectors share it.
type DomainLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	rps       float64
	overrides map[string]float64
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithHostRate sets a dedicated requests-per-second limit for host.
func WithHostRate(host string, rps float64) LimiterOption {
	return func(d *DomainLimiter) {
		d.overrides[host] = rps
	}
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host. Each host gets a burst of 1. A non-positive rps disables
// pacing for hosts without an override.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		limiters:  make(map[string]*rate.Limiter),
		rps:       rps,
		overrides: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		rps, ok := d.overrides[domain]
		if !ok {
			rps = d.rps
		}
		limit := rate.Limit(rps)
		if rps <= 0 {
			limit = rate.Inf
		}
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Host returns the host part of rawURL, or rawURL itself when it does not
// parse as an absolute URL.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
