package collector_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/collector"
	"github.com/fwojciec/lexicon/mock"
	"github.com/stretchr/testify/assert"
)

// wrapped mimics a logging decorator around a collector.
type wrapped struct {
	lexicon.Collector
}

func (w *wrapped) Unwrap() lexicon.Collector { return w.Collector }

func TestCapabilities(t *testing.T) {
	t.Parallel()

	t.Run("plain collector has none", func(t *testing.T) {
		t.Parallel()

		caps := collector.Capabilities(&mock.Collector{})

		assert.False(t, caps.Has(collector.CapOverview))
		assert.False(t, caps.Has(collector.CapSpecification))
		assert.Equal(t, "none", caps.String())
	})

	t.Run("full collector has both", func(t *testing.T) {
		t.Parallel()

		caps := collector.Capabilities(&mock.FullCollector{})

		assert.True(t, caps.Has(collector.CapOverview|collector.CapSpecification))
		assert.Equal(t, "overview,specification", caps.String())
	})

	t.Run("decorators are unwrapped", func(t *testing.T) {
		t.Parallel()

		caps := collector.Capabilities(&wrapped{Collector: &wrapped{Collector: &mock.FullCollector{}}})

		assert.True(t, caps.Has(collector.CapOverview))
		assert.True(t, caps.Has(collector.CapSpecification))
	})

	t.Run("concrete collectors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, collector.CapOverview|collector.CapSpecification, collector.Capabilities(&collector.Java{}))
		assert.Equal(t, collector.CapOverview, collector.Capabilities(&collector.JavaScript{}))
		assert.Equal(t, collector.Capability(0), collector.Capabilities(&collector.JQuery{}))
	})
}

func TestBind(t *testing.T) {
	t.Parallel()

	t.Run("fixes the detected set", func(t *testing.T) {
		t.Parallel()

		b := collector.Bind(&wrapped{Collector: &mock.FullCollector{}})

		assert.Equal(t, collector.CapOverview|collector.CapSpecification, b.Capabilities())
		assert.Equal(t, b.Capabilities(), collector.Capabilities(b))
	})

	t.Run("plain collector binds to none", func(t *testing.T) {
		t.Parallel()

		b := collector.Bind(&mock.Collector{KeyFn: func() string { return "jquery" }})

		assert.Equal(t, collector.Capability(0), collector.Capabilities(b))
		assert.Equal(t, "jquery", b.Key())
	})
}

// failingFetcher fails every request.
func failingFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "", &lexicon.FetchExhaustedError{URL: url, Attempts: 3, Err: assert.AnError}
		},
		CloseFn: func() error { return nil },
	}
}

// pagesFetcher serves bodies by URL and fails for anything else.
func pagesFetcher(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			body, ok := pages[url]
			if !ok {
				return "", lexicon.Errorf(lexicon.ENOTFOUND, "HTTP 404 Not Found for %s", url)
			}
			return body, nil
		},
		CloseFn: func() error { return nil },
	}
}

func versionLabels(versions []lexicon.Version) []string {
	labels := make([]string, len(versions))
	for i, v := range versions {
		labels[i] = v.Version
	}
	return labels
}

func countTerms(versions []lexicon.Version) int {
	var n int
	for _, v := range versions {
		n += len(v.Terms)
	}
	return n
}
