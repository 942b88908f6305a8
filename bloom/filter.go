// Package bloom deduplicates discovered entry URLs with Bloom filters.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Defaults sized for a documentation index: a few thousand entries with a
// false positive rate low enough that no real entry is expected to be lost.
const (
	DefaultCapacity = 4096
	DefaultFPRate   = 1e-6
)

// Filter remembers which entry URLs have been seen.
// URLs are normalized first so "/addClass/", "/addClass" and
// "/addClass/#entry" count as the same entry.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewDefaultFilter creates a filter with DefaultCapacity and DefaultFPRate.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultCapacity, DefaultFPRate)
}

// Add adds a URL to the filter.
func (f *Filter) Add(rawURL string) {
	f.f.AddString(Normalize(rawURL))
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(rawURL string) bool {
	return f.f.TestString(Normalize(rawURL))
}

// TestAndAdd reports whether the URL might already be in the filter and
// adds it.
func (f *Filter) TestAndAdd(rawURL string) bool {
	return f.f.TestAndAddString(Normalize(rawURL))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Normalize lowercases the host, drops the fragment and trims a trailing
// slash from the path.
func Normalize(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	if len(u.Path) > 1 {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	return u.String()
}
