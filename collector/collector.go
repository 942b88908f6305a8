// Package collector implements the per-source vocabulary collectors and the
// runner that turns a collector's output into a persisted record.
//
// Table-driven collectors (Java, JavaScript) read their feature lists from
// embedded YAML and enrich entries from documentation pages when those can
// be fetched. The discovery-driven collector (jQuery) walks an index page
// and visits every entry. A failed page never aborts a collector; only a
// failed index fetch does.
package collector

import (
	"log/slog"
	"strings"

	"github.com/fwojciec/lexicon"
)

// Capability flags the optional parts a collector supplies.
type Capability uint8

// Capabilities.
const (
	CapOverview Capability = 1 << iota
	CapSpecification
)

// Has reports whether all flags in f are set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// String returns the set flag names.
func (c Capability) String() string {
	var names []string
	if c.Has(CapOverview) {
		names = append(names, "overview")
	}
	if c.Has(CapSpecification) {
		names = append(names, "specification")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Wrapper is implemented by collector decorators so capabilities are
// detected on the decorated collector.
type Wrapper interface {
	Unwrap() lexicon.Collector
}

// Bound is a collector whose capability set was detected once, by Bind.
type Bound struct {
	lexicon.Collector
	caps Capability
}

// Bind detects the capabilities of c and fixes them for the lifetime of the
// returned collector.
func Bind(c lexicon.Collector) *Bound {
	return &Bound{Collector: c, caps: Capabilities(c)}
}

// Capabilities returns the set detected by Bind.
func (b *Bound) Capabilities() Capability {
	return b.caps
}

// Unwrap returns the bound collector.
func (b *Bound) Unwrap() lexicon.Collector {
	return b.Collector
}

// Capabilities reports which optional interfaces c implements. A Bound
// collector reports the set fixed by Bind; other decorators are unwrapped
// first.
func Capabilities(c lexicon.Collector) Capability {
	if b, ok := c.(*Bound); ok {
		return b.caps
	}
	for {
		w, ok := c.(Wrapper)
		if !ok {
			break
		}
		c = w.Unwrap()
	}

	var caps Capability
	if _, ok := c.(lexicon.OverviewCollector); ok {
		caps |= CapOverview
	}
	if _, ok := c.(lexicon.SpecificationCollector); ok {
		caps |= CapSpecification
	}
	return caps
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func logAggregateStats(logger *slog.Logger, stats lexicon.AggregateStats) {
	if len(stats.EmptyVersions) > 0 {
		logger.Info("dropped versions without terms", "versions", stats.EmptyVersions)
	}
	if len(stats.DuplicateTermIDs) > 0 {
		logger.Warn("dropped duplicate term ids", "ids", stats.DuplicateTermIDs)
	}
}

// joinURL appends path to base. Absolute paths are returned unchanged.
func joinURL(base, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
