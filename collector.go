package lexicon

import "context"

// Collector produces the versioned vocabulary of one source.
type Collector interface {
	// Key returns the source's lowercase slug. It names the output file.
	Key() string

	// DisplayName returns the human readable source name.
	DisplayName() string

	// SourceURL returns the source's canonical homepage.
	SourceURL() string

	// Collect extracts the source's terms grouped by version, newest first.
	// Versions without terms are never returned.
	Collect(ctx context.Context) ([]Version, error)
}

// OverviewCollector is implemented by collectors that supply an Overview.
type OverviewCollector interface {
	CollectOverview(ctx context.Context) (*Overview, error)
}

// SpecificationCollector is implemented by collectors that supply a
// Specification.
type SpecificationCollector interface {
	CollectSpecification(ctx context.Context) (*Specification, error)
}
