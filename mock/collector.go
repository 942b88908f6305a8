package mock

import (
	"context"

	"github.com/fwojciec/lexicon"
)

var _ lexicon.Collector = (*Collector)(nil)

// Collector is a mock implementation of lexicon.Collector.
type Collector struct {
	KeyFn         func() string
	DisplayNameFn func() string
	SourceURLFn   func() string
	CollectFn     func(ctx context.Context) ([]lexicon.Version, error)
}

func (c *Collector) Key() string {
	return c.KeyFn()
}

func (c *Collector) DisplayName() string {
	return c.DisplayNameFn()
}

func (c *Collector) SourceURL() string {
	return c.SourceURLFn()
}

func (c *Collector) Collect(ctx context.Context) ([]lexicon.Version, error) {
	return c.CollectFn(ctx)
}

var (
	_ lexicon.Collector              = (*FullCollector)(nil)
	_ lexicon.OverviewCollector      = (*FullCollector)(nil)
	_ lexicon.SpecificationCollector = (*FullCollector)(nil)
)

// FullCollector is a mock collector that also supplies an overview and a
// specification.
type FullCollector struct {
	Collector
	CollectOverviewFn      func(ctx context.Context) (*lexicon.Overview, error)
	CollectSpecificationFn func(ctx context.Context) (*lexicon.Specification, error)
}

func (c *FullCollector) CollectOverview(ctx context.Context) (*lexicon.Overview, error) {
	return c.CollectOverviewFn(ctx)
}

func (c *FullCollector) CollectSpecification(ctx context.Context) (*lexicon.Specification, error) {
	return c.CollectSpecificationFn(ctx)
}
