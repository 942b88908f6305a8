package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lexicon"
)

// Ensure LoggingCollector implements the collector interfaces.
var (
	_ lexicon.Collector              = (*LoggingCollector)(nil)
	_ lexicon.OverviewCollector      = (*LoggingCollector)(nil)
	_ lexicon.SpecificationCollector = (*LoggingCollector)(nil)
)

// LoggingCollector wraps a Collector and logs each phase. The optional
// phases return nil when the wrapped collector does not supply them;
// Unwrap exposes the wrapped collector for capability detection.
type LoggingCollector struct {
	next   lexicon.Collector
	logger *slog.Logger
}

// NewLoggingCollector creates a new LoggingCollector.
func NewLoggingCollector(next lexicon.Collector, logger *slog.Logger) *LoggingCollector {
	return &LoggingCollector{next: next, logger: logger.With("source", next.Key())}
}

// Unwrap returns the wrapped collector.
func (c *LoggingCollector) Unwrap() lexicon.Collector {
	return c.next
}

func (c *LoggingCollector) Key() string         { return c.next.Key() }
func (c *LoggingCollector) DisplayName() string { return c.next.DisplayName() }
func (c *LoggingCollector) SourceURL() string   { return c.next.SourceURL() }

// Collect delegates to the wrapped collector and logs the result size.
func (c *LoggingCollector) Collect(ctx context.Context) (versions []lexicon.Version, err error) {
	defer func(begin time.Time) {
		var terms int
		for _, v := range versions {
			terms += len(v.Terms)
		}
		c.logger.Debug("collect",
			"versions", len(versions),
			"terms", terms,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Collect(ctx)
}

// CollectOverview delegates when the wrapped collector supplies an overview.
func (c *LoggingCollector) CollectOverview(ctx context.Context) (o *lexicon.Overview, err error) {
	oc, ok := c.next.(lexicon.OverviewCollector)
	if !ok {
		return nil, nil
	}
	defer func(begin time.Time) {
		var characteristics, concepts int
		if o != nil {
			characteristics, concepts = len(o.Characteristics), len(o.Concepts)
		}
		c.logger.Debug("collect overview",
			"characteristics", characteristics,
			"concepts", concepts,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return oc.CollectOverview(ctx)
}

// CollectSpecification delegates when the wrapped collector supplies a
// specification.
func (c *LoggingCollector) CollectSpecification(ctx context.Context) (s *lexicon.Specification, err error) {
	sc, ok := c.next.(lexicon.SpecificationCollector)
	if !ok {
		return nil, nil
	}
	defer func(begin time.Time) {
		c.logger.Debug("collect specification",
			"items", s.ItemCount(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return sc.CollectSpecification(ctx)
}
