package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/lexicon"
)

// Result is the outcome of one collector run.
type Result struct {
	Record *lexicon.SourceRecord
	Write  *lexicon.WriteResult
}

// Runner runs a collector end to end: overview, specification, versions,
// then persistence.
type Runner struct {
	Writer lexicon.RecordWriter
	Logger *slog.Logger
}

// Run collects c and writes its record. Optional phases run only when c
// has the matching capability. Errors are wrapped with the source key.
func (r *Runner) Run(ctx context.Context, c lexicon.Collector) (*Result, error) {
	key := c.Key()
	caps := Capabilities(c)
	if b, ok := c.(*Bound); ok {
		c = b.Collector
	}

	logger := r.Logger
	if logger == nil {
		logger = discardLogger()
	}
	logger = logger.With("source", key)
	logger.Info("collecting", "name", c.DisplayName(), "capabilities", caps.String())

	var overview *lexicon.Overview
	if caps.Has(CapOverview) {
		oc, ok := c.(lexicon.OverviewCollector)
		if ok {
			o, err := oc.CollectOverview(ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: overview: %w", key, err)
			}
			overview = o
		}
		if overview != nil {
			logger.Info("overview collected",
				"characteristics", len(overview.Characteristics),
				"concepts", len(overview.Concepts),
			)
		}
	}

	var spec *lexicon.Specification
	if caps.Has(CapSpecification) {
		sc, ok := c.(lexicon.SpecificationCollector)
		if ok {
			s, err := sc.CollectSpecification(ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: specification: %w", key, err)
			}
			spec = s
		}
		if spec != nil {
			logger.Info("specification collected",
				"spec items", spec.ItemCount(),
				"categories", len(spec.Categories),
			)
		}
	}

	versions, err := c.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: collect: %w", key, err)
	}

	record := lexicon.NewSourceRecord(c, versions, overview, spec)
	logger.Info("terms collected",
		"terms", record.TermCount(),
		"versions", len(record.Versions),
	)

	for _, ref := range lexicon.CheckReferences(record) {
		logger.Debug("dangling reference", "from", ref.From, "to", ref.To, "kind", string(ref.Kind))
	}

	res, err := r.Writer.WriteRecord(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%s: save: %w", key, err)
	}
	if res.Unchanged {
		logger.Info("record unchanged", "path", res.Path)
	} else {
		logger.Info("record saved", "path", res.Path, "bytes", res.Bytes)
	}

	return &Result{Record: record, Write: res}, nil
}
