package collector

import (
	"context"
	"log/slog"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/goquery"
	"github.com/fwojciec/lexicon/readability"
)

// Java source identity.
const (
	JavaKey         = "java"
	JavaDisplayName = "Java"
	JavaSourceURL   = "https://docs.oracle.com/en/java/"
)

// Ensure Java implements the collector interfaces at compile time.
var (
	_ lexicon.Collector              = (*Java)(nil)
	_ lexicon.OverviewCollector      = (*Java)(nil)
	_ lexicon.SpecificationCollector = (*Java)(nil)
)

// Java collects Java language features from a static table, filling in
// missing meanings from the Oracle language guide.
type Java struct {
	Fetcher    lexicon.Fetcher
	Extractor  lexicon.ContentExtractor
	Classifier *lexicon.Classifier
	Logger     *slog.Logger

	// Table lists features per release. BaseURL overrides Table.BaseURL
	// when set.
	Table   *lexicon.FeatureTable
	BaseURL string

	Overview      *lexicon.Overview
	Specification *lexicon.Specification
}

// NewJava returns a Java collector over the embedded tables.
func NewJava(fetcher lexicon.Fetcher, logger *slog.Logger) (*Java, error) {
	table, err := LoadFeatureTable("java.yaml")
	if err != nil {
		return nil, err
	}
	overview, err := LoadOverview("java_overview.yaml")
	if err != nil {
		return nil, err
	}
	spec, err := LoadSpecification("java_specification.yaml")
	if err != nil {
		return nil, err
	}
	return &Java{
		Fetcher:       fetcher,
		Extractor:     readability.NewExtractor(),
		Classifier:    lexicon.NewClassifier(nil),
		Logger:        logger,
		Table:         table,
		Overview:      overview,
		Specification: spec,
	}, nil
}

func (j *Java) Key() string         { return JavaKey }
func (j *Java) DisplayName() string { return JavaDisplayName }
func (j *Java) SourceURL() string   { return JavaSourceURL }

// CollectOverview returns the static overview glossary.
func (j *Java) CollectOverview(ctx context.Context) (*lexicon.Overview, error) {
	return j.Overview, nil
}

// CollectSpecification returns the static reference catalogue.
func (j *Java) CollectSpecification(ctx context.Context) (*lexicon.Specification, error) {
	return j.Specification, nil
}

// Collect builds one term per table feature. Every feature yields a term:
// a page that cannot be fetched or parsed leaves the static data in place.
func (j *Java) Collect(ctx context.Context) ([]lexicon.Version, error) {
	if j.Table == nil {
		return nil, lexicon.Errorf(lexicon.EINVALID, "java: feature table required")
	}
	logger := j.logger()
	base := j.Table.BaseURL
	if j.BaseURL != "" {
		base = j.BaseURL
	}

	buckets := make(map[string][]lexicon.Term, len(j.Table.Versions))
	for _, v := range j.Table.Versions {
		logger.Info("processing version", "version", v.Version, "features", len(v.Features))
		terms := make([]lexicon.Term, 0, len(v.Features))
		for _, f := range v.Features {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			terms = append(terms, j.term(ctx, base, v.Version, f))
		}
		buckets[v.Version] = terms
	}

	versions, stats := lexicon.Aggregate(buckets, lexicon.DefaultIntegerOrder(), j.Table.ReleaseDates())
	logAggregateStats(logger, stats)
	return versions, nil
}

func (j *Java) term(ctx context.Context, base, version string, f lexicon.Feature) lexicon.Term {
	t := lexicon.Term{
		ID:            lexicon.GenerateID(JavaKey, version, f.Term),
		Term:          f.Term,
		TermLocalized: f.TermLocalized,
		Type:          f.Type,
		Category:      f.Category,
		Meaning:       lexicon.TruncateMeaning(f.Meaning),
		Tags:          []string{},
		SourceURL:     joinURL(base, f.Path),
	}
	if j.Classifier != nil {
		j.Classifier.Fill(&t)
	}

	if f.Path == "" || f.Meaning != "" {
		return t
	}

	body, err := j.Fetcher.Fetch(ctx, t.SourceURL)
	if err != nil {
		j.logger().Warn("using static data", "term", f.Term, "url", t.SourceURL, "error", err)
		return t
	}
	p, err := j.firstParagraph(body)
	if err != nil {
		j.logger().Warn("using static data", "term", f.Term, "url", t.SourceURL, "error", err)
		return t
	}
	t.Meaning = lexicon.TruncateMeaning(p)
	return t
}

// firstParagraph returns the first non-empty paragraph of the page's main
// content, falling back to the whole page when isolation finds nothing.
func (j *Java) firstParagraph(body string) (string, error) {
	if j.Extractor != nil {
		if res, err := j.Extractor.Extract(body); err == nil {
			if p, err := firstParagraph(res.ContentHTML); err == nil && p != "" {
				return p, nil
			}
		}
	}
	return firstParagraph(body)
}

func firstParagraph(markup string) (string, error) {
	doc, err := goquery.Parse(markup)
	if err != nil {
		return "", err
	}
	var text string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text == "" {
			text = s.Text()
		}
	})
	return text, nil
}

func (j *Java) logger() *slog.Logger {
	if j.Logger == nil {
		return discardLogger()
	}
	return j.Logger.With("source", JavaKey)
}
