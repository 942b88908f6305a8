package collector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/bloom"
	"github.com/fwojciec/lexicon/goquery"
)

// jQuery source identity.
const (
	JQueryKey         = "jquery"
	JQueryDisplayName = "jQuery"
	JQuerySourceURL   = "https://api.jquery.com/"
)

// Selectors for api.jquery.com markup.
const (
	jqueryEntrySelector       = "#content .entry-title"
	jqueryVersionSelector     = ".entry-meta .version-added"
	jqueryDescriptionSelector = ".entry-excerpt, .desc"
	jqueryCategorySelector    = ".entry-meta .category"
	jqueryExampleSelector     = ".entry-examples pre code"
	jqueryVersionPrefix       = "version added:"
)

// Ensure JQuery implements lexicon.Collector at compile time.
var _ lexicon.Collector = (*JQuery)(nil)

// JQuery discovers API entries from the api.jquery.com index and reads the
// version each entry was added in from its page.
type JQuery struct {
	Fetcher    lexicon.Fetcher
	Classifier *lexicon.Classifier
	Logger     *slog.Logger

	// IndexURL is the listing page. Defaults to JQuerySourceURL.
	IndexURL string
}

// NewJQuery returns a jQuery collector.
func NewJQuery(fetcher lexicon.Fetcher, logger *slog.Logger) *JQuery {
	return &JQuery{
		Fetcher:    fetcher,
		Classifier: lexicon.NewClassifier(nil),
		Logger:     logger,
		IndexURL:   JQuerySourceURL,
	}
}

func (j *JQuery) Key() string         { return JQueryKey }
func (j *JQuery) DisplayName() string { return JQueryDisplayName }
func (j *JQuery) SourceURL() string   { return JQuerySourceURL }

// Entry is one API entry listed on the index page.
type Entry struct {
	Name string
	URL  string
}

// Collect fetches the index, then every entry page. A failed index fetch
// is returned; a failed entry fetch skips that entry.
func (j *JQuery) Collect(ctx context.Context) ([]lexicon.Version, error) {
	logger := j.logger()
	indexURL := j.indexURL()

	body, err := j.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	entries, err := ParseIndex(body, indexURL)
	if err != nil {
		return nil, err
	}
	logger.Info("found API entries", "entries", len(entries))

	buckets := make(map[string][]lexicon.Term)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := j.Fetcher.Fetch(ctx, e.URL)
		if err != nil {
			logger.Warn("skipping entry", "url", e.URL, "error", err)
			continue
		}
		version, t, err := j.term(e, page)
		if err != nil {
			logger.Warn("skipping entry", "url", e.URL, "error", err)
			continue
		}
		if version == "" {
			logger.Debug("no version marker", "url", e.URL)
			continue
		}
		buckets[version] = append(buckets[version], t)
	}

	versions, stats := lexicon.Aggregate(buckets, lexicon.DottedOrder{}, nil)
	logAggregateStats(logger, stats)
	return versions, nil
}

// ParseIndex returns the entries linked from the index page. Relative links
// are resolved against indexURL, links to other hosts are ignored and
// repeated entries are dropped.
func ParseIndex(body, indexURL string) ([]Entry, error) {
	return ParseIndexFilter(body, indexURL, bloom.NewDefaultFilter())
}

// ParseIndexFilter is ParseIndex with a caller-sized filter.
func ParseIndexFilter(body, indexURL string, filter *bloom.Filter) ([]Entry, error) {
	doc, err := goquery.Parse(body)
	if err != nil {
		return nil, err
	}
	links, err := doc.Links(jqueryEntrySelector, indexURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(links))
	var entries []Entry
	for _, l := range links {
		// The filter may report false positives; seen confirms its hits.
		key := bloom.Normalize(l.URL)
		if filter.TestAndAdd(l.URL) && seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, Entry{Name: l.Text, URL: l.URL})
	}
	return entries, nil
}

// term extracts the entry's term. An empty version means the page carries
// no version marker.
func (j *JQuery) term(e Entry, page string) (string, lexicon.Term, error) {
	doc, err := goquery.Parse(page)
	if err != nil {
		return "", lexicon.Term{}, err
	}

	version := VersionAdded(doc.Find(jqueryVersionSelector).First().Text())
	if version == "" {
		return "", lexicon.Term{}, nil
	}

	t := lexicon.Term{
		ID:        lexicon.GenerateID(JQueryKey, version, e.Name),
		Term:      e.Name,
		Category:  doc.Find(jqueryCategorySelector).First().Text(),
		Meaning:   lexicon.TruncateMeaning(doc.Find(jqueryDescriptionSelector).First().Text()),
		Example:   strings.TrimSpace(doc.Find(jqueryExampleSelector).First().RawText()),
		Tags:      []string{},
		SourceURL: e.URL,
	}
	classifier := j.Classifier
	if classifier == nil {
		classifier = lexicon.NewClassifier(nil)
	}
	classifier.Fill(&t)
	return version, t, nil
}

// VersionAdded strips the "version added:" label from a version marker.
func VersionAdded(marker string) string {
	marker = strings.TrimSpace(marker)
	if len(marker) >= len(jqueryVersionPrefix) && strings.EqualFold(marker[:len(jqueryVersionPrefix)], jqueryVersionPrefix) {
		marker = marker[len(jqueryVersionPrefix):]
	}
	return strings.TrimSpace(marker)
}

func (j *JQuery) indexURL() string {
	if j.IndexURL == "" {
		return JQuerySourceURL
	}
	return j.IndexURL
}

func (j *JQuery) logger() *slog.Logger {
	if j.Logger == nil {
		return discardLogger()
	}
	return j.Logger.With("source", JQueryKey)
}
