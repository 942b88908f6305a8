package collector

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/fwojciec/lexicon"
)

// JavaScript source identity.
const (
	JavaScriptKey         = "javascript"
	JavaScriptDisplayName = "JavaScript"
	JavaScriptSourceURL   = "https://developer.mozilla.org/ja/docs/Web/JavaScript"
)

// JavaScriptIDs shortens the id prefix to "ja".
var JavaScriptIDs = lexicon.IDScheme{PrefixLen: 2}

// Ensure JavaScript implements the collector interfaces at compile time.
var (
	_ lexicon.Collector         = (*JavaScript)(nil)
	_ lexicon.OverviewCollector = (*JavaScript)(nil)
)

// JavaScript collects ECMAScript features from a static table of MDN
// pages, reading names and summaries from each page's JSON document.
type JavaScript struct {
	Fetcher    lexicon.Fetcher
	Classifier *lexicon.Classifier
	Logger     *slog.Logger

	// Table lists features per edition. BaseURL overrides Table.BaseURL
	// when set.
	Table   *lexicon.FeatureTable
	BaseURL string

	Overview *lexicon.Overview
}

// NewJavaScript returns a JavaScript collector over the embedded tables.
func NewJavaScript(fetcher lexicon.Fetcher, logger *slog.Logger) (*JavaScript, error) {
	table, err := LoadFeatureTable("javascript.yaml")
	if err != nil {
		return nil, err
	}
	overview, err := LoadOverview("javascript_overview.yaml")
	if err != nil {
		return nil, err
	}
	return &JavaScript{
		Fetcher:    fetcher,
		Classifier: lexicon.NewClassifier(nil),
		Logger:     logger,
		Table:      table,
		Overview:   overview,
	}, nil
}

func (j *JavaScript) Key() string         { return JavaScriptKey }
func (j *JavaScript) DisplayName() string { return JavaScriptDisplayName }
func (j *JavaScript) SourceURL() string   { return JavaScriptSourceURL }

// CollectOverview returns the static overview glossary.
func (j *JavaScript) CollectOverview(ctx context.Context) (*lexicon.Overview, error) {
	return j.Overview, nil
}

// mdnIndex is the subset of an MDN index.json response that is read.
type mdnIndex struct {
	Doc *mdnDoc `json:"doc"`
}

type mdnDoc struct {
	Title      string `json:"title"`
	ShortTitle string `json:"short_title"`
	Summary    string `json:"summary"`
}

// Collect builds one term per table feature.
func (j *JavaScript) Collect(ctx context.Context) ([]lexicon.Version, error) {
	if j.Table == nil {
		return nil, lexicon.Errorf(lexicon.EINVALID, "javascript: feature table required")
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

	versions, stats := lexicon.Aggregate(buckets, lexicon.DefaultEditionOrder(), j.Table.ReleaseDates())
	logAggregateStats(logger, stats)
	return versions, nil
}

func (j *JavaScript) term(ctx context.Context, base, version string, f lexicon.Feature) lexicon.Term {
	pageURL := joinURL(base, f.Path)

	doc, err := j.fetchDocument(ctx, pageURL)
	if err != nil {
		j.logger().Warn("using static data", "path", f.Path, "error", err)
		return j.fallbackTerm(version, f, pageURL)
	}

	name := doc.ShortTitle
	if name == "" {
		name = doc.Title
	}
	var localized string
	if doc.ShortTitle != "" && doc.Title != doc.ShortTitle {
		localized = doc.Title
	}
	meaning := doc.Summary
	if meaning == "" {
		meaning = f.Meaning
	}

	t := lexicon.Term{
		ID:            JavaScriptIDs.Generate(JavaScriptKey, version, idName(doc.Title, f.Path)),
		Term:          name,
		TermLocalized: localized,
		Type:          f.Type,
		Category:      f.Category,
		Meaning:       lexicon.TruncateMeaning(meaning),
		Tags:          []string{},
		SourceURL:     pageURL,
	}
	j.fill(&t)
	return t
}

func (j *JavaScript) fallbackTerm(version string, f lexicon.Feature, pageURL string) lexicon.Term {
	name := f.Term
	if name == "" {
		name = NameFromPath(f.Path)
	}
	t := lexicon.Term{
		ID:            JavaScriptIDs.Generate(JavaScriptKey, version, name),
		Term:          name,
		TermLocalized: f.TermLocalized,
		Type:          f.Type,
		Category:      f.Category,
		Meaning:       lexicon.TruncateMeaning(f.Meaning),
		Tags:          []string{},
		SourceURL:     pageURL,
	}
	j.fill(&t)
	return t
}

func (j *JavaScript) fetchDocument(ctx context.Context, pageURL string) (*mdnDoc, error) {
	body, err := j.Fetcher.Fetch(ctx, pageURL+"/index.json")
	if err != nil {
		return nil, err
	}
	var d mdnIndex
	if err := json.Unmarshal([]byte(body), &d); err != nil {
		return nil, lexicon.Errorf(lexicon.EINVALID, "decode MDN document: %v", err)
	}
	if d.Doc == nil || (d.Doc.Title == "" && d.Doc.ShortTitle == "") {
		return nil, lexicon.Errorf(lexicon.ENOTFOUND, "MDN document has no title")
	}
	return d.Doc, nil
}

func (j *JavaScript) fill(t *lexicon.Term) {
	if j.Classifier != nil {
		j.Classifier.Fill(t)
	}
}

func (j *JavaScript) logger() *slog.Logger {
	if j.Logger == nil {
		return discardLogger()
	}
	return j.Logger.With("source", JavaScriptKey)
}

// mdnSections are reference path segments that group pages without naming
// anything.
var mdnSections = map[string]bool{
	"Global_Objects": true,
	"Statements":     true,
	"Operators":      true,
	"Functions":      true,
}

// NameFromPath derives a display name from an MDN reference path:
// "/…/Reference/Global_Objects/Object/groupBy" becomes "Object.groupBy" and
// "/…/Reference/Operators/Optional_chaining" becomes "Optional chaining".
func NameFromPath(path string) string {
	if i := strings.Index(path, "/Reference/"); i >= 0 {
		path = path[i+len("/Reference/"):]
	}
	var parts []string
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" || mdnSections[seg] {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "_", " "))
	}
	return strings.Join(parts, ".")
}

// idName picks the name an id is derived from. Titles without any ASCII
// letters or digits would yield an empty slug, so the path name is used.
func idName(title, path string) string {
	if lexicon.Slugify(title) != "" {
		return title
	}
	return NameFromPath(path)
}
