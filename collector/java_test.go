package collector_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/collector"
	"github.com/fwojciec/lexicon/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordsPage = `<html><body>
<nav><p>Java Language Changes</p></nav>
<article>
<h1>Records</h1>
<p>Record classes help to model plain data aggregates with less ceremony than normal classes.</p>
<p>For background information about record classes, see JEP 395.</p>
</article>
</body></html>`

func TestJava_Collect(t *testing.T) {
	t.Parallel()

	t.Run("static features keep their meaning and have no source url", func(t *testing.T) {
		t.Parallel()

		j := &collector.Java{
			Fetcher: failingFetcher(),
			Table: &lexicon.FeatureTable{
				Versions: []lexicon.FeatureVersion{{
					Version:     "8",
					ReleaseDate: "2014-03",
					Features: []lexicon.Feature{
						{Term: "Lambda Expressions", Type: lexicon.TypeSyntax, Category: "function", Meaning: "Anonymous functions."},
						{Term: "Stream API", Type: lexicon.TypeAPI, Category: "collection", Meaning: "Functional-style collection processing."},
						{Term: "Optional", Type: lexicon.TypeAPI, Category: "collection", Meaning: "A container that may hold a value."},
					},
				}},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, "8", versions[0].Version)
		assert.Equal(t, "2014-03", versions[0].ReleaseDate)
		require.Len(t, versions[0].Terms, 3)
		for _, term := range versions[0].Terms {
			assert.NotEmpty(t, term.Meaning)
			assert.Empty(t, term.SourceURL)
			assert.NotNil(t, term.Tags)
		}
		assert.Equal(t, "java-8-lambda-expressions", versions[0].Terms[0].ID)
	})

	t.Run("path features take the first paragraph of the main content", func(t *testing.T) {
		t.Parallel()

		j := &collector.Java{
			Fetcher: pagesFetcher(map[string]string{
				"https://docs.example.com/javase/17/language/records.html": recordsPage,
			}),
			Extractor: &mock.ContentExtractor{
				ExtractFn: func(html string) (*lexicon.ExtractResult, error) {
					i := strings.Index(html, "<article>")
					return &lexicon.ExtractResult{ContentHTML: html[i:]}, nil
				},
			},
			Table: &lexicon.FeatureTable{
				BaseURL: "https://docs.example.com/javase",
				Versions: []lexicon.FeatureVersion{{
					Version:  "17",
					Features: []lexicon.Feature{{Path: "/17/language/records.html", Term: "Records", TermLocalized: "レコード", Type: lexicon.TypeSyntax, Category: "class"}},
				}},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		require.Len(t, versions, 1)
		term := versions[0].Terms[0]
		assert.Equal(t, "java-17-records", term.ID)
		assert.Equal(t, "レコード", term.TermLocalized)
		assert.Equal(t, "Record classes help to model plain data aggregates with less ceremony than normal classes.", term.Meaning)
		assert.Equal(t, "https://docs.example.com/javase/17/language/records.html", term.SourceURL)
	})

	t.Run("without an extractor the first page paragraph is used", func(t *testing.T) {
		t.Parallel()

		j := &collector.Java{
			Fetcher: pagesFetcher(map[string]string{
				"https://docs.example.com/records.html": recordsPage,
			}),
			Table: &lexicon.FeatureTable{
				Versions: []lexicon.FeatureVersion{{
					Version:  "17",
					Features: []lexicon.Feature{{Path: "https://docs.example.com/records.html", Term: "Records", Type: lexicon.TypeSyntax}},
				}},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Java Language Changes", versions[0].Terms[0].Meaning)
	})

	t.Run("long paragraphs are bounded", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("あ", lexicon.MaxMeaningLength+50)
		j := &collector.Java{
			Fetcher: pagesFetcher(map[string]string{
				"https://docs.example.com/long.html": "<p>" + long + "</p>",
			}),
			Table: &lexicon.FeatureTable{
				Versions: []lexicon.FeatureVersion{{
					Version:  "21",
					Features: []lexicon.Feature{{Path: "https://docs.example.com/long.html", Term: "Long", Type: lexicon.TypeSyntax}},
				}},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		assert.Equal(t, lexicon.MaxMeaningLength, len([]rune(versions[0].Terms[0].Meaning)))
	})

	t.Run("fetch failure keeps static data and the page url", func(t *testing.T) {
		t.Parallel()

		j := &collector.Java{
			Fetcher: failingFetcher(),
			Table: &lexicon.FeatureTable{
				BaseURL: "https://docs.example.com/javase",
				Versions: []lexicon.FeatureVersion{{
					Version:  "23",
					Features: []lexicon.Feature{{Path: "/23/language/string-templates.html", Term: "String Templates (Preview)", Type: lexicon.TypeSyntax, Category: "string"}},
				}},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		require.Len(t, versions, 1)
		term := versions[0].Terms[0]
		assert.Equal(t, "java-23-string-templates-preview", term.ID)
		assert.Empty(t, term.Meaning)
		assert.Equal(t, "https://docs.example.com/javase/23/language/string-templates.html", term.SourceURL)
	})

	t.Run("static meaning wins and skips the fetch", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("fetch must not be called")
				return "", nil
			},
		}
		j := &collector.Java{
			Fetcher: fetcher,
			Table: &lexicon.FeatureTable{
				Versions: []lexicon.FeatureVersion{{
					Version:  "21",
					Features: []lexicon.Feature{{Path: "https://docs.example.com/vt.html", Term: "Virtual Threads", Type: lexicon.TypeConcept, Meaning: "Lightweight threads."}},
				}},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Lightweight threads.", versions[0].Terms[0].Meaning)
	})

	t.Run("versions without features are dropped and the rest sorted newest first", func(t *testing.T) {
		t.Parallel()

		j := &collector.Java{
			Fetcher: failingFetcher(),
			Table: &lexicon.FeatureTable{
				Versions: []lexicon.FeatureVersion{
					{Version: "8", Features: []lexicon.Feature{{Term: "Lambda Expressions", Type: lexicon.TypeSyntax}}},
					{Version: "22"},
					{Version: "1.4", Features: []lexicon.Feature{{Term: "assert", Type: lexicon.TypeSyntax}}},
					{Version: "17", Features: []lexicon.Feature{{Term: "Records", Type: lexicon.TypeSyntax}}},
				},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"17", "8", "1.4"}, versionLabels(versions))
	})

	t.Run("missing type and category are classified", func(t *testing.T) {
		t.Parallel()

		j := &collector.Java{
			Fetcher:    failingFetcher(),
			Classifier: lexicon.NewClassifier(nil),
			Table: &lexicon.FeatureTable{
				Versions: []lexicon.FeatureVersion{{
					Version:  "5",
					Features: []lexicon.Feature{{Term: "Thread.sleep()", Meaning: "Pause the current thread."}},
				}},
			},
		}

		versions, err := j.Collect(context.Background())

		require.NoError(t, err)
		assert.Equal(t, lexicon.TypeAPI, versions[0].Terms[0].Type)
		assert.Equal(t, "concurrency", versions[0].Terms[0].Category)
	})

	t.Run("canceled context stops collection", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		j := &collector.Java{
			Fetcher: failingFetcher(),
			Table: &lexicon.FeatureTable{
				Versions: []lexicon.FeatureVersion{{Version: "8", Features: []lexicon.Feature{{Term: "Lambda Expressions"}}}},
			},
		}

		_, err := j.Collect(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("missing table is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := (&collector.Java{}).Collect(context.Background())

		assert.Equal(t, lexicon.EINVALID, lexicon.ErrorCode(err))
	})
}

func TestNewJava_EmbeddedTables(t *testing.T) {
	t.Parallel()

	j, err := collector.NewJava(failingFetcher(), nil)
	require.NoError(t, err)

	versions, err := j.Collect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"23", "21", "17", "11", "9", "8"}, versionLabels(versions))
	assert.Equal(t, 30, countTerms(versions))
	assert.Equal(t, "2024-09", versions[0].ReleaseDate)
	assert.Equal(t, "2014-03", versions[5].ReleaseDate)
	assert.Equal(t, "https://docs.oracle.com/en/java/javase/23/language/implicitly-declared-classes-and-instance-main-methods.html", versions[0].Terms[0].SourceURL)

	overview, err := j.CollectOverview(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, overview.Characteristics)
	assert.NotEmpty(t, overview.Concepts)

	spec, err := j.CollectSpecification(context.Background())
	require.NoError(t, err)
	assert.Positive(t, spec.ItemCount())

	record := lexicon.NewSourceRecord(j, versions, overview, spec)
	require.NoError(t, record.Validate())
	for _, ref := range lexicon.CheckReferences(record) {
		assert.NotEqual(t, lexicon.RefRelatedTerm, ref.Kind, "overview references unknown term %s", ref.To)
	}
}
