// Package readability isolates the article body of documentation pages
// with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/lexicon"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements lexicon.ContentExtractor at compile time.
var _ lexicon.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// Relative links in the content are left as they appear in the page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content, with page
// navigation, sidebars and footers removed.
func (e *Extractor) Extract(rawHTML string) (*lexicon.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, lexicon.Errorf(lexicon.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &lexicon.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
