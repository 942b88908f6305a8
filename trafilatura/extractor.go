// Package trafilatura isolates the article body of documentation pages
// with go-trafilatura. It is the alternative to package readability for
// sites where readability keeps too much chrome.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/lexicon"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements lexicon.ContentExtractor at compile time.
var _ lexicon.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	fallback bool
}

// NewExtractor creates a new Extractor. Fallback extraction with the
// readability and dom-distiller heuristics is enabled.
func NewExtractor() *Extractor {
	return &Extractor{fallback: true}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*lexicon.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, lexicon.Errorf(lexicon.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: e.fallback,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &lexicon.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
