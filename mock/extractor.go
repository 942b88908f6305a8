package mock

import "github.com/fwojciec/lexicon"

var _ lexicon.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of lexicon.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*lexicon.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*lexicon.ExtractResult, error) {
	return e.ExtractFn(html)
}
