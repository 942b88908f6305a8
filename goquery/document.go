// Package goquery parses third-party documentation markup into a queryable
// tree. It isolates the pipeline from structural drift in the pages it
// reads: absent nodes are empty selections, never errors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lexicon"
	"golang.org/x/net/html"
)

// Document is a parsed markup document.
type Document struct {
	doc *goquery.Document
}

// Parse parses raw markup. The HTML5 parser accepts any input, so an error
// here means the reader failed rather than that the markup is malformed.
func Parse(raw string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, lexicon.Errorf(lexicon.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Find returns the elements matching a CSS selector.
func (d *Document) Find(selector string) *Selection {
	return &Selection{sel: d.doc.Find(selector)}
}

// Title returns the trimmed text of the document's <title>.
func (d *Document) Title() string {
	return d.Find("title").First().Text()
}

// Selection is an ordered set of nodes. An empty selection is valid and
// every query on it returns another empty selection.
type Selection struct {
	sel *goquery.Selection
}

// Len returns the number of nodes in the selection.
func (s *Selection) Len() int {
	return s.sel.Length()
}

// Empty reports whether the selection has no nodes.
func (s *Selection) Empty() bool {
	return s.sel.Length() == 0
}

// First reduces the selection to its first node.
func (s *Selection) First() *Selection {
	return &Selection{sel: s.sel.First()}
}

// Eq reduces the selection to the node at index i.
func (s *Selection) Eq(i int) *Selection {
	return &Selection{sel: s.sel.Eq(i)}
}

// Children returns the element children of each node.
func (s *Selection) Children() *Selection {
	return &Selection{sel: s.sel.Children()}
}

// Find returns descendants matching selector.
func (s *Selection) Find(selector string) *Selection {
	return &Selection{sel: s.sel.Find(selector)}
}

// Closest returns the nearest ancestor-or-self matching selector.
func (s *Selection) Closest(selector string) *Selection {
	return &Selection{sel: s.sel.Closest(selector)}
}

// Siblings returns the element siblings of each node.
func (s *Selection) Siblings() *Selection {
	return &Selection{sel: s.sel.Siblings()}
}

// Next returns the immediately following element sibling of each node.
func (s *Selection) Next() *Selection {
	return &Selection{sel: s.sel.Next()}
}

// Filter reduces the selection to nodes matching selector.
func (s *Selection) Filter(selector string) *Selection {
	return &Selection{sel: s.sel.Filter(selector)}
}

// Each calls fn for every node in document order.
func (s *Selection) Each(fn func(i int, s *Selection)) {
	s.sel.Each(func(i int, sel *goquery.Selection) {
		fn(i, &Selection{sel: sel})
	})
}

// Text returns the combined text of the selection with surrounding
// whitespace trimmed and inner whitespace runs collapsed to one space.
// An empty selection yields "".
func (s *Selection) Text() string {
	return strings.Join(strings.Fields(s.sel.Text()), " ")
}

// RawText returns the combined text of the selection exactly as it appears
// in the document, preserving line breaks (e.g. in code samples).
func (s *Selection) RawText() string {
	return s.sel.Text()
}

// Attr returns the named attribute of the first node, trimmed.
// It returns "" when the selection is empty or the attribute is missing.
func (s *Selection) Attr(name string) string {
	v, _ := s.sel.Attr(name)
	return strings.TrimSpace(v)
}

// AttrLimit is Attr truncated to at most max bytes.
func (s *Selection) AttrLimit(name string, max int) string {
	v := s.Attr(name)
	if max >= 0 && len(v) > max {
		return v[:max]
	}
	return v
}

// HTML returns the inner HTML of the first node, or "" when empty.
func (s *Selection) HTML() string {
	if s.Empty() {
		return ""
	}
	h, err := s.sel.Html()
	if err != nil {
		return ""
	}
	return h
}
