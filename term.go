package lexicon

import "unicode/utf8"

// MaxMeaningLength bounds Term.Meaning, counted in runes.
const MaxMeaningLength = 300

// TermType classifies a vocabulary entry.
type TermType string

// Supported term types.
const (
	TypeSyntax      TermType = "syntax"
	TypeAPI         TermType = "api"
	TypeConcept     TermType = "concept"
	TypeDeprecation TermType = "deprecation"
)

// Valid reports whether t is one of the supported term types.
func (t TermType) Valid() bool {
	switch t {
	case TypeSyntax, TypeAPI, TypeConcept, TypeDeprecation:
		return true
	}
	return false
}

// Term is a single vocabulary entry attributed to a version.
type Term struct {
	ID            string   `json:"id"`
	Term          string   `json:"term"`
	TermLocalized string   `json:"termLocalized"`
	Type          TermType `json:"type"`
	Category      string   `json:"category"`
	Meaning       string   `json:"meaning"`
	Example       string   `json:"example"`
	Tags          []string `json:"tags"`
	SourceURL     string   `json:"sourceUrl"`
}

// Validate returns an error if the term contains invalid fields.
func (t *Term) Validate() error {
	if t.ID == "" {
		return Errorf(EINVALID, "term id required")
	}
	if t.Term == "" {
		return Errorf(EINVALID, "term %q: name required", t.ID)
	}
	if !t.Type.Valid() {
		return Errorf(EINVALID, "term %q: invalid type %q", t.ID, t.Type)
	}
	return nil
}

// Version is one release of a source's vocabulary.
// Terms keep extraction order.
type Version struct {
	Version     string `json:"version"`
	ReleaseDate string `json:"releaseDate"`
	Terms       []Term `json:"terms"`
}

// Characteristic is a high-level language trait.
// RelatedConceptIDs are soft references to Concept ids.
type Characteristic struct {
	ID                string   `json:"id" yaml:"id"`
	Term              string   `json:"term" yaml:"term"`
	TermLocalized     string   `json:"termLocalized" yaml:"termLocalized"`
	Meaning           string   `json:"meaning" yaml:"meaning"`
	RelatedConceptIDs []string `json:"relatedConceptIds" yaml:"relatedConceptIds"`
	SourceURL         string   `json:"sourceUrl" yaml:"sourceUrl"`
}

// Concept is a supporting concept linked to one Characteristic.
// CharacteristicID and RelatedTermIDs are soft references.
type Concept struct {
	ID               string   `json:"id" yaml:"id"`
	Term             string   `json:"term" yaml:"term"`
	TermLocalized    string   `json:"termLocalized" yaml:"termLocalized"`
	Meaning          string   `json:"meaning" yaml:"meaning"`
	CharacteristicID string   `json:"characteristicId" yaml:"characteristicId"`
	RelatedTermIDs   []string `json:"relatedTermIds" yaml:"relatedTermIds"`
	SourceURL        string   `json:"sourceUrl" yaml:"sourceUrl"`
}

// Overview is a source's version-independent characteristic glossary.
type Overview struct {
	Description     string           `json:"description" yaml:"description"`
	Characteristics []Characteristic `json:"characteristics" yaml:"characteristics"`
	Concepts        []Concept        `json:"concepts" yaml:"concepts"`
}

// SpecGroup is the top-level grouping of a specification category.
type SpecGroup string

// Specification groups.
const (
	GroupSyntax SpecGroup = "syntax"
	GroupAPI    SpecGroup = "api"
)

// SpecItem is one canonical reference entry.
type SpecItem struct {
	ID            string `json:"id" yaml:"id"`
	Term          string `json:"term" yaml:"term"`
	TermLocalized string `json:"termLocalized" yaml:"termLocalized"`
	Meaning       string `json:"meaning" yaml:"meaning"`
	Example       string `json:"example" yaml:"example"`
	SourceURL     string `json:"sourceUrl" yaml:"sourceUrl"`
}

// SpecCategory groups reference items independent of version history.
type SpecCategory struct {
	ID            string     `json:"id" yaml:"id"`
	Group         SpecGroup  `json:"group" yaml:"group"`
	Name          string     `json:"name" yaml:"name"`
	NameLocalized string     `json:"nameLocalized" yaml:"nameLocalized"`
	Items         []SpecItem `json:"items" yaml:"items"`
}

// Specification is a source's canonical reference catalogue.
type Specification struct {
	Categories []SpecCategory `json:"categories" yaml:"categories"`
}

// ItemCount returns the number of items across all categories.
func (s *Specification) ItemCount() int {
	if s == nil {
		return 0
	}
	var n int
	for _, c := range s.Categories {
		n += len(c.Items)
	}
	return n
}

// TruncateMeaning bounds s to MaxMeaningLength runes.
func TruncateMeaning(s string) string {
	if utf8.RuneCountInString(s) <= MaxMeaningLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxMeaningLength])
}
