package lexicon

import (
	"regexp"
	"strings"
)

// Fallback classification used when no rule matches.
const (
	DefaultType     = TypeConcept
	DefaultCategory = "general"
)

// ClassifierRule maps keywords onto a type and/or category.
// Empty Type or Category leaves that field to later rules.
type ClassifierRule struct {
	Keywords []string `yaml:"keywords"`
	Type     TermType `yaml:"type"`
	Category string   `yaml:"category"`
}

// DefaultClassifierRules returns the built-in keyword table.
func DefaultClassifierRules() []ClassifierRule {
	return []ClassifierRule{
		{Keywords: []string{"deprecated", "removed in"}, Type: TypeDeprecation},
		{Keywords: []string{"thread", "concurrent", "atomic", "lock"}, Category: "concurrency"},
		{Keywords: []string{"promise", "async", "await", "deferred", "callback"}, Category: "async"},
		{Keywords: []string{"class", "interface", "record", "sealed"}, Category: "class"},
		{Keywords: []string{"ajax", "http", "request", "socket"}, Category: "network"},
		{Keywords: []string{"event", "handler", "trigger"}, Category: "events"},
		{Keywords: []string{"animate", "animation", "effect", "fade", "slide"}, Category: "effects"},
		{Keywords: []string{"css", "style", "class attribute"}, Category: "css"},
		{Keywords: []string{"selector", "traversing", "traverse"}, Category: "selectors"},
		{Keywords: []string{"array", "list", "collection", "map", "set"}, Category: "collection"},
		{Keywords: []string{"string", "text"}, Category: "string"},
		{Keywords: []string{"module", "import", "export"}, Category: "module"},
		{Keywords: []string{"operator", "syntax", "statement", "expression"}, Type: TypeSyntax},
	}
}

var memberAccessRe = regexp.MustCompile(`(^|[\w$)\]])(\.|::)[A-Za-z_$]`)

// Classifier infers a term's type and category from its title and
// description. Classification is best effort and never fails.
type Classifier struct {
	rules []compiledRule
}

type compiledRule struct {
	ClassifierRule
	re *regexp.Regexp
}

// NewClassifier returns a Classifier over rules, evaluated in order.
// A nil rules slice uses DefaultClassifierRules.
//
// Keywords match at the start of a word, so "thread" matches "threads"
// but "lock" does not match "block".
func NewClassifier(rules []ClassifierRule) *Classifier {
	if rules == nil {
		rules = DefaultClassifierRules()
	}
	c := &Classifier{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		c.rules = append(c.rules, compiledRule{ClassifierRule: r, re: keywordPattern(r.Keywords)})
	}
	return c
}

// Classify returns the inferred type and category for a term.
//
// Type is decided in order by the first matching deprecation rule, then a
// call "()" or member access in the title (TypeAPI), then the first other
// matching rule with a Type, falling back to DefaultType. The first matching
// rule with a Category decides the category, falling back to
// DefaultCategory.
func (c *Classifier) Classify(title, description string) (TermType, string) {
	haystack := strings.ToLower(title + "\n" + description)

	var deprecated, keywordType TermType
	var category string
	for _, rule := range c.rules {
		if rule.re == nil || !rule.re.MatchString(haystack) {
			continue
		}
		switch {
		case rule.Type == TypeDeprecation:
			if deprecated == "" {
				deprecated = rule.Type
			}
		case rule.Type != "" && keywordType == "":
			keywordType = rule.Type
		}
		if category == "" && rule.Category != "" {
			category = rule.Category
		}
	}

	var typ TermType
	switch {
	case deprecated != "":
		typ = deprecated
	case strings.Contains(title, "()") || memberAccessRe.MatchString(title):
		typ = TypeAPI
	case keywordType != "":
		typ = keywordType
	default:
		typ = DefaultType
	}
	if category == "" {
		category = DefaultCategory
	}
	return typ, category
}

// Fill sets t.Type and t.Category when they are empty.
func (c *Classifier) Fill(t *Term) {
	if t.Type != "" && t.Category != "" {
		return
	}
	typ, category := c.Classify(t.Term, t.Meaning)
	if t.Type == "" {
		t.Type = typ
	}
	if t.Category == "" {
		t.Category = category
	}
}

// keywordPattern matches any of keywords at a word start. It returns nil
// when no keyword is usable.
func keywordPattern(keywords []string) *regexp.Regexp {
	alts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			alts = append(alts, regexp.QuoteMeta(k))
		}
	}
	if len(alts) == 0 {
		return nil
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)`)
}
