package lexicon_test

import (
	"testing"

	"github.com/fwojciec/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := lexicon.NewClassifier(nil)

	tests := []struct {
		name         string
		title        string
		description  string
		wantType     lexicon.TermType
		wantCategory string
	}{
		{"thread keyword", "Virtual Threads", "Lightweight threads managed by the JVM", lexicon.TypeConcept, "concurrency"},
		{"record keyword", "Records", "Transparent carriers for immutable data", lexicon.TypeConcept, "class"},
		{"call parens are api", ".addClass()", "Adds the specified class(es) to each element", lexicon.TypeAPI, "class"},
		{"member access is api", "jQuery.ajax", "Perform an asynchronous HTTP request", lexicon.TypeAPI, "async"},
		{"deprecated wins type", ".live()", "Deprecated: attach an event handler", lexicon.TypeDeprecation, "events"},
		{"nothing matches", "Zebra", "", lexicon.DefaultType, lexicon.DefaultCategory},
		{"call parens beat syntax keywords", ".filter()", "Reduce the set of matched elements to those that match the selector expression.", lexicon.TypeAPI, "selectors"},
		{"syntax keyword without api signal", "Switch Expressions", "Use switch as an expression", lexicon.TypeSyntax, lexicon.DefaultCategory},
		{"keyword inside a word is ignored", ".offset()", "Get the current coordinates of the first element", lexicon.TypeAPI, lexicon.DefaultCategory},
		{"lock does not match block", "Text Blocks", "Multi-line string literals", lexicon.TypeConcept, "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ, category := c.Classify(tt.title, tt.description)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantCategory, category)
		})
	}
}

func TestClassifier_CustomRules(t *testing.T) {
	t.Parallel()

	c := lexicon.NewClassifier([]lexicon.ClassifierRule{
		{Keywords: []string{"zebra"}, Type: lexicon.TypeSyntax, Category: "animals"},
	})

	typ, category := c.Classify("Zebra crossing", "")
	assert.Equal(t, lexicon.TypeSyntax, typ)
	assert.Equal(t, "animals", category)

	typ, category = c.Classify("Virtual Threads", "")
	assert.Equal(t, lexicon.DefaultType, typ)
	assert.Equal(t, lexicon.DefaultCategory, category)
}

func TestClassifier_Fill(t *testing.T) {
	t.Parallel()

	c := lexicon.NewClassifier(nil)

	t.Run("keeps supplied fields", func(t *testing.T) {
		t.Parallel()

		term := lexicon.Term{Term: ".fadeIn()", Type: lexicon.TypeSyntax, Category: "custom"}
		c.Fill(&term)
		assert.Equal(t, lexicon.TypeSyntax, term.Type)
		assert.Equal(t, "custom", term.Category)
	})

	t.Run("infers missing fields", func(t *testing.T) {
		t.Parallel()

		term := lexicon.Term{Term: ".fadeIn()", Meaning: "Display the matched elements by fading them to opaque."}
		c.Fill(&term)
		assert.Equal(t, lexicon.TypeAPI, term.Type)
		assert.Equal(t, "effects", term.Category)
	})
}
