package lexicon

import (
	"strings"
	"unicode"
)

// MaxTermSlugLength bounds the term part of a generated id.
const MaxTermSlugLength = 30

// IDScheme derives stable term identifiers for one source.
type IDScheme struct {
	// PrefixLen is the number of leading source key characters used as the
	// id prefix. Zero, or a value at least the key length, uses the full key.
	PrefixLen int
}

// Generate returns the id for term in version of source key.
// The result is a pure function of its inputs: prefix-versionSlug-termSlug.
func (s IDScheme) Generate(key, version, term string) string {
	prefix := key
	if s.PrefixLen > 0 && s.PrefixLen < len(key) {
		prefix = key[:s.PrefixLen]
	}

	termSlug := Slugify(term)
	if len(termSlug) > MaxTermSlugLength {
		termSlug = termSlug[:MaxTermSlugLength]
	}

	return prefix + "-" + versionSlug(version) + "-" + termSlug
}

// GenerateID returns the id for term using the full source key as prefix.
func GenerateID(key, version, term string) string {
	return IDScheme{}.Generate(key, version, term)
}

// Slugify lowercases s, drops characters outside [a-z0-9], whitespace and
// hyphens, and joins the remaining words with single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return b.String()
}

func versionSlug(version string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(version) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
