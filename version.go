package lexicon

import (
	"slices"
	"strconv"
	"strings"
)

// VersionOrder ranks version labels by recency.
type VersionOrder interface {
	// Rank maps a label onto comparable numeric components.
	// Larger components are more recent. Unparsable labels return nil.
	Rank(label string) []int
}

// DottedOrder ranks numeric dotted labels ("3.10", "1.4.3") component-wise.
type DottedOrder struct{}

// Rank implements VersionOrder.
func (DottedOrder) Rank(label string) []int {
	return parseDotted(label)
}

// EditionOrder ranks tagged edition labels ("ES2024") by their year.
// Editions named before the yearly scheme ("ES5", "ES6") map through Eras.
type EditionOrder struct {
	Prefix string
	Eras   map[string]int
}

// DefaultEditionOrder ranks ECMAScript editions.
func DefaultEditionOrder() EditionOrder {
	return EditionOrder{
		Prefix: "ES",
		Eras: map[string]int{
			"ES1": 1997,
			"ES2": 1998,
			"ES3": 1999,
			"ES5": 2009,
			"ES6": 2015,
		},
	}
}

// Rank implements VersionOrder.
func (o EditionOrder) Rank(label string) []int {
	if era, ok := o.Eras[label]; ok {
		return []int{era}
	}
	n, err := strconv.Atoi(strings.TrimPrefix(label, o.Prefix))
	if err != nil {
		return nil
	}
	return []int{n}
}

// IntegerOrder ranks bare integer release labels ("8", "17").
// Labels from before the integer renumbering ("1.4") map through Eras.
type IntegerOrder struct {
	Eras map[string]int
}

// DefaultIntegerOrder ranks Java feature releases.
func DefaultIntegerOrder() IntegerOrder {
	return IntegerOrder{
		Eras: map[string]int{
			"1.0": 0,
			"1.1": 1,
			"1.2": 2,
			"1.3": 3,
			"1.4": 4,
			"1.5": 5,
			"1.6": 6,
			"1.7": 7,
			"1.8": 8,
		},
	}
}

// Rank implements VersionOrder.
func (o IntegerOrder) Rank(label string) []int {
	if era, ok := o.Eras[label]; ok {
		return []int{era}
	}
	return parseDotted(label)
}

// CompareVersions orders a and b newest first under o: it returns a
// negative number when a is more recent than b. Missing trailing components
// count as zero. Unparsable labels sort last; ties break on the label so the
// order is total.
func CompareVersions(o VersionOrder, a, b string) int {
	ra, rb := o.Rank(a), o.Rank(b)
	switch {
	case ra == nil && rb != nil:
		return 1
	case ra != nil && rb == nil:
		return -1
	}
	for i := 0; i < max(len(ra), len(rb)); i++ {
		var x, y int
		if i < len(ra) {
			x = ra[i]
		}
		if i < len(rb) {
			y = rb[i]
		}
		if x != y {
			return y - x
		}
	}
	return strings.Compare(a, b)
}

// ReleaseDates maps version labels to ISO year-month release dates.
type ReleaseDates map[string]string

// AggregateStats reports what Aggregate discarded.
type AggregateStats struct {
	EmptyVersions    []string
	DuplicateTermIDs []string
}

// Aggregate turns per-version term buckets into the ordered versions of a
// record.
//
// Empty buckets are dropped. Terms sharing an id within a bucket are
// deduplicated, keeping the first. Versions are sorted newest first under
// order and release dates are attached from dates (unknown labels get "").
// Aggregate is pure: the same input always yields the same output.
func Aggregate(buckets map[string][]Term, order VersionOrder, dates ReleaseDates) ([]Version, AggregateStats) {
	var stats AggregateStats
	versions := make([]Version, 0, len(buckets))

	for label, terms := range buckets {
		if len(terms) == 0 {
			stats.EmptyVersions = append(stats.EmptyVersions, label)
			continue
		}

		seen := make(map[string]bool, len(terms))
		deduped := make([]Term, 0, len(terms))
		for _, t := range terms {
			if seen[t.ID] {
				stats.DuplicateTermIDs = append(stats.DuplicateTermIDs, t.ID)
				continue
			}
			seen[t.ID] = true
			deduped = append(deduped, t)
		}

		versions = append(versions, Version{
			Version:     label,
			ReleaseDate: dates[label],
			Terms:       deduped,
		})
	}

	slices.SortFunc(versions, func(a, b Version) int {
		return CompareVersions(order, a.Version, b.Version)
	})
	slices.Sort(stats.EmptyVersions)
	slices.Sort(stats.DuplicateTermIDs)

	return versions, stats
}

func parseDotted(label string) []int {
	if label == "" {
		return nil
	}
	parts := strings.Split(label, ".")
	rank := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		rank[i] = n
	}
	return rank
}
