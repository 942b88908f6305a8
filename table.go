package lexicon

// Feature is one statically configured vocabulary entry.
// Path is optional; when set the entry may be enriched from that page.
type Feature struct {
	Path          string   `yaml:"path"`
	Term          string   `yaml:"term"`
	TermLocalized string   `yaml:"termLocalized"`
	Type          TermType `yaml:"type"`
	Category      string   `yaml:"category"`
	Meaning       string   `yaml:"meaning"`
}

// FeatureVersion lists the features introduced by one version.
type FeatureVersion struct {
	Version     string    `yaml:"version"`
	ReleaseDate string    `yaml:"releaseDate"`
	Features    []Feature `yaml:"features"`
}

// FeatureTable is the static configuration of a table-driven source.
type FeatureTable struct {
	BaseURL  string           `yaml:"baseUrl"`
	Versions []FeatureVersion `yaml:"versions"`
}

// ReleaseDates returns the release date lookup of the table.
func (t *FeatureTable) ReleaseDates() ReleaseDates {
	dates := make(ReleaseDates, len(t.Versions))
	for _, v := range t.Versions {
		dates[v.Version] = v.ReleaseDate
	}
	return dates
}

// Validate returns an error if the table contains invalid entries.
func (t *FeatureTable) Validate() error {
	seen := make(map[string]bool, len(t.Versions))
	for _, v := range t.Versions {
		if v.Version == "" {
			return Errorf(EINVALID, "feature table: version label required")
		}
		if seen[v.Version] {
			return Errorf(EINVALID, "feature table: duplicate version %q", v.Version)
		}
		seen[v.Version] = true
		for i, f := range v.Features {
			if f.Term == "" && f.Path == "" {
				return Errorf(EINVALID, "feature table: version %s feature %d needs a term or a path", v.Version, i)
			}
			if f.Type != "" && !f.Type.Valid() {
				return Errorf(EINVALID, "feature table: version %s feature %d has invalid type %q", v.Version, i, f.Type)
			}
		}
	}
	return nil
}
