package lexicon

import "context"

// SourceRecord is the unit of persistence, one per source.
// Versions are ordered newest first.
type SourceRecord struct {
	Language      string         `json:"language"`
	DisplayName   string         `json:"displayName"`
	Source        string         `json:"source"`
	Overview      *Overview      `json:"overview,omitempty"`
	Specification *Specification `json:"specification,omitempty"`
	Versions      []Version      `json:"versions"`
}

// NewSourceRecord assembles the record a collector run persists.
// A nil overview or specification is left out of the serialized record.
func NewSourceRecord(c Collector, versions []Version, overview *Overview, spec *Specification) *SourceRecord {
	if versions == nil {
		versions = []Version{}
	}
	return &SourceRecord{
		Language:      c.Key(),
		DisplayName:   c.DisplayName(),
		Source:        c.SourceURL(),
		Overview:      overview,
		Specification: spec,
		Versions:      versions,
	}
}

// TermCount returns the number of terms across all versions.
func (r *SourceRecord) TermCount() int {
	var n int
	for _, v := range r.Versions {
		n += len(v.Terms)
	}
	return n
}

// Validate returns an error if the record contains invalid fields.
func (r *SourceRecord) Validate() error {
	if r.Language == "" {
		return Errorf(EINVALID, "record language required")
	}
	if r.DisplayName == "" {
		return Errorf(EINVALID, "record %s: display name required", r.Language)
	}
	for _, v := range r.Versions {
		if len(v.Terms) == 0 {
			return Errorf(EINVALID, "record %s: version %q has no terms", r.Language, v.Version)
		}
	}
	return nil
}

// WriteResult describes a persisted record.
type WriteResult struct {
	// Path is where the record is stored.
	Path string

	// Bytes is the size of the serialized record.
	Bytes int

	// Unchanged is true when the stored record already had identical
	// content and nothing was written.
	Unchanged bool
}

// RecordWriter persists source records.
type RecordWriter interface {
	// WriteRecord replaces the stored record for r.Language in full.
	WriteRecord(ctx context.Context, r *SourceRecord) (*WriteResult, error)
}

// ReferenceKind names the field a soft reference lives in.
type ReferenceKind string

// Soft reference kinds.
const (
	RefRelatedConcept ReferenceKind = "relatedConceptIds"
	RefCharacteristic ReferenceKind = "characteristicId"
	RefRelatedTerm    ReferenceKind = "relatedTermIds"
)

// Reference is a soft link whose target is missing from a record.
type Reference struct {
	From string
	To   string
	Kind ReferenceKind
}

// CheckReferences returns the soft references in r that point at ids not
// present in the record. Dangling references are reported, never rejected.
func CheckReferences(r *SourceRecord) []Reference {
	if r.Overview == nil {
		return nil
	}

	characteristics := make(map[string]bool)
	for _, c := range r.Overview.Characteristics {
		characteristics[c.ID] = true
	}
	concepts := make(map[string]bool)
	for _, c := range r.Overview.Concepts {
		concepts[c.ID] = true
	}
	terms := make(map[string]bool)
	for _, v := range r.Versions {
		for _, t := range v.Terms {
			terms[t.ID] = true
		}
	}

	var dangling []Reference
	for _, c := range r.Overview.Characteristics {
		for _, id := range c.RelatedConceptIDs {
			if !concepts[id] {
				dangling = append(dangling, Reference{From: c.ID, To: id, Kind: RefRelatedConcept})
			}
		}
	}
	for _, c := range r.Overview.Concepts {
		if c.CharacteristicID != "" && !characteristics[c.CharacteristicID] {
			dangling = append(dangling, Reference{From: c.ID, To: c.CharacteristicID, Kind: RefCharacteristic})
		}
		for _, id := range c.RelatedTermIDs {
			if !terms[id] {
				dangling = append(dangling, Reference{From: c.ID, To: id, Kind: RefRelatedTerm})
			}
		}
	}
	return dangling
}
