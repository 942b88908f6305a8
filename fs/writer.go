// Package fs stores source records as JSON files.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lexicon"
)

// DefaultDir is where records are written when no directory is given.
const DefaultDir = "data"

// Ensure RecordWriter implements lexicon.RecordWriter at compile time.
var _ lexicon.RecordWriter = (*RecordWriter)(nil)

// RecordWriter writes one pretty-printed JSON file per source to a
// directory. Files are replaced atomically and left untouched when their
// content would not change.
type RecordWriter struct {
	dir string
}

// NewRecordWriter creates a RecordWriter that writes into dir.
func NewRecordWriter(dir string) *RecordWriter {
	if dir == "" {
		dir = DefaultDir
	}
	return &RecordWriter{dir: dir}
}

// Path returns the file a record for language is stored in.
func (w *RecordWriter) Path(language string) string {
	return filepath.Join(w.dir, language+".json")
}

// WriteRecord serializes r and replaces the stored file for r.Language.
func (w *RecordWriter) WriteRecord(ctx context.Context, r *lexicon.SourceRecord) (*lexicon.WriteResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := Marshal(r)
	if err != nil {
		return nil, err
	}

	path := w.Path(r.Language)
	res := &lexicon.WriteResult{Path: path, Bytes: len(data)}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, lexicon.Errorf(lexicon.EINTERNAL, "create output directory: %v", err)
	}

	unchanged, err := hashMatches(path, xxhash.Sum64(data))
	if err != nil {
		return nil, err
	}
	if unchanged {
		res.Unchanged = true
		return res, nil
	}

	if err := writeAtomic(path, data); err != nil {
		return nil, err
	}
	return res, nil
}

// Marshal encodes r with two-space indentation and a trailing newline.
// Markup characters in text fields are kept literal.
func Marshal(r *lexicon.SourceRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalize(r)); err != nil {
		return nil, lexicon.Errorf(lexicon.EINTERNAL, "encode record %s: %v", r.Language, err)
	}
	return buf.Bytes(), nil
}

// normalize returns a copy of r whose slices encode as arrays, never null.
func normalize(r *lexicon.SourceRecord) *lexicon.SourceRecord {
	out := *r
	out.Versions = make([]lexicon.Version, len(r.Versions))
	for i, v := range r.Versions {
		terms := make([]lexicon.Term, len(v.Terms))
		for j, t := range v.Terms {
			if t.Tags == nil {
				t.Tags = []string{}
			}
			terms[j] = t
		}
		v.Terms = terms
		out.Versions[i] = v
	}
	if r.Overview != nil {
		o := *r.Overview
		o.Characteristics = append([]lexicon.Characteristic{}, o.Characteristics...)
		for i := range o.Characteristics {
			if o.Characteristics[i].RelatedConceptIDs == nil {
				o.Characteristics[i].RelatedConceptIDs = []string{}
			}
		}
		o.Concepts = append([]lexicon.Concept{}, o.Concepts...)
		for i := range o.Concepts {
			if o.Concepts[i].RelatedTermIDs == nil {
				o.Concepts[i].RelatedTermIDs = []string{}
			}
		}
		out.Overview = &o
	}
	if r.Specification != nil {
		s := *r.Specification
		s.Categories = append([]lexicon.SpecCategory{}, s.Categories...)
		for i := range s.Categories {
			if s.Categories[i].Items == nil {
				s.Categories[i].Items = []lexicon.SpecItem{}
			}
		}
		out.Specification = &s
	}
	return &out
}

// hashMatches reports whether the file at path hashes to sum. A missing
// file never matches.
func hashMatches(path string, sum uint64) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, lexicon.Errorf(lexicon.EINTERNAL, "open existing record: %v", err)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return false, lexicon.Errorf(lexicon.EINTERNAL, "read existing record: %v", err)
	}
	return h.Sum64() == sum, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return lexicon.Errorf(lexicon.EINTERNAL, "create temp file: %v", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return lexicon.Errorf(lexicon.EINTERNAL, "write temp file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return lexicon.Errorf(lexicon.EINTERNAL, "close temp file: %v", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return lexicon.Errorf(lexicon.EINTERNAL, "chmod temp file: %v", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return lexicon.Errorf(lexicon.EINTERNAL, "replace record: %v", err)
	}
	return nil
}
