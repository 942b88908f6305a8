// Package yaml decodes the static configuration of the collectors: feature
// tables, overview glossaries, specification catalogues and classifier
// keyword rules. Unknown keys are rejected so typos in the tables surface
// as errors instead of silently empty fields.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/lexicon"
	"gopkg.in/yaml.v3"
)

// ClassifierFile is the on-disk layout of a classifier keyword table.
type ClassifierFile struct {
	Rules []lexicon.ClassifierRule `yaml:"rules"`
}

// DecodeFeatureTable decodes and validates a feature table.
func DecodeFeatureTable(r io.Reader) (*lexicon.FeatureTable, error) {
	var t lexicon.FeatureTable
	if err := decode(r, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// DecodeOverview decodes an overview glossary.
func DecodeOverview(r io.Reader) (*lexicon.Overview, error) {
	var o lexicon.Overview
	if err := decode(r, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DecodeSpecification decodes a specification catalogue.
func DecodeSpecification(r io.Reader) (*lexicon.Specification, error) {
	var s lexicon.Specification
	if err := decode(r, &s); err != nil {
		return nil, err
	}
	for _, c := range s.Categories {
		if c.Group != lexicon.GroupSyntax && c.Group != lexicon.GroupAPI {
			return nil, lexicon.Errorf(lexicon.EINVALID, "specification category %q: invalid group %q", c.ID, c.Group)
		}
	}
	return &s, nil
}

// DecodeClassifierRules decodes a classifier keyword table.
// An empty table is an error: it would classify everything as the default.
func DecodeClassifierRules(r io.Reader) ([]lexicon.ClassifierRule, error) {
	var f ClassifierFile
	if err := decode(r, &f); err != nil {
		return nil, err
	}
	if len(f.Rules) == 0 {
		return nil, lexicon.Errorf(lexicon.EINVALID, "classifier rules: no rules defined")
	}
	for i, rule := range f.Rules {
		if len(rule.Keywords) == 0 {
			return nil, lexicon.Errorf(lexicon.EINVALID, "classifier rule %d: keywords required", i)
		}
		if rule.Type != "" && !rule.Type.Valid() {
			return nil, lexicon.Errorf(lexicon.EINVALID, "classifier rule %d: invalid type %q", i, rule.Type)
		}
		if rule.Type == "" && rule.Category == "" {
			return nil, lexicon.Errorf(lexicon.EINVALID, "classifier rule %d: type or category required", i)
		}
	}
	return f.Rules, nil
}

// LoadClassifierRules reads a classifier keyword table from path.
func LoadClassifierRules(path string) ([]lexicon.ClassifierRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, lexicon.Errorf(lexicon.ENOTFOUND, "classifier rules file not found: %s", path)
		}
		return nil, lexicon.Errorf(lexicon.EINTERNAL, "read classifier rules: %v", err)
	}
	return DecodeClassifierRules(bytes.NewReader(data))
}

func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return lexicon.Errorf(lexicon.EINVALID, "empty YAML document")
		}
		return lexicon.Errorf(lexicon.EINVALID, "parse YAML: %v", err)
	}
	return nil
}
