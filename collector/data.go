package collector

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/yaml"
)

//go:embed data/*.yaml
var dataFS embed.FS

func readData(name string) (*bytes.Reader, error) {
	b, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, lexicon.Errorf(lexicon.ENOTFOUND, "embedded table %s: %v", name, err)
	}
	return bytes.NewReader(b), nil
}

// LoadFeatureTable decodes an embedded feature table, e.g. "java.yaml".
func LoadFeatureTable(name string) (*lexicon.FeatureTable, error) {
	r, err := readData(name)
	if err != nil {
		return nil, err
	}
	t, err := yaml.DecodeFeatureTable(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// LoadOverview decodes an embedded overview glossary.
func LoadOverview(name string) (*lexicon.Overview, error) {
	r, err := readData(name)
	if err != nil {
		return nil, err
	}
	o, err := yaml.DecodeOverview(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return o, nil
}

// LoadSpecification decodes an embedded specification catalogue.
func LoadSpecification(name string) (*lexicon.Specification, error) {
	r, err := readData(name)
	if err != nil {
		return nil, err
	}
	s, err := yaml.DecodeSpecification(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
