package main

import (
	"log/slog"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/collector"
)

// Env carries the shared services collectors are built from.
type Env struct {
	Fetcher    lexicon.Fetcher
	Extractor  lexicon.ContentExtractor
	Classifier *lexicon.Classifier
	Logger     *slog.Logger
}

// Source registers a collector under its key.
type Source struct {
	Key string
	New func(env *Env) (lexicon.Collector, error)
}

// DefaultSources returns the built-in collectors.
func DefaultSources() []Source {
	return []Source{
		{Key: collector.JavaKey, New: newJava},
		{Key: collector.JavaScriptKey, New: newJavaScript},
		{Key: collector.JQueryKey, New: newJQuery},
	}
}

func newJava(env *Env) (lexicon.Collector, error) {
	j, err := collector.NewJava(env.Fetcher, env.Logger)
	if err != nil {
		return nil, err
	}
	j.Extractor = env.Extractor
	j.Classifier = env.Classifier
	return j, nil
}

func newJavaScript(env *Env) (lexicon.Collector, error) {
	j, err := collector.NewJavaScript(env.Fetcher, env.Logger)
	if err != nil {
		return nil, err
	}
	j.Classifier = env.Classifier
	return j, nil
}

func newJQuery(env *Env) (lexicon.Collector, error) {
	j := collector.NewJQuery(env.Fetcher, env.Logger)
	j.Classifier = env.Classifier
	return j, nil
}
