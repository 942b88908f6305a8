package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/collector"
)

// Dependencies holds all services and configuration for a run.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Runner     *collector.Runner
	Collectors []lexicon.Collector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lang        string        `help:"Collect a single source (java, javascript, jquery). Collects all when empty." env:"LEXICON_LANG"`
	Out         string        `short:"o" default:"data" help:"Output directory for JSON records." env:"LEXICON_OUT"`
	Timeout     time.Duration `default:"30s" help:"Per-request timeout." env:"LEXICON_TIMEOUT"`
	Retries     int           `default:"3" help:"Attempts per request." env:"LEXICON_RETRIES"`
	Delay       time.Duration `default:"1s" help:"Base retry delay; attempt n waits delay*n." env:"LEXICON_DELAY"`
	RPS         float64       `name:"rps" default:"2" help:"Requests per second per host (0 disables pacing)." env:"LEXICON_RPS"`
	Concurrency int           `short:"c" default:"1" help:"Sources collected concurrently." env:"LEXICON_CONCURRENCY"`
	Extractor   string        `enum:"readability,trafilatura" default:"readability" help:"Main content extractor (readability, trafilatura)." env:"LEXICON_EXTRACTOR"`
	Classifier  string        `help:"YAML file overriding the classifier keyword table." env:"LEXICON_CLASSIFIER"`
	Verbose     bool          `short:"v" help:"Log every request." env:"LEXICON_VERBOSE"`
}
