package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/collector"
	"github.com/fwojciec/lexicon/crawl"
	lexfs "github.com/fwojciec/lexicon/fs"
	lexhttp "github.com/fwojciec/lexicon/http"
	"github.com/fwojciec/lexicon/readability"
	lexslog "github.com/fwojciec/lexicon/slog"
	"github.com/fwojciec/lexicon/trafilatura"
	"github.com/fwojciec/lexicon/yaml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Sources lists the collectors the program can run.
	Sources []Source

	// Fetcher overrides the HTTP fetcher. Used by tests.
	Fetcher lexicon.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Sources: DefaultSources(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lexicon"),
		kong.Description("Collect versioned programming vocabulary into JSON records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	targets, err := m.targets(cli.Lang)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = lexhttp.NewFetcher(lexhttp.WithTimeout(cli.Timeout))
	}
	retryLogger := logger.With("component", "fetch")
	retrying := crawl.NewRetryFetcher(
		lexslog.NewLoggingFetcher(fetcher, logger),
		crawl.WithRetryOptions(crawl.RetryOptions{Retries: cli.Retries, Delay: cli.Delay}),
		crawl.WithLimiter(crawl.NewDomainLimiter(cli.RPS)),
		crawl.WithLogger(func(format string, args ...any) {
			retryLogger.Warn(fmt.Sprintf(format, args...))
		}),
	)
	defer retrying.Close()

	env := &Env{
		Fetcher: retrying,
		Logger:  logger,
	}
	switch cli.Extractor {
	case "trafilatura":
		env.Extractor = trafilatura.NewExtractor()
	default:
		env.Extractor = readability.NewExtractor()
	}
	if cli.Classifier != "" {
		rules, err := yaml.LoadClassifierRules(cli.Classifier)
		if err != nil {
			return fmt.Errorf("classifier: %s", lexicon.ErrorMessage(err))
		}
		env.Classifier = lexicon.NewClassifier(rules)
	} else {
		env.Classifier = lexicon.NewClassifier(nil)
	}

	collectors := make([]lexicon.Collector, 0, len(targets))
	for _, src := range targets {
		c, err := src.New(env)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Key, err)
		}
		collectors = append(collectors, collector.Bind(lexslog.NewLoggingCollector(c, logger)))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Runner: &collector.Runner{
			Writer: lexslog.NewLoggingRecordWriter(lexfs.NewRecordWriter(cli.Out), logger),
			Logger: logger,
		},
		Collectors: collectors,
	}
	return cli.Run(deps)
}

// targets returns the sources selected by lang. An empty lang selects all.
func (m *Main) targets(lang string) ([]Source, error) {
	if lang == "" {
		return m.Sources, nil
	}
	for _, src := range m.Sources {
		if src.Key == lang {
			return []Source{src}, nil
		}
	}
	keys := make([]string, len(m.Sources))
	for i, src := range m.Sources {
		keys[i] = src.Key
	}
	sort.Strings(keys)
	return nil, fmt.Errorf("unknown language %q (available: %s)", lang, strings.Join(keys, ", "))
}
