package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/collector"
	"golang.org/x/sync/errgroup"
)

type outcome struct {
	key    string
	result *collector.Result
	err    error
}

// Run collects every selected source. A failing source is reported and
// does not stop the others; the run fails once all have finished.
func (c *CLI) Run(deps *Dependencies) error {
	outcomes := make([]outcome, len(deps.Collectors))

	run := func(i int) {
		col := deps.Collectors[i]
		res, err := deps.Runner.Run(deps.Ctx, col)
		outcomes[i] = outcome{key: col.Key(), result: res, err: err}
		if err != nil {
			deps.Logger.Error("collector failed", "source", col.Key(), "err", err)
		}
	}

	if c.Concurrency <= 1 {
		for i := range deps.Collectors {
			run(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.Concurrency)
		for i := range deps.Collectors {
			g.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	var failed []string
	for _, o := range outcomes {
		if o.err != nil {
			failed = append(failed, o.key)
			fmt.Fprintf(deps.Stderr, "%s: failed: %s\n", o.key, failureMessage(o.err))
			continue
		}
		fmt.Fprintln(deps.Stdout, summary(o.key, o.result))
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d sources failed: %s", len(failed), len(outcomes), strings.Join(failed, ", "))
	}
	return nil
}

func summary(key string, res *collector.Result) string {
	line := fmt.Sprintf("%s: %d terms across %d versions -> %s",
		key, res.Record.TermCount(), len(res.Record.Versions), res.Write.Path)
	if res.Write.Unchanged {
		line += " (unchanged)"
	}
	return line
}

func failureMessage(err error) string {
	if lexicon.ErrorCode(err) == lexicon.EINTERNAL {
		return err.Error()
	}
	return lexicon.ErrorMessage(err)
}
