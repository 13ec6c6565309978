package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/randsent/expand"
	"github.com/revelaction/randsent/grammar"
	"github.com/revelaction/randsent/stat"
)

// StatOptions are the options of the stat command
type StatOptions struct {
	Start         string
	Count         int
	MaxExpansions int
	Progress      bool
}

func statAction(c *cli.Context, ui UI) error {
	setupTracing(c)

	opts := StatOptions{
		Start:         c.String("start-symbol"),
		Count:         c.Int("number-of-sentences"),
		MaxExpansions: c.Int("max-expansions"),
		Progress:      c.Bool("progress"),
	}

	if opts.Count < 1 {
		return errors.New("stat needs at least one sentence")
	}

	g, err := loadGrammar(c)
	if err != nil {
		return err
	}

	return statCommand(g, expand.New(g, newSource(c)), opts, ui)
}

func statCommand(g *grammar.Grammar, e *expand.Expander, opts StatOptions, ui UI) error {
	hdl := stat.NewHandler()

	var bar *uiprogress.Bar
	var progress *uiprogress.Progress
	if opts.Progress {
		progress = uiprogress.New()
		progress.SetOut(ui.Err)
		bar = progress.AddBar(opts.Count)
		bar.AppendCompleted()
		bar.PrependElapsed()
		progress.Start()
	}

	for i := 0; i < opts.Count; i++ {
		n, err := e.Generate(opts.Start, opts.MaxExpansions)
		if err != nil {
			if progress != nil {
				progress.Stop()
			}
			return err
		}

		hdl.Aggregate(n)
		if bar != nil {
			bar.Incr()
		}
	}

	if progress != nil {
		progress.Stop()
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %.2f, truncated %d, expansions %d\n",
		stats.NumSentences, stats.TokensPerSentenceMean, stats.NumTruncated, stats.NumExpansions)

	lengths := []int{}
	for l := range stats.TokensPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	fmt.Fprintln(ui.Out, "\nTokens  Sentences")
	for _, l := range lengths {
		fmt.Fprintf(ui.Out, "%6d %10d\n", l, stats.TokensPerSentenceDis[l])
	}

	fmt.Fprintln(ui.Out, "\n  Rule    Count     Prob Observed")
	for _, f := range hdl.Frequencies(g) {
		fmt.Fprintf(ui.Out, "%6d %8d %8.4f %8.4f  %s -> %s\n", f.Rule.Id, f.Count, f.Rule.Probability, f.Observed, f.Rule.Lhs, f.Rule.RhsKey())
	}

	return nil
}
