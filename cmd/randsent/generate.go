package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/randsent/expand"
	"github.com/revelaction/randsent/render"
)

// GenerateOptions are the options of the generate command
type GenerateOptions struct {
	Start         string
	Count         int
	MaxExpansions int
	Format        string
	PrettyPrint   string
	HasColor      bool
	HasPrefix     bool
}

func parseGenerateOptions(c *cli.Context) (GenerateOptions, error) {
	opts := GenerateOptions{
		Start:         c.String("start-symbol"),
		Count:         c.Int("number-of-sentences"),
		MaxExpansions: c.Int("max-expansions"),
		Format:        c.String("format"),
		PrettyPrint:   c.String("pretty-print"),
		HasColor:      c.Bool("color"),
		HasPrefix:     c.Bool("prefix"),
	}

	if c.Bool("tree") {
		if c.IsSet("format") && opts.Format != render.FormatTree {
			return opts, fmt.Errorf("--tree conflicts with --format %s", opts.Format)
		}
		opts.Format = render.FormatTree
	}

	if !render.IsSupported(opts.Format) {
		return opts, fmt.Errorf("unsupported format %q, allowed values are %v", opts.Format, render.SupportedFormats())
	}

	if opts.Count < 0 {
		return opts, errors.New("number of sentences must not be negative")
	}

	if opts.MaxExpansions < 1 {
		return opts, expand.ErrBudget
	}

	return opts, nil
}

func generateAction(c *cli.Context, ui UI) error {
	setupTracing(c)

	opts, err := parseGenerateOptions(c)
	if err != nil {
		return err
	}

	g, err := loadGrammar(c)
	if err != nil {
		return err
	}

	r, err := newRenderer(opts, ui)
	if err != nil {
		return err
	}

	e := expand.New(g, newSource(c))
	return generateCommand(e, r, opts)
}

func generateCommand(e *expand.Expander, r render.Renderer, opts GenerateOptions) error {
	for i := 0; i < opts.Count; i++ {
		n, err := e.Generate(opts.Start, opts.MaxExpansions)
		if err != nil {
			return err
		}

		if err := r.Render(n); err != nil {
			return err
		}
	}

	return nil
}

func newRenderer(opts GenerateOptions, ui UI) (render.Renderer, error) {
	if opts.PrettyPrint != "" && opts.Format == render.FormatTree {
		return render.NewPipeRenderer(opts.PrettyPrint, ui.Out, ui.Err)
	}

	r, err := render.New(opts.Format, ui.Out)
	if err != nil {
		return nil, err
	}

	if tr, ok := r.(*render.TextRenderer); ok {
		tr.HasColor = opts.HasColor
		tr.HasPrefix = opts.HasPrefix
	}

	return r, nil
}
