package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/randsent/expand"
	"github.com/revelaction/randsent/render"
	"github.com/revelaction/randsent/repl"
)

func replAction(c *cli.Context, ui UI) error {
	setupTracing(c)

	maxExpansions := c.Int("max-expansions")
	if maxExpansions < 1 {
		return expand.ErrBudget
	}

	g, err := loadGrammar(c)
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(ui.Out)
	r.HasColor = true

	hdl := repl.NewHandler(g, expand.New(g, newSource(c)), r, maxExpansions, ui.Err)
	return hdl.Run()
}
