package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "randsent: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:            "randsent",
		Usage:           "Generate random sentences from a probabilistic context-free grammar",
		Version:         BuildTag,
		Writer:          ui.Out,
		ErrWriter:       ui.Err,
		HideHelpCommand: true,
		Flags:           generateFlags(),
		Action: func(c *cli.Context) error {
			return generateAction(c, ui)
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate sentences or derivation trees (default command)",
				Flags: generateFlags(),
				Action: func(c *cli.Context) error {
					return generateAction(c, ui)
				},
			},
			{
				Name:  "rules",
				Usage: "List the rules of a grammar with their probabilities",
				Flags: rulesFlags(),
				Action: func(c *cli.Context) error {
					return rulesAction(c, ui)
				},
			},
			{
				Name:  "stat",
				Usage: "Generate sentences and show statistics about them",
				Flags: statFlags(),
				Action: func(c *cli.Context) error {
					return statAction(c, ui)
				},
			},
			{
				Name:  "repl",
				Usage: "Generate sentences interactively",
				Flags: replFlags(),
				Action: func(c *cli.Context) error {
					return replAction(c, ui)
				},
			},
			{
				Name:  "grammars",
				Usage: "List the grammars of the grammar directory",
				Flags: []cli.Flag{grammarPathFlag(), verboseFlag()},
				Action: func(c *cli.Context) error {
					return grammarsAction(c, ui)
				},
			},
			{
				Name:  "bash",
				Usage: "Print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:   "complete",
				Usage:  "Print completions for the bash completion script",
				Hidden: true,
				Action: func(c *cli.Context) error {
					return completeCommand(c.Args().Slice(), ui)
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}
