package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/randsent/expand"
	"github.com/revelaction/randsent/render"
)

const (
	DefaultStartSymbol = "ROOT"

	envGrammar     = "RANDSENT_GRAMMAR"
	envGrammarPath = "RANDSENT_GRAMMAR_PATH"
	envPrettyPrint = "RANDSENT_PRETTYPRINT"
)

func grammarFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "grammar-file",
		Aliases: []string{"g"},
		Usage:   "Path to grammar file, or name of a grammar in the grammar directory",
		EnvVars: []string{envGrammar},
	}
}

func grammarPathFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "grammar-path",
		Aliases: []string{"d"},
		Usage:   "Directory of *.gr grammar files",
		EnvVars: []string{envGrammarPath},
	}
}

func startFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "start-symbol",
		Aliases: []string{"s"},
		Usage:   "Start symbol of the grammar",
		Value:   DefaultStartSymbol,
	}
}

func numFlag(value int) cli.Flag {
	return &cli.IntFlag{
		Name:    "number-of-sentences",
		Aliases: []string{"n"},
		Usage:   "Number of sentences to generate",
		Value:   value,
	}
}

func maxExpansionsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "max-expansions",
		Aliases: []string{"M"},
		Usage:   "Max number of nonterminal expansions when generating the sentence",
		Value:   expand.DefaultMaxExpansions,
	}
}

func seedFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the random source (default: current time)",
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "verbose",
		Usage: "Trace grammar loading and expansion to stderr",
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		grammarFlag(),
		grammarPathFlag(),
		startFlag(),
		numFlag(1),
		maxExpansionsFlag(),
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Print the derivation tree for each generated sentence (same as -f tree)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: sentence, tree, indent or json",
			Value:   render.Defaultformat,
		},
		&cli.StringFlag{
			Name:    "pretty-print",
			Aliases: []string{"p"},
			Usage:   "Command that pretty prints each tree read from its stdin (tree format only)",
			EnvVars: []string{envPrettyPrint},
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "Color the node labels of trees",
		},
		&cli.BoolFlag{
			Name:    "prefix",
			Aliases: []string{"x"},
			Usage:   "Prefix each output with its number",
		},
		seedFlag(),
		verboseFlag(),
	}
}

func rulesFlags() []cli.Flag {
	return []cli.Flag{
		grammarFlag(),
		grammarPathFlag(),
		&cli.BoolFlag{
			Name:  "by-rhs",
			Usage: "Group rules by right hand side instead of left hand side",
		},
		verboseFlag(),
	}
}

func statFlags() []cli.Flag {
	return []cli.Flag{
		grammarFlag(),
		grammarPathFlag(),
		startFlag(),
		numFlag(100),
		maxExpansionsFlag(),
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "Show a progress bar on stderr",
		},
		seedFlag(),
		verboseFlag(),
	}
}

func replFlags() []cli.Flag {
	return []cli.Flag{
		grammarFlag(),
		grammarPathFlag(),
		maxExpansionsFlag(),
		seedFlag(),
		verboseFlag(),
	}
}
