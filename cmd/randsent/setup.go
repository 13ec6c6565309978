package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/randsent/file"
	"github.com/revelaction/randsent/grammar"
	"github.com/revelaction/randsent/storage"
	"github.com/revelaction/randsent/storage/filesystem"
)

func setupTracing(c *cli.Context) {
	gtrace.CoreTracer = gologadapter.New()
	if c.Bool("verbose") {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		return
	}
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
}

// loadGrammar reads the grammar given by -g. An existing file wins over a
// grammar of the same name in the grammar directory.
func loadGrammar(c *cli.Context) (*grammar.Grammar, error) {
	name := c.String("grammar-file")
	if name == "" {
		return nil, errors.New("Grammar must be specified via -g or " + envGrammar)
	}

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return file.ReadGrammar(name)
	}

	if dir := c.String("grammar-path"); dir != "" {
		return NewGrammarRepository(dir).Read(name)
	}

	return file.ReadGrammar(name)
}

func NewGrammarRepository(path string) storage.GrammarReader {
	return filesystem.NewGrammarStore(path)
}

// newSource seeds from --seed, or from the clock if it is not given.
func newSource(c *cli.Context) *rand.Rand {
	seed := c.Int64("seed")
	if !c.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
