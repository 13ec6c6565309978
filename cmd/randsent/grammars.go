package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/randsent/storage"
)

func grammarsAction(c *cli.Context, ui UI) error {
	dir := c.String("grammar-path")
	if dir == "" {
		return errors.New("Grammar path must be specified via -d or " + envGrammarPath)
	}

	return grammarsCommand(NewGrammarRepository(dir), ui)
}

// grammarsCommand lists the stored grammars
func grammarsCommand(repo storage.GrammarReader, ui UI) error {
	names, err := repo.Names()
	if err != nil {
		return err
	}

	for id, name := range names {
		fmt.Fprintf(ui.Out, "📖 %d %s \n", id, name)
	}

	return nil
}
