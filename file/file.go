package file

import (
	"os"

	"github.com/pkg/errors"

	"github.com/revelaction/randsent/grammar"
)

const (
	// Ext is the extension of grammar files
	Ext = ".gr"
)

// ReadGrammar reads and parses the grammar file at path.
func ReadGrammar(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open grammar")
	}
	defer f.Close()

	g, err := grammar.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "grammar %s", path)
	}

	return g, nil
}
