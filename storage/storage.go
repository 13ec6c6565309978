package storage

import (
	"github.com/revelaction/randsent/grammar"
)

// GrammarReader defines read operations for grammar storage
type GrammarReader interface {
	// Names returns the names of all stored grammars, sorted.
	Names() ([]string, error)

	// Read loads the grammar with the given name
	Read(name string) (*grammar.Grammar, error)
}
