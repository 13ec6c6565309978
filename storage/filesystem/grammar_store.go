package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/randsent/file"
	"github.com/revelaction/randsent/grammar"
	"github.com/revelaction/randsent/storage"
)

// GrammarStore is a directory of grammar files. The name of a grammar is its
// file name without extension.
type GrammarStore struct {
	root string
}

var _ storage.GrammarReader = (*GrammarStore)(nil)

func NewGrammarStore(root string) *GrammarStore {
	return &GrammarStore{root: root}
}

func (gs *GrammarStore) Names() ([]string, error) {
	files, err := os.ReadDir(gs.root)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != file.Ext {
			continue
		}

		names = append(names, strings.TrimSuffix(f.Name(), file.Ext))
	}

	sort.Strings(names)
	return names, nil
}

func (gs *GrammarStore) Read(name string) (*grammar.Grammar, error) {
	return file.ReadGrammar(gs.Path(name))
}

// Path returns the file path of the grammar name.
func (gs *GrammarStore) Path(name string) string {
	return filepath.Join(gs.root, name+file.Ext)
}
