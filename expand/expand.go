// Package expand generates derivation trees by recursively expanding
// nonterminals of a grammar.
//
// Expansion is bounded by a per-sentence budget of nonterminal expansions.
// A grammar with recursive rules terminates only because of this budget;
// once it is spent, every further nonterminal becomes a tree.Ellipsis.
package expand

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"github.com/revelaction/randsent/grammar"
	"github.com/revelaction/randsent/sample"
	"github.com/revelaction/randsent/tree"
)

// DefaultMaxExpansions is the default expansion budget per sentence.
const DefaultMaxExpansions = 450

var (
	ErrUnknownStart = errors.New("start symbol has no rules")
	ErrBudget       = errors.New("max expansions must be at least 1")
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Expander generates trees from a grammar. An Expander is not safe for
// concurrent use because its random source is not; Expanders with their
// own sources may share a Grammar.
type Expander struct {
	g   *grammar.Grammar
	src sample.Source
}

func New(g *grammar.Grammar, src sample.Source) *Expander {
	return &Expander{g: g, src: src}
}

// derivation is the state of one Generate call.
type derivation struct {
	g   *grammar.Grammar
	src sample.Source
	max int

	// nonterminal expansions so far, the start symbol included
	expansions int
}

// Generate expands start into a derivation tree using at most maxExpansions
// nonterminal expansions, the expansion of start included.
func (e *Expander) Generate(start string, maxExpansions int) (*tree.Node, error) {
	if maxExpansions < 1 {
		return nil, ErrBudget
	}

	if !e.g.IsNonterminal(start) {
		return nil, errors.Wrap(ErrUnknownStart, start)
	}

	d := &derivation{g: e.g, src: e.src, max: maxExpansions, expansions: 1}
	n, err := d.expandRule(start)
	if err != nil {
		return nil, err
	}

	tracer().Debugf("generated %s with %d expansions", start, d.expansions)
	return n, nil
}

// expandRule samples a rule for lhs and expands its rhs.
func (d *derivation) expandRule(lhs string) (*tree.Node, error) {
	id, err := d.g.PickOne(lhs, d.src)
	if err != nil {
		return nil, err
	}

	rule, _ := d.g.Rule(id)
	tracer().Debugf("expand %s with rule %d", lhs, id)

	n := &tree.Node{Label: lhs, Rule: id, Children: make([]tree.Child, 0, len(rule.Rhs))}
	for _, sym := range rule.Rhs {
		switch sym.Kind {
		case grammar.Epsilon:
			continue

		case grammar.Terminal:
			n.Children = append(n.Children, tree.Leaf(sym.Text))

		case grammar.Nonterminal:
			if d.expansions >= d.max {
				tracer().Debugf("budget of %d exhausted at %s", d.max, sym.Text)
				n.Children = append(n.Children, tree.Ellipsis{})
				continue
			}

			d.expansions++
			child, err := d.expandRule(sym.Text)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}

	return n, nil
}
