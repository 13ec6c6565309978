package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/randsent/grammar"
)

func rulesAction(c *cli.Context, ui UI) error {
	setupTracing(c)

	g, err := loadGrammar(c)
	if err != nil {
		return err
	}

	if c.Bool("by-rhs") {
		return rulesByRHSCommand(g, ui)
	}

	return rulesCommand(g, ui)
}

// rulesCommand prints the rules of every nonterminal
func rulesCommand(g *grammar.Grammar, ui UI) error {
	for _, lhs := range g.Nonterminals() {
		fmt.Fprintf(ui.Out, "📖 %s (%d)\n", lhs, g.TotalWeight(lhs))
		for _, id := range g.RulesFor(lhs) {
			r, _ := g.Rule(id)
			fmt.Fprintln(ui.Out, r)
		}
	}

	return nil
}

// rulesByRHSCommand prints the rules sharing each right hand side
func rulesByRHSCommand(g *grammar.Grammar, ui UI) error {
	for _, key := range g.RHSKeys() {
		fmt.Fprintf(ui.Out, "📖 %q\n", key)

		// a key is the joined rhs, so it looks up as a single token
		for _, id := range g.RulesWithRHS(key) {
			r, _ := g.Rule(id)
			fmt.Fprintf(ui.Out, "%6d %6d %8.4f  %s\n", r.Id, r.Weight, r.Probability, r.Lhs)
		}
	}

	return nil
}
