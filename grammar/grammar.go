package grammar

import (
	"bufio"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"

	"github.com/revelaction/randsent/sample"
)

const maxLineSize = 1024 * 1024

// Grammar is an immutable set of weighted rules. It is safe for concurrent
// use once Load returns.
type Grammar struct {
	rules []Rule

	// rule ids by lhs, in file order
	lhsRules map[string][]int

	// rule ids by rhs key, ordered by key
	rhsRules *treemap.Map

	lhsWeight  map[string]int
	grandTotal int

	tables map[string]*sample.Table
}

// Load reads a grammar from r.
func Load(r io.Reader) (*Grammar, error) {
	g := &Grammar{
		lhsRules:  map[string][]int{},
		rhsRules:  treemap.NewWithStringComparator(),
		lhsWeight: map[string]int{},
		tables:    map[string]*sample.Table{},
	}

	// raw rhs tokens, by rule id, resolved once all lhs are known
	var rhsTokens [][]string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i != -1 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		f := strings.Split(line, "\t")
		if len(f) < 3 {
			return nil, &ParseError{Line: lineNum, Content: strings.Join(f, " "), Reason: "empty rules are not allowed"}
		}

		count, err := strconv.Atoi(strings.TrimSpace(f[0]))
		if err != nil || count <= 0 {
			return nil, &ParseError{Line: lineNum, Content: strings.Join(f, " "), Reason: "count must be a positive integer"}
		}

		lhs := strings.TrimSpace(f[1])
		if lhs == "" {
			return nil, &ParseError{Line: lineNum, Content: strings.Join(f, " "), Reason: "empty lhs"}
		}

		if count > math.MaxInt-g.grandTotal {
			return nil, &ParseError{Line: lineNum, Content: strings.Join(f, " "), Reason: "total weight overflows"}
		}

		toks := splitRHS(f[2])

		id := len(g.rules)
		g.rules = append(g.rules, Rule{Id: id, Weight: count, Lhs: lhs})
		rhsTokens = append(rhsTokens, toks)

		g.lhsRules[lhs] = append(g.lhsRules[lhs], id)

		key := rhsKey(toks)
		var ids []int
		if v, found := g.rhsRules.Get(key); found {
			ids = v.([]int)
		}
		g.rhsRules.Put(key, append(ids, id))

		g.lhsWeight[lhs] += count
		g.grandTotal += count
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading grammar at line %d", lineNum+1)
	}

	for id := range g.rules {
		rule := &g.rules[id]
		rule.Rhs = g.resolve(rhsTokens[id])
		rule.Probability = float64(rule.Weight) / float64(g.lhsWeight[rule.Lhs])
	}

	if err := g.check(); err != nil {
		return nil, err
	}

	for lhs, ids := range g.lhsRules {
		weights := make([]int, len(ids))
		for i, id := range ids {
			weights[i] = g.rules[id].Weight
		}

		t, err := sample.NewTable(ids, weights)
		if err != nil {
			return nil, errors.Wrapf(err, "building sampler for %s", lhs)
		}
		g.tables[lhs] = t
	}

	tracer().Infof("loaded %d rules for %d nonterminals", len(g.rules), len(g.lhsRules))
	for _, rule := range g.rules {
		tracer().Debugf("rule %s", rule)
	}

	return g, nil
}

// resolve decides the kind of each rhs token.
func (g *Grammar) resolve(toks []string) []Symbol {
	syms := make([]Symbol, len(toks))
	for i, t := range toks {
		switch {
		case t == EpsilonMarker:
			syms[i] = Symbol{Text: t, Kind: Epsilon}
		case g.IsNonterminal(t):
			syms[i] = Symbol{Text: t, Kind: Nonterminal}
		default:
			syms[i] = Symbol{Text: t, Kind: Terminal}
		}
	}
	return syms
}

// check verifies that every rule id is registered under its lhs.
func (g *Grammar) check() error {
	for id, rule := range g.rules {
		if rule.Id != id || !containsId(g.lhsRules[rule.Lhs], id) {
			return errors.Errorf("rule number %d not found", id)
		}
	}
	return nil
}

func containsId(ids []int, id int) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

// PickOne draws a rule id for lhs with probability equal to the rule's
// Probability.
func (g *Grammar) PickOne(lhs string, src sample.Source) (int, error) {
	t, ok := g.tables[lhs]
	if !ok {
		return 0, errors.Wrap(ErrNoRules, lhs)
	}
	return t.Pick(src), nil
}

// Rule returns the rule with the given id.
func (g *Grammar) Rule(id int) (Rule, bool) {
	if id < 0 || id >= len(g.rules) {
		return Rule{}, false
	}
	return g.rules[id], true
}

// Rules returns all rules in file order.
func (g *Grammar) Rules() []Rule {
	rules := make([]Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// Len returns the number of rules.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// RulesFor returns the ids of the rules with the given lhs, in file order.
func (g *Grammar) RulesFor(lhs string) []int {
	return append([]int(nil), g.lhsRules[lhs]...)
}

// RulesWithRHS returns the ids of the rules whose rhs is exactly rhs.
func (g *Grammar) RulesWithRHS(rhs ...string) []int {
	v, found := g.rhsRules.Get(rhsKey(rhs))
	if !found {
		return nil
	}
	return append([]int(nil), v.([]int)...)
}

// RHSKeys returns the distinct rhs keys in sorted order.
func (g *Grammar) RHSKeys() []string {
	keys := make([]string, 0, g.rhsRules.Size())
	it := g.rhsRules.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(string))
	}
	return keys
}

// IsNonterminal reports whether sym is the lhs of some rule.
func (g *Grammar) IsNonterminal(sym string) bool {
	_, ok := g.lhsRules[sym]
	return ok
}

// Nonterminals returns all lhs symbols, sorted.
func (g *Grammar) Nonterminals() []string {
	names := make([]string, 0, len(g.lhsRules))
	for lhs := range g.lhsRules {
		names = append(names, lhs)
	}
	sort.Strings(names)
	return names
}

// TotalWeight returns the summed weight of the rules of lhs.
func (g *Grammar) TotalWeight(lhs string) int {
	return g.lhsWeight[lhs]
}

// GrandTotal returns the summed weight of all rules.
func (g *Grammar) GrandTotal() int {
	return g.grandTotal
}
