/*
Package grammar loads a probabilistic context-free grammar from a weighted
rule file.

Each non-blank line of a grammar file holds one rule:

	count<TAB>lhs<TAB>rhs

count is a positive integer weight, lhs a symbol and rhs a whitespace
separated list of symbols. Everything from '#' to the end of a line is a
comment. A symbol is a nonterminal iff it is the lhs of some rule; every
other symbol is a terminal, except the epsilon marker <u>, which stands for
the empty production.

The probability of a rule is its weight divided by the summed weight of all
rules sharing its lhs.

Loading traces to gtrace.CoreTracer, which clients have to set up.
*/
package grammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
