package stat

import (
	"github.com/revelaction/randsent/grammar"
	"github.com/revelaction/randsent/render"
	"github.com/revelaction/randsent/tree"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumExpansions         int
	NumTruncated          int
	TokensPerSentenceMean float64
	TokensPerSentenceDis  map[int]int

	// RuleUsage counts how often each rule id was applied
	RuleUsage map[int]int
}

// RuleFrequency compares how often a rule was chosen for its lhs with its
// probability.
type RuleFrequency struct {
	Rule     grammar.Rule
	Count    int
	Observed float64
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, RuleUsage: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds one generated tree to the stats.
func (h *Handler) Aggregate(n *tree.Node) {
	tokens := render.Flatten(n)

	h.stats.NumSentences++
	h.stats.NumTokens += len(tokens)
	h.stats.TokensPerSentenceDis[len(tokens)]++

	if n.Truncated() {
		h.stats.NumTruncated++
	}

	for _, id := range n.Rules() {
		h.stats.RuleUsage[id]++
		h.stats.NumExpansions++
	}

	h.stats.TokensPerSentenceMean = float64(h.stats.NumTokens) / float64(h.stats.NumSentences)
}

// Frequencies returns the observed frequency of every rule of g, in rule id
// order. The frequency of a rule is its count divided by the count of all
// rules sharing its lhs; it is 0 for an lhs that was never expanded.
func (h *Handler) Frequencies(g *grammar.Grammar) []RuleFrequency {
	lhsCount := map[string]int{}
	for _, r := range g.Rules() {
		lhsCount[r.Lhs] += h.stats.RuleUsage[r.Id]
	}

	freqs := []RuleFrequency{}
	for _, r := range g.Rules() {
		f := RuleFrequency{Rule: r, Count: h.stats.RuleUsage[r.Id]}
		if total := lhsCount[r.Lhs]; total > 0 {
			f.Observed = float64(f.Count) / float64(total)
		}
		freqs = append(freqs, f)
	}

	return freqs
}
