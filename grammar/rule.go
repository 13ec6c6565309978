package grammar

import (
	"fmt"
	"strings"
)

// Rule is a weighted production lhs -> rhs.
type Rule struct {
	Id     int
	Weight int
	Lhs    string
	Rhs    []Symbol

	// Probability is Weight divided by the total weight of Lhs
	Probability float64
}

// RhsKey returns the rhs symbols joined by single spaces.
func (r Rule) RhsKey() string {
	return rhsKey(r.rhsTexts())
}

func (r Rule) rhsTexts() []string {
	texts := make([]string, len(r.Rhs))
	for i, s := range r.Rhs {
		texts[i] = s.Text
	}
	return texts
}

// String formats the rule as aligned "id weight probability  lhs -> rhs"
// columns.
func (r Rule) String() string {
	return fmt.Sprintf("%6d %6d %8.4f  %s -> %s", r.Id, r.Weight, r.Probability, r.Lhs, r.RhsKey())
}

func rhsKey(texts []string) string {
	return strings.Join(texts, " ")
}
