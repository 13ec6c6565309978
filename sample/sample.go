// Package sample draws indices with probability proportional to integer
// weights.
package sample

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Source is the random source a Table draws from. *rand.Rand satisfies it.
type Source interface {
	Int63n(n int64) int64
}

// Table is a prefix-sum table over the weights of a set of ids.
type Table struct {
	ids []int

	// prefix[i] is the sum of weights[0..i]
	prefix []int64
}

var (
	ErrEmpty    = errors.New("sample: no weights")
	ErrOverflow = errors.New("sample: weight total overflows int64")
)

// NewTable builds a Table that picks ids[i] with probability
// weights[i]/sum(weights). All weights must be positive.
func NewTable(ids []int, weights []int) (*Table, error) {
	if len(ids) == 0 {
		return nil, ErrEmpty
	}

	if len(ids) != len(weights) {
		return nil, fmt.Errorf("sample: %d ids but %d weights", len(ids), len(weights))
	}

	t := &Table{
		ids:    make([]int, len(ids)),
		prefix: make([]int64, len(weights)),
	}
	copy(t.ids, ids)

	var total int64
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("sample: weight %d of id %d is not positive", w, ids[i])
		}
		if int64(w) > math.MaxInt64-total {
			return nil, ErrOverflow
		}
		total += int64(w)
		t.prefix[i] = total
	}

	return t, nil
}

// Len returns the number of ids in the table.
func (t *Table) Len() int {
	return len(t.ids)
}

// Total returns the sum of all weights.
func (t *Table) Total() int64 {
	return t.prefix[len(t.prefix)-1]
}

// Pick draws one id. A single-entry table returns its id without consuming
// randomness.
func (t *Table) Pick(src Source) int {
	if len(t.ids) == 1 {
		return t.ids[0]
	}

	r := src.Int63n(t.Total())

	// first i with prefix[i] > r
	i := sort.Search(len(t.prefix), func(i int) bool {
		return t.prefix[i] > r
	})

	return t.ids[i]
}
