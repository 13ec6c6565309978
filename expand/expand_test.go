package expand

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/revelaction/randsent/grammar"
	"github.com/revelaction/randsent/render"
	"github.com/revelaction/randsent/tree"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func load(t *testing.T, text string) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Load(strings.NewReader(text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func loadFile(t *testing.T, path string) *grammar.Grammar {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	g, err := grammar.Load(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

const deterministic = "1\tROOT\tS .\n1\tS\tNP VP\n1\tNP\tDet Noun\n1\tDet\tthe\n1\tNoun\tdog\n1\tVP\tbarked\n"

func TestGenerateDeterministic(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := load(t, deterministic)

	expected := &tree.Node{Label: "ROOT", Rule: 0, Children: []tree.Child{
		&tree.Node{Label: "S", Rule: 1, Children: []tree.Child{
			&tree.Node{Label: "NP", Rule: 2, Children: []tree.Child{
				&tree.Node{Label: "Det", Rule: 3, Children: []tree.Child{tree.Leaf("the")}},
				&tree.Node{Label: "Noun", Rule: 4, Children: []tree.Child{tree.Leaf("dog")}},
			}},
			&tree.Node{Label: "VP", Rule: 5, Children: []tree.Child{tree.Leaf("barked")}},
		}},
		tree.Leaf("."),
	}}

	for _, seed := range []int64{1, 2, 99} {
		e := New(g, rand.New(rand.NewSource(seed)))
		n, err := e.Generate("ROOT", DefaultMaxExpansions)
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(n, expected) {
			t.Fatalf("seed %d: unexpected tree %s", seed, render.Bracketed(n))
		}
	}

	// single rule nonterminals never draw from the source
	n, err := New(g, nil).Generate("ROOT", DefaultMaxExpansions)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(n, expected) {
		t.Fatalf("nil source: unexpected tree %s", render.Bracketed(n))
	}
}

func TestGenerateBudgetOfOne(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := load(t, "1\tROOT\tS\n1\tS\tS and S\n")
	e := New(g, rand.New(rand.NewSource(1)))

	n, err := e.Generate("ROOT", 1)
	if err != nil {
		t.Fatal(err)
	}

	got := render.Flatten(n)
	if !reflect.DeepEqual(got, []string{tree.EllipsisToken}) {
		t.Fatalf("expected [%s], got %v", tree.EllipsisToken, got)
	}
}

func TestGenerateBudgetCountsStart(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := load(t, "1\tA\tB B B\n1\tB\tb\n")
	e := New(g, rand.New(rand.NewSource(1)))

	n, err := e.Generate("A", 2)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"b", "...", "..."}
	if got := render.Flatten(n); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestGenerateSkipsEpsilon(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := load(t, "1\tS\tA <u> B\n1\tA\ta\n1\tB\tb\n1\tE\t<u>\n")
	e := New(g, rand.New(rand.NewSource(1)))

	n, err := e.Generate("S", 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(n.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(n.Children))
	}

	if got := render.Flatten(n); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", got)
	}

	empty, err := e.Generate("E", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty.Children) != 0 {
		t.Fatalf("expected no children, got %d", len(empty.Children))
	}
}

func TestGenerateErrors(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := load(t, deterministic)
	e := New(g, rand.New(rand.NewSource(1)))

	_, err := e.Generate("dog", 10)
	if !errors.Is(err, ErrUnknownStart) {
		t.Fatalf("expected ErrUnknownStart, got %v", err)
	}

	if err.Error() != "dog: start symbol has no rules" {
		t.Fatalf("expected the start symbol in the error, got %q", err.Error())
	}

	if _, err := e.Generate("ROOT", 0); !errors.Is(err, ErrBudget) {
		t.Fatalf("expected ErrBudget, got %v", err)
	}
}

func TestGenerateSameSeedSameTree(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := loadFile(t, "testdata/grammar.gr")

	a := New(g, rand.New(rand.NewSource(7)))
	b := New(g, rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		ta, err := a.Generate("ROOT", 20)
		if err != nil {
			t.Fatal(err)
		}
		tb, err := b.Generate("ROOT", 20)
		if err != nil {
			t.Fatal(err)
		}

		if !reflect.DeepEqual(ta, tb) {
			t.Fatalf("sentence %d: trees differ: %s vs %s", i, render.Bracketed(ta), render.Bracketed(tb))
		}

		if !reflect.DeepEqual(render.Flatten(ta), render.Flatten(tb)) {
			t.Fatalf("sentence %d: flattened output differs", i)
		}
	}
}

func TestBudgetDoesNotLeakBetweenCalls(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := loadFile(t, "testdata/grammar.gr")
	e := New(g, rand.New(rand.NewSource(3)))

	for i := 0; i < 200; i++ {
		max := 1 + i%7
		n, err := e.Generate("ROOT", max)
		if err != nil {
			t.Fatal(err)
		}

		// every node is one expansion
		if n.Size() > max {
			t.Fatalf("sentence %d: %d expansions exceed budget %d", i, n.Size(), max)
		}
	}

	// a small budget before must not shrink the next one
	if _, err := e.Generate("ROOT", 1); err != nil {
		t.Fatal(err)
	}
	n, err := e.Generate("ROOT", DefaultMaxExpansions)
	if err != nil {
		t.Fatal(err)
	}
	if n.Size() < 2 {
		t.Fatalf("expected a full expansion, got %s", render.Bracketed(n))
	}
}

func TestRootFrequency(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := load(t, "3\tROOT\tyes\n1\tROOT\tno\n")
	e := New(g, rand.New(rand.NewSource(11)))

	const trials = 10000
	yes := 0
	for i := 0; i < trials; i++ {
		n, err := e.Generate("ROOT", 1)
		if err != nil {
			t.Fatal(err)
		}
		if n.Rule == 0 {
			yes++
		}
	}

	if freq := float64(yes) / trials; math.Abs(freq-0.75) > 0.025 {
		t.Fatalf("expected frequency near 0.75, got %.4f", freq)
	}
}

func TestConcurrentExpanders(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()

	g := loadFile(t, "testdata/grammar.gr")

	var wg sync.WaitGroup
	results := make([][]string, 4)
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			e := New(g, rand.New(rand.NewSource(5)))
			for i := 0; i < 20; i++ {
				n, err := e.Generate("ROOT", 30)
				if err != nil {
					t.Error(err)
					return
				}
				results[w] = append(results[w], render.Sentence(n))
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < 4; w++ {
		if !reflect.DeepEqual(results[0], results[w]) {
			t.Fatalf("worker %d diverged from worker 0", w)
		}
	}
}
