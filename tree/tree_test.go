package tree

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleTree() *Node {
	return &Node{Label: "ROOT", Rule: 0, Children: []Child{
		&Node{Label: "S", Rule: 3, Children: []Child{
			&Node{Label: "NP", Rule: 5, Children: []Child{Leaf("the"), Leaf("dog")}},
			Ellipsis{},
		}},
		Leaf("."),
	}}
}

func TestRules(t *testing.T) {
	got := sampleTree().Rules()
	if !reflect.DeepEqual(got, []int{0, 3, 5}) {
		t.Fatalf("expected [0 3 5], got %v", got)
	}
}

func TestTruncated(t *testing.T) {
	if !sampleTree().Truncated() {
		t.Fatal("expected truncated tree")
	}

	full := &Node{Label: "S", Children: []Child{Leaf("a")}}
	if full.Truncated() {
		t.Fatal("expected complete tree")
	}
}

func TestSize(t *testing.T) {
	if got := sampleTree().Size(); got != 3 {
		t.Fatalf("expected 3 nodes, got %d", got)
	}
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(sampleTree())
	if err != nil {
		t.Fatal(err)
	}

	expected := `{"label":"ROOT","rule":0,"children":[{"label":"S","rule":3,"children":[{"label":"NP","rule":5,"children":["the","dog"]},"..."]},"."]}`
	if string(b) != expected {
		t.Fatalf("expected %s, got %s", expected, b)
	}
}
