package render

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/revelaction/randsent/tree"
)

func sampleTree() *tree.Node {
	return &tree.Node{Label: "ROOT", Rule: 0, Children: []tree.Child{
		&tree.Node{Label: "S", Rule: 3, Children: []tree.Child{
			&tree.Node{Label: "NP", Rule: 5, Children: []tree.Child{tree.Leaf("the"), tree.Leaf("dog")}},
			tree.Ellipsis{},
		}},
		tree.Leaf("."),
	}}
}

func TestFlatten(t *testing.T) {
	got := Flatten(sampleTree())
	expected := []string{"the", "dog", "...", "."}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}

	if s := Sentence(sampleTree()); s != "the dog ... ." {
		t.Fatalf("expected %q, got %q", "the dog ... .", s)
	}
}

func TestFlattenSkipsRootLabel(t *testing.T) {
	n := &tree.Node{Label: "ROOT", Children: []tree.Child{}}
	if got := Flatten(n); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestBracketed(t *testing.T) {
	expected := "(ROOT (S (NP the dog) ...) .)"
	if got := Bracketed(sampleTree()); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestIndented(t *testing.T) {
	expected := "(ROOT\n  (S\n    (NP\n      the\n      dog)\n    ...)\n  .)"
	if got := Indented(sampleTree()); got != expected {
		t.Fatalf("expected\n%s\ngot\n%s", expected, got)
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	if err := r.Render(sampleTree()); err != nil {
		t.Fatal(err)
	}

	r.Format = FormatTree
	r.HasPrefix = true
	if err := r.Render(sampleTree()); err != nil {
		t.Fatal(err)
	}

	expected := "the dog ... .\n✍  2 (ROOT (S (NP the dog) ...) .)\n"
	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
}

func TestTextRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)
	r.Format = FormatTree
	r.HasColor = true

	n := &tree.Node{Label: "S", Children: []tree.Child{tree.Leaf("a")}}
	if err := r.Render(n); err != nil {
		t.Fatal(err)
	}

	expected := "(" + Yellow256 + "S" + Off + " a)\n"
	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
}

func TestNextFormat(t *testing.T) {
	r := NewTextRenderer(nil)
	got := []string{}
	for i := 0; i < 4; i++ {
		r.NextFormat()
		got = append(got, r.Format)
	}

	expected := []string{FormatTree, FormatIndent, FormatSentence, FormatTree}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestNew(t *testing.T) {
	for _, f := range SupportedFormats() {
		if _, err := New(f, &bytes.Buffer{}); err != nil {
			t.Errorf("format %s: unexpected error %v", f, err)
		}
	}

	if _, err := New("xml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unsupported format")
	}

	if IsSupported("xml") {
		t.Fatal("xml should not be supported")
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(sampleTree()); err != nil {
		t.Fatal(err)
	}

	var result struct {
		Sentence string `json:"sentence"`
		Tree     struct {
			Label    string            `json:"label"`
			Children []json.RawMessage `json:"children"`
		} `json:"tree"`
	}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if result.Sentence != "the dog ... ." {
		t.Errorf("expected sentence 'the dog ... .', got %q", result.Sentence)
	}

	if result.Tree.Label != "ROOT" {
		t.Errorf("expected label ROOT, got %q", result.Tree.Label)
	}

	if len(result.Tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(result.Tree.Children))
	}
}

func TestPipeRenderer(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	var out, errOut bytes.Buffer
	r, err := NewPipeRenderer("cat", &out, &errOut)
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Render(sampleTree()); err != nil {
		t.Fatal(err)
	}

	line := "(ROOT (S (NP the dog) ...) .)"
	expected := line + "\n" + line + "\n"
	if out.String() != expected {
		t.Fatalf("expected %q, got %q", expected, out.String())
	}
}

func TestPipeRendererErrors(t *testing.T) {
	if _, err := NewPipeRenderer("   ", nil, nil); err == nil {
		t.Fatal("expected error for empty command")
	}

	var out bytes.Buffer
	r, _ := NewPipeRenderer("randsent-no-such-printer", &out, &out)
	err := r.Render(sampleTree())
	if err == nil || !strings.Contains(err.Error(), "randsent-no-such-printer") {
		t.Fatalf("expected error naming the command, got %v", err)
	}
}
