package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/randsent/tree"
)

// JSONRenderer writes each tree as one JSON object per line.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the tree together with its flattened sentence.
func (r *JSONRenderer) Render(n *tree.Node) error {
	out := struct {
		Sentence string     `json:"sentence"`
		Tree     *tree.Node `json:"tree"`
	}{
		Sentence: Sentence(n),
		Tree:     n,
	}
	return json.NewEncoder(r.W).Encode(out)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
