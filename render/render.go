// Package render formats derivation trees for output.
package render

import (
	"fmt"
	"io"

	"github.com/revelaction/randsent/tree"
)

const (
	FormatSentence = "sentence"
	FormatTree     = "tree"
	FormatIndent   = "indent"
	FormatJSON     = "json"

	Defaultformat = FormatSentence
)

var (
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
)

func SupportedFormats() []string {
	return []string{FormatSentence, FormatTree, FormatIndent, FormatJSON}
}

// IsSupported reports whether format is one of SupportedFormats.
func IsSupported(format string) bool {
	for _, f := range SupportedFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// Renderer writes one generated tree.
type Renderer interface {
	Render(n *tree.Node) error
}

// New returns the Renderer for format writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case FormatJSON:
		return NewJSONRenderer(w), nil
	case FormatSentence, FormatTree, FormatIndent:
		r := NewTextRenderer(w)
		r.Format = format
		return r, nil
	}

	return nil, fmt.Errorf("unsupported format %q", format)
}

// TextRenderer writes trees as plain text lines.
type TextRenderer struct {
	W io.Writer

	// HasColor colors the node labels of tree formats
	HasColor bool

	// HasPrefix prefixes every output with its sequence number
	HasPrefix bool

	// Format is one of sentence, tree or indent
	Format string

	count int
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w, Format: Defaultformat}
}

func (r *TextRenderer) Render(n *tree.Node) error {
	r.count++

	var text string
	switch r.Format {
	case FormatTree:
		text = bracketed(n, r.label)
	case FormatIndent:
		text = indented(n, 0, r.label)
	default:
		text = Sentence(n)
	}

	prefix := ""
	if r.HasPrefix {
		prefix = fmt.Sprintf("✍  %d ", r.count)
	}

	_, err := fmt.Fprintf(r.W, "%s%s\n", prefix, text)
	return err
}

func (r *TextRenderer) label(l string) string {
	if !r.HasColor {
		return l
	}
	return Yellow256 + l + Off
}

// NextFormat cycles through the text formats.
func (r *TextRenderer) NextFormat() {
	supported := []string{FormatSentence, FormatTree, FormatIndent}
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}

	r.Format = supported[0]
}

func (r *TextRenderer) NextPrefix() {
	r.HasPrefix = !r.HasPrefix
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
