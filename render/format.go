package render

import (
	"fmt"
	"strings"

	"github.com/revelaction/randsent/tree"
)

// Flatten returns the terminal tokens of n from left to right. The label of
// n itself is not part of the output.
func Flatten(n *tree.Node) []string {
	tokens := []string{}
	for _, c := range n.Children {
		switch c := c.(type) {
		case tree.Leaf:
			tokens = append(tokens, string(c))
		case tree.Ellipsis:
			tokens = append(tokens, tree.EllipsisToken)
		case *tree.Node:
			tokens = append(tokens, Flatten(c)...)
		}
	}
	return tokens
}

// Sentence returns the flattened tokens of n joined by spaces.
func Sentence(n *tree.Node) string {
	return strings.Join(Flatten(n), " ")
}

// Bracketed returns n in single line bracket notation:
//
//	(ROOT (S (NP the president) (VP ate)) .)
func Bracketed(n *tree.Node) string {
	return bracketed(n, func(label string) string { return label })
}

func bracketed(n *tree.Node, label func(string) string) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(label(n.Label))
	for _, c := range n.Children {
		b.WriteString(" ")
		switch c := c.(type) {
		case tree.Leaf:
			b.WriteString(string(c))
		case tree.Ellipsis:
			b.WriteString(tree.EllipsisToken)
		case *tree.Node:
			b.WriteString(bracketed(c, label))
		}
	}
	b.WriteString(")")
	return b.String()
}

// Indented returns n in bracket notation with one child per line, indented
// two spaces per level. Leaves of a node stay on separate lines too.
func Indented(n *tree.Node) string {
	return indented(n, 0, func(label string) string { return label })
}

func indented(n *tree.Node, level int, label func(string) string) string {
	prefix := strings.Repeat(" ", level*2)
	if level != 0 {
		prefix = "\n" + prefix
	}

	reprs := []string{}
	for _, c := range n.Children {
		childPrefix := "\n" + strings.Repeat(" ", (level+1)*2)
		switch c := c.(type) {
		case tree.Leaf:
			reprs = append(reprs, childPrefix+string(c))
		case tree.Ellipsis:
			reprs = append(reprs, childPrefix+tree.EllipsisToken)
		case *tree.Node:
			reprs = append(reprs, indented(c, level+1, label))
		}
	}

	return fmt.Sprintf("%s(%s%s)", prefix, label(n.Label), strings.Join(reprs, ""))
}
