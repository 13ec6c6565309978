// Package tree holds derivation trees produced by expanding a grammar.
package tree

import "encoding/json"

// EllipsisToken is the output token of an Ellipsis.
const EllipsisToken = "..."

// Child is one of Leaf, *Node or Ellipsis.
type Child interface {
	isChild()
}

// Leaf is a terminal token, output verbatim.
type Leaf string

// Ellipsis stands for a nonterminal left unexpanded because the expansion
// budget ran out.
type Ellipsis struct{}

// Node is an expanded nonterminal.
type Node struct {
	// Label is the expanded lhs symbol
	Label string `json:"label"`

	// Rule is the id of the applied rule
	Rule int `json:"rule"`

	Children []Child `json:"children"`
}

func (Leaf) isChild()     {}
func (Ellipsis) isChild() {}
func (*Node) isChild()    {}

func (Ellipsis) MarshalJSON() ([]byte, error) {
	return json.Marshal(EllipsisToken)
}

// Walk calls fn for n and every descendant node, in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		if child, ok := c.(*Node); ok {
			child.Walk(fn)
		}
	}
}

// Rules returns the ids of the applied rules in pre-order.
func (n *Node) Rules() []int {
	var ids []int
	n.Walk(func(node *Node) {
		ids = append(ids, node.Rule)
	})
	return ids
}

// Truncated reports whether the tree holds an Ellipsis anywhere.
func (n *Node) Truncated() bool {
	truncated := false
	n.Walk(func(node *Node) {
		for _, c := range node.Children {
			if _, ok := c.(Ellipsis); ok {
				truncated = true
			}
		}
	})
	return truncated
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	size := 0
	n.Walk(func(*Node) { size++ })
	return size
}
