// Copyright © 2026 The linthook authors

// Package nodeutil provides shared tree walking utilities for syntax nodes.
//
// These helpers are used by the hook and meta packages for traversing and
// destructuring macro invocations.
package nodeutil

import "github.com/luthersystems/linthook/node"

// Walk calls fn for every node in the tree, depth-first.
// parent is nil for the root.
func Walk(root *node.Node, fn func(n *node.Node, parent *node.Node, depth int)) {
	walkNode(root, nil, 0, fn)
}

func walkNode(n *node.Node, parent *node.Node, depth int, fn func(*node.Node, *node.Node, int)) {
	if n == nil {
		return
	}
	fn(n, parent, depth)
	for _, child := range n.Cells {
		walkNode(child, n, depth+1, fn)
	}
}

// HeadSymbol returns the symbol name at the head of a list node, or "".
func HeadSymbol(list *node.Node) string {
	if list.Type != node.NList || len(list.Cells) == 0 {
		return ""
	}
	head := list.Cells[0]
	if head.Type == node.NSymbol {
		return head.Str
	}
	return ""
}

// ArgCount returns the number of arguments in a macro invocation
// (excluding the head).
func ArgCount(list *node.Node) int {
	if len(list.Cells) <= 1 {
		return 0
	}
	return len(list.Cells) - 1
}

// Arg returns the i-th argument of a macro invocation (Cells[i+1]), or nil
// when fewer arguments were supplied.
func Arg(list *node.Node, i int) *node.Node {
	if i < 0 || i+1 >= len(list.Cells) {
		return nil
	}
	return list.Cells[i+1]
}

// Args returns the arguments of a macro invocation starting at index i.
// The returned slice shares backing storage with the invocation.
func Args(list *node.Node, i int) []*node.Node {
	if i < 0 || i+1 >= len(list.Cells) {
		return nil
	}
	return list.Cells[i+1:]
}

// SourceOf returns the best source-carrying node for n.
// Prefers the node's own source, falls back to first child's source.
func SourceOf(n *node.Node) *node.Node {
	if n.Source != nil && n.Source.Line > 0 {
		return n
	}
	if len(n.Cells) > 0 && n.Cells[0].Source != nil {
		return n.Cells[0]
	}
	return n
}
