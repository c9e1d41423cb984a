// Copyright © 2026 The linthook authors

// Package hook provides rewriting primitives for linter macro hooks.
//
// A hook intercepts a macro invocation parsed into a syntax tree and
// returns a replacement tree built from core forms (let, do) that the
// static-analysis host understands without special-casing the macro.  Each
// hook recognizes one invocation shape; the host looks hooks up by name
// from its macro configuration and calls Rewrite with the invocation node.
//
// Hooks are pure functions over immutable nodes: every rewrite constructs
// new nodes and leaves the input untouched, so the host may run hooks
// concurrently across independent forms without any locking.
package hook

import (
	"fmt"

	"github.com/luthersystems/linthook/node"
)

// Input wraps the macro invocation node delivered by the linter host.
type Input struct {
	// Node is the invocation: a list whose first cell is the macro name
	// symbol and whose remaining cells are the macro's argument forms.
	Node *node.Node
}

// Result wraps the replacement node returned to the host.  The host
// continues its analysis on Result.Node as if it were the original form.
type Result struct {
	Node *node.Node
}

// RewriteFunc transforms a macro invocation into a replacement form.  A
// non-nil error marks the invocation as malformed; the host reports it as a
// hook failure against the offending form and continues with the rest of
// the file.
type RewriteFunc func(in Input) (Result, error)

// Hook defines a single macro rewrite.
type Hook struct {
	// Name is a short identifier for this rewrite (e.g. "fixed-bindings-3").
	// The host's macro configuration maps macro names to hook names.
	Name string

	// Doc is a human-readable description.  The first line is a short
	// summary.
	Doc string

	// Rewrite performs the transformation.
	Rewrite RewriteFunc
}

// invocation validates that in wraps a non-empty list node and returns it.
func invocation(name string, in Input) (*node.Node, error) {
	inv := in.Node
	if inv == nil {
		return nil, fmt.Errorf("%s: no invocation node", name)
	}
	if inv.Type != node.NList || len(inv.Cells) == 0 {
		return nil, fmt.Errorf("%s: invocation is not a macro call: %s", name, inv.Type)
	}
	return inv, nil
}

// replacement builds the replacement list for an invocation.  The new node
// carries the metadata and source position of the macro-name token so that
// nested diagnostics attribute precisely instead of spanning the whole
// original form.
func replacement(inv *node.Node, cells ...*node.Node) *node.Node {
	return node.List(cells...).WithMetaFrom(inv.Cells[0])
}

// letForm assembles (let bindings body...) cells.
func letForm(bindings *node.Node, body []*node.Node) []*node.Node {
	cells := make([]*node.Node, 0, 2+len(body))
	cells = append(cells, node.Symbol("let"), bindings)
	cells = append(cells, body...)
	return cells
}

// doForm assembles (do body...) cells using the given head token.
func doForm(head *node.Node, body []*node.Node) []*node.Node {
	cells := make([]*node.Node, 0, 1+len(body))
	cells = append(cells, head)
	cells = append(cells, body...)
	return cells
}
