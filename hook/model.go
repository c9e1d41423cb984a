// Copyright © 2026 The linthook authors

package hook

import (
	"fmt"

	"github.com/luthersystems/linthook/node"
	"github.com/luthersystems/linthook/nodeutil"
)

// ModelBinding rewrites macros that both name a model and create one
// working binding:
//
//	(m model-ref {binding value?} body...)
//	    =>   [[model-ref] (let [binding value-or-nil] body...)]
//
// The result is a two-element vector: the first element references the
// model so the host sees it used, and the second is the inner let.
//
// Metadata placement: the output carries the metadata of the first body
// form, not the macro-name token.  This matches the diagnostic-reporting
// expectations of the macro family this rewrite serves; alternate
// placements are plausible but unverified, so treat this as policy rather
// than something to re-derive.
var ModelBinding = &Hook{
	Name: "model-binding",
	Doc:  "Rewrite a macro naming a model and creating one binding into a vector of the model reference and an inner let.",
	Rewrite: func(in Input) (Result, error) {
		const name = "model-binding"
		inv, err := invocation(name, in)
		if err != nil {
			return Result{}, err
		}
		modelRef := nodeutil.Arg(inv, 0)
		if modelRef == nil {
			return Result{}, fmt.Errorf("%s: expected a model reference", name)
		}
		pair := nodeutil.Arg(inv, 1)
		if pair == nil || !pair.IsCollection() || len(pair.Cells) == 0 {
			return Result{}, fmt.Errorf("%s: expected a binding pair, got %s", name, argType(pair))
		}
		value := node.Nil()
		if len(pair.Cells) > 1 {
			value = pair.Cells[1]
		}
		body := nodeutil.Args(inv, 2)

		inner := node.List(letForm(node.Vector(pair.Cells[0], value), body)...)
		out := node.Vector(node.Vector(modelRef), inner)
		if len(body) > 0 {
			out = out.WithMetaFrom(body[0])
		}
		return Result{Node: out}, nil
	},
}
