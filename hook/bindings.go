// Copyright © 2026 The linthook authors

package hook

import (
	"fmt"

	"github.com/luthersystems/linthook/node"
	"github.com/luthersystems/linthook/nodeutil"
)

// FixedBindings returns the rewrite for macros declaring up to n binding
// names in a leading vector:
//
//	(m [b1 ... bk] body...)   =>   (let [b1 nil ... bn nil] body...)
//
// The macro binds the names internally at runtime, so the rewrite binds
// each to an inert value.  When fewer than n names are supplied the missing
// positions are padded with the ignored placeholder, so arity mismatches
// never fail the rewrite — they simply produce fewer used bindings.
func FixedBindings(n int) *Hook {
	name := fmt.Sprintf("fixed-bindings-%d", n)
	return &Hook{
		Name: name,
		Doc:  fmt.Sprintf("Rewrite a macro declaring up to %d names in a binding vector as a let binding each name to nil.", n),
		Rewrite: func(in Input) (Result, error) {
			inv, err := invocation(name, in)
			if err != nil {
				return Result{}, err
			}
			vec, err := bindingVector(name, inv)
			if err != nil {
				return Result{}, err
			}
			pairs := make([]*node.Node, 0, 2*n)
			for i := 0; i < n; i++ {
				bind := ignored()
				if i < len(vec.Cells) {
					bind = vec.Cells[i]
				}
				pairs = append(pairs, bind, node.Nil())
			}
			out := replacement(inv, letForm(node.Vector(pairs...), nodeutil.Args(inv, 1))...)
			return Result{Node: out}, nil
		},
	}
}

// TopLevelBindings returns the rewrite for macros whose first n arguments
// are binding names appearing directly as children, without a wrapping
// vector:
//
//	(m x y body...)   =>   (let [x nil y nil] body...)
//
// Missing trailing names are padded with the ignored placeholder.
func TopLevelBindings(n int) *Hook {
	name := fmt.Sprintf("top-level-bindings-%d", n)
	return &Hook{
		Name: name,
		Doc:  fmt.Sprintf("Rewrite a macro taking up to %d binding names as direct arguments into a let binding each name to nil.", n),
		Rewrite: func(in Input) (Result, error) {
			inv, err := invocation(name, in)
			if err != nil {
				return Result{}, err
			}
			pairs := make([]*node.Node, 0, 2*n)
			supplied := nodeutil.ArgCount(inv)
			for i := 0; i < n; i++ {
				bind := ignored()
				if i < supplied {
					bind = nodeutil.Arg(inv, i)
				}
				pairs = append(pairs, bind, node.Nil())
			}
			out := replacement(inv, letForm(node.Vector(pairs...), nodeutil.Args(inv, n))...)
			return Result{Node: out}, nil
		},
	}
}

// SingleBinding rewrites macros binding one name with an optional value
// expression:
//
//	(m [b] body...)     =>   (let [b nil] body...)
//	(m [b v] body...)   =>   (let [b v] body...)
//
// An explicit value expression is preserved exactly so the host still lints
// it; only an omitted value is replaced with an inert placeholder.
var SingleBinding = &Hook{
	Name: "single-binding",
	Doc:  "Rewrite a macro binding one name with an optional value into a let, preserving an explicit value expression.",
	Rewrite: func(in Input) (Result, error) {
		const name = "single-binding"
		inv, err := invocation(name, in)
		if err != nil {
			return Result{}, err
		}
		vec, err := bindingVector(name, inv)
		if err != nil {
			return Result{}, err
		}
		if len(vec.Cells) == 0 || len(vec.Cells) > 2 {
			return Result{}, fmt.Errorf("%s: expected [binding value?], got %d elements", name, len(vec.Cells))
		}
		value := node.Nil()
		if len(vec.Cells) == 2 {
			value = vec.Cells[1]
		}
		bindings := node.Vector(vec.Cells[0], value)
		out := replacement(inv, letForm(bindings, nodeutil.Args(inv, 1))...)
		return Result{Node: out}, nil
	},
}

// PairBindings rewrites macros taking a vector of binding/value pairs where
// only the final value may be omitted:
//
//	(m [b1 v1 ... bn vn?] body...)   =>   (let [b1 v1 ... bn vn-or-nil] body...)
var PairBindings = &Hook{
	Name: "pair-bindings",
	Doc:  "Rewrite a macro taking binding/value pairs, defaulting an omitted final value to nil.",
	Rewrite: func(in Input) (Result, error) {
		const name = "pair-bindings"
		inv, err := invocation(name, in)
		if err != nil {
			return Result{}, err
		}
		vec, err := bindingVector(name, inv)
		if err != nil {
			return Result{}, err
		}
		pairs := make([]*node.Node, 0, len(vec.Cells)+1)
		pairs = append(pairs, vec.Cells...)
		if len(pairs)%2 != 0 {
			pairs = append(pairs, node.Nil())
		}
		out := replacement(inv, letForm(node.Vector(pairs...), nodeutil.Args(inv, 1))...)
		return Result{Node: out}, nil
	},
}

// VectorHeadBinding rewrites macros whose binding vector names one binding
// followed by arbitrary configuration the linter should not see:
//
//	(m [x & rest] body...)   =>   (let [x nil] body...)
//
// Only the first element of the vector becomes a binding.
var VectorHeadBinding = &Hook{
	Name: "vector-head-binding",
	Doc:  "Rewrite a macro binding the first element of its argument vector, ignoring the remaining elements.",
	Rewrite: func(in Input) (Result, error) {
		const name = "vector-head-binding"
		inv, err := invocation(name, in)
		if err != nil {
			return Result{}, err
		}
		vec, err := bindingVector(name, inv)
		if err != nil {
			return Result{}, err
		}
		if len(vec.Cells) == 0 {
			return Result{}, fmt.Errorf("%s: binding vector is empty", name)
		}
		bindings := node.Vector(vec.Cells[0], node.Nil())
		out := replacement(inv, letForm(bindings, nodeutil.Args(inv, 1))...)
		return Result{Node: out}, nil
	},
}

// bindingVector returns the mandatory binding vector in argument position
// zero.  A missing or non-vector argument is a malformed invocation.
func bindingVector(name string, inv *node.Node) (*node.Node, error) {
	vec := nodeutil.Arg(inv, 0)
	if vec == nil || vec.Type != node.NVector {
		return nil, fmt.Errorf("%s: expected a binding vector, got %s", name, argType(vec))
	}
	return vec, nil
}

func argType(v *node.Node) string {
	if v == nil {
		return "nothing"
	}
	return v.Type.String()
}
