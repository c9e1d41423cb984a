// Copyright © 2026 The linthook authors

package hook

import (
	"fmt"

	"github.com/luthersystems/linthook/meta"
	"github.com/luthersystems/linthook/node"
	"github.com/luthersystems/linthook/nodeutil"
)

// Linter names attached by the Sequence rewrite.  These spellings are a
// contract with the host's diagnostic configuration.
const (
	// LinterRedundantDo is the host check flagging a do form with a single
	// body expression.
	LinterRedundantDo = "redundant-do"
	// LinterUnusedValue is the host check flagging an expression whose
	// value is discarded.
	LinterUnusedValue = "unused-value"
)

// IgnoreFirstArg rewrites macros whose first argument is a literal or
// configuration value not meant to be lint-checked:
//
//	(m ignored body...)   =>   (do body...)
//
// The first argument is dropped from analysis entirely.
var IgnoreFirstArg = &Hook{
	Name: "ignore-first-arg",
	Doc:  "Rewrite a macro into a do of its body, dropping the first argument from analysis.",
	Rewrite: func(in Input) (Result, error) {
		const name = "ignore-first-arg"
		inv, err := invocation(name, in)
		if err != nil {
			return Result{}, err
		}
		if nodeutil.ArgCount(inv) < 1 {
			return Result{}, fmt.Errorf("%s: expected an argument to drop", name)
		}
		out := replacement(inv, doForm(node.Symbol("do"), nodeutil.Args(inv, 1))...)
		return Result{Node: out}, nil
	},
}

// UseFirstArgs returns the rewrite for macros whose first n argument
// expressions must be treated as used and evaluated without naming them
// meaningfully:
//
//	(m a body...)   =>   (let [g1 a] body...)
//
// Each synthesized binding name is a fresh gensym so sibling bindings in
// the same let never collide.  A missing argument position is padded with a
// gensym bound to an inert value.
func UseFirstArgs(n int) *Hook {
	name := fmt.Sprintf("use-first-args-%d", n)
	return &Hook{
		Name: name,
		Doc:  fmt.Sprintf("Rewrite a macro so its first %d argument expressions are treated as used, binding each to a fresh name.", n),
		Rewrite: func(in Input) (Result, error) {
			inv, err := invocation(name, in)
			if err != nil {
				return Result{}, err
			}
			pairs := make([]*node.Node, 0, 2*n)
			supplied := nodeutil.ArgCount(inv)
			for i := 0; i < n; i++ {
				value := node.Nil()
				if i < supplied {
					value = nodeutil.Arg(inv, i)
				}
				pairs = append(pairs, gensym(), value)
			}
			out := replacement(inv, letForm(node.Vector(pairs...), nodeutil.Args(inv, n))...)
			return Result{Node: out}, nil
		},
	}
}

// Sequence is the catch-all rewrite for macros whose arguments are
// evaluated in order for side effect only:
//
//	(m a b c)   =>   (do a b c)
//
// The synthesized do head suppresses the redundant-do check (a one-form
// body is normal here) and every argument suppresses the unused-value
// check, unioned with any suppressions the argument already carried.
var Sequence = &Hook{
	Name: "sequence",
	Doc:  "Rewrite a macro into a do of its arguments, suppressing redundant-do and unused-value checks on the synthesized forms.",
	Rewrite: func(in Input) (Result, error) {
		const name = "sequence"
		inv, err := invocation(name, in)
		if err != nil {
			return Result{}, err
		}
		head := meta.AddSuppression(node.Symbol("do"), LinterRedundantDo)
		args := nodeutil.Args(inv, 0)
		body := make([]*node.Node, len(args))
		for i, arg := range args {
			body[i] = meta.AddSuppression(arg, LinterUnusedValue)
		}
		out := replacement(inv, doForm(head, body)...)
		return Result{Node: out}, nil
	},
}
