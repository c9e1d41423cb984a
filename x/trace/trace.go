// Copyright © 2026 The linthook authors

// Package trace wraps hooks with development-time instrumentation.
//
// Nothing in this package alters a hook's result: every wrapper invokes
// the underlying rewrite and returns whatever it returned.  Wrappers are
// interactive and observability aids only and must not appear on
// production code paths.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/luthersystems/linthook/hook"
	"github.com/luthersystems/linthook/node"
)

const renderWidth = 72

// Wrap returns a hook equivalent to h that prints a rendering of every
// rewrite's input and output to w.  Useful when developing a hook against
// sample invocations.
func Wrap(h *hook.Hook, w io.Writer) *hook.Hook {
	return &hook.Hook{
		Name: h.Name,
		Doc:  h.Doc,
		Rewrite: func(in hook.Input) (hook.Result, error) {
			fmt.Fprintf(w, "--> %s\n%s\n", h.Name, render(in.Node)) //nolint:errcheck // best-effort output to writer
			out, err := h.Rewrite(in)
			if err != nil {
				fmt.Fprintf(w, "<-- %s error: %v\n", h.Name, err) //nolint:errcheck // best-effort output to writer
				return out, err
			}
			fmt.Fprintf(w, "<-- %s\n%s\n", h.Name, render(out.Node)) //nolint:errcheck // best-effort output to writer
			return out, nil
		},
	}
}

func render(n *node.Node) string {
	if n == nil {
		return indent.String("<none>", 2)
	}
	s := indent.String(wordwrap.String(n.Sexpr(), renderWidth), 2)
	return strings.TrimSuffix(s, "\n")
}
