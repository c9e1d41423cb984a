// Copyright © 2026 The linthook authors

package trace

import (
	"context"

	"go.opencensus.io/trace"

	"github.com/luthersystems/linthook/hook"
	"github.com/luthersystems/linthook/nodeutil"
)

// NewOpenCensusAnnotator returns a hook equivalent to h that records every
// rewrite as an opencensus span annotated with the invocation's source
// position.
func NewOpenCensusAnnotator(parent context.Context, h *hook.Hook) *hook.Hook {
	return &hook.Hook{
		Name: h.Name,
		Doc:  h.Doc,
		Rewrite: func(in hook.Input) (hook.Result, error) {
			_, span := trace.StartSpan(parent, h.Name)
			defer span.End()
			if in.Node != nil {
				if loc := nodeutil.SourceOf(in.Node).Source; loc != nil {
					span.Annotate([]trace.Attribute{
						trace.StringAttribute("file", loc.File),
						trace.Int64Attribute("line", int64(loc.Line)),
					}, "source")
				}
			}
			return h.Rewrite(in)
		},
	}
}
