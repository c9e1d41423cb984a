// Copyright © 2026 The linthook authors

package trace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/luthersystems/linthook/hook"
	"github.com/luthersystems/linthook/node"
	"github.com/luthersystems/linthook/nodeutil"
)

const (
	// ContextOpenTelemetryTracerKey looks up a parent tracer name from a
	// context key.
	ContextOpenTelemetryTracerKey = "otelParentTracer"
)

// NewOpenTelemetryAnnotator returns a hook equivalent to h that records
// every rewrite as a span under the tracer configured on parent.  The span
// carries code attributes locating the original invocation so traces can
// be mapped back to source.
func NewOpenTelemetryAnnotator(parent context.Context, h *hook.Hook) *hook.Hook {
	return &hook.Hook{
		Name: h.Name,
		Doc:  h.Doc,
		Rewrite: func(in hook.Input) (hook.Result, error) {
			_, span := contextTracer(parent).Start(parent, h.Name)
			defer span.End()
			addCodeAttributes(span, h.Name, in.Node)
			out, err := h.Rewrite(in)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return out, err
		},
	}
}

func contextTracer(ctx context.Context) trace.Tracer {
	tracerName, ok := ctx.Value(ContextOpenTelemetryTracerKey).(string)
	if !ok {
		tracerName = "linthook"
	}
	return otel.GetTracerProvider().Tracer(tracerName)
}

func addCodeAttributes(span trace.Span, name string, n *node.Node) {
	attrs := []attribute.KeyValue{
		semconv.CodeFunction(name),
	}
	if n != nil {
		if loc := nodeutil.SourceOf(n).Source; loc != nil {
			attrs = append(attrs,
				semconv.CodeFilepath(loc.File),
				semconv.CodeLineNumber(loc.Line),
				semconv.CodeColumn(loc.Col),
			)
		}
	}
	span.SetAttributes(attrs...)
}
