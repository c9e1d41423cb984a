// Copyright © 2026 The linthook authors

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/luthersystems/linthook/hook"
	"github.com/luthersystems/linthook/node"
	"github.com/luthersystems/linthook/token"
)

func setupExporter(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	t.Cleanup(func() {
		err := tp.Shutdown(context.Background())
		assert.NoError(t, err, "TracerProvider shutdown")
	})
	otel.SetTracerProvider(tp)
	return exporter
}

func TestNewOpenTelemetryAnnotator(t *testing.T) {
	exporter := setupExporter(t)

	h := hook.FixedBindings(1)
	annotated := NewOpenTelemetryAnnotator(context.Background(), h)

	head := node.Symbol("m")
	head.Source = &token.Location{File: "a.clj", Line: 9, Col: 1}
	inv := node.List(head, node.Vector(node.Symbol("x")))

	want, err := h.Rewrite(hook.Input{Node: inv})
	require.NoError(t, err)
	got, err := annotated.Rewrite(hook.Input{Node: inv})
	require.NoError(t, err)
	assert.True(t, want.Node.Equal(got.Node))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "fixed-bindings-1", spans[0].Name)
}

func TestNewOpenTelemetryAnnotator_RecordsError(t *testing.T) {
	exporter := setupExporter(t)

	h := hook.FixedBindings(1)
	annotated := NewOpenTelemetryAnnotator(context.Background(), h)

	_, err := annotated.Rewrite(hook.Input{Node: node.List(node.Symbol("m"))})
	assert.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}

func TestNewOpenCensusAnnotator_Transparent(t *testing.T) {
	h := hook.Sequence
	annotated := NewOpenCensusAnnotator(context.Background(), h)

	inv := node.List(node.Symbol("m"), node.Symbol("a"))
	want, err := h.Rewrite(hook.Input{Node: inv})
	require.NoError(t, err)
	got, err := annotated.Rewrite(hook.Input{Node: inv})
	require.NoError(t, err)
	assert.True(t, want.Node.Equal(got.Node))
}
