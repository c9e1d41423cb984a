// Copyright © 2026 The linthook authors

package hook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/linthook/meta"
	"github.com/luthersystems/linthook/node"
)

func TestIgnoreFirstArg(t *testing.T) {
	inv := call("m", node.Keyword("config"), node.Int(1), node.Int(2))
	out := rewrite(t, IgnoreFirstArg, inv)
	assert.Equal(t, "(do 1 2)", out.Sexpr())
}

func TestIgnoreFirstArg_NoBody(t *testing.T) {
	inv := call("m", node.Keyword("config"))
	out := rewrite(t, IgnoreFirstArg, inv)
	assert.Equal(t, "(do)", out.Sexpr())
}

func TestIgnoreFirstArg_MissingArg(t *testing.T) {
	_, err := IgnoreFirstArg.Rewrite(Input{Node: call("m")})
	assert.Error(t, err)
}

func TestUseFirstArgs_One(t *testing.T) {
	expr := node.List(node.Symbol("side-effect"))
	inv := call("m", expr, node.Int(1))
	out := rewrite(t, UseFirstArgs(1), inv)

	require.Equal(t, 3, len(out.Cells))
	assert.Equal(t, "let", out.Cells[0].Str)
	bindings := out.Cells[1]
	require.Equal(t, 2, len(bindings.Cells))
	assert.True(t, strings.HasPrefix(bindings.Cells[0].Str, GensymPrefix))
	assert.True(t, bindings.Cells[1].Equal(expr))
	assert.Equal(t, 1, out.Cells[2].Int)
}

// Each synthesized binding name is fresh — sibling bindings in one let and
// bindings across separate rewrites never collide.
func TestUseFirstArgs_FreshNames(t *testing.T) {
	inv := call("m", node.Int(1), node.Int(2))
	out := rewrite(t, UseFirstArgs(2), inv)
	bindings := out.Cells[1]
	require.Equal(t, 4, len(bindings.Cells))
	first := bindings.Cells[0].Str
	second := bindings.Cells[2].Str
	assert.NotEqual(t, first, second)

	out2 := rewrite(t, UseFirstArgs(2), inv.Copy())
	assert.NotEqual(t, first, out2.Cells[1].Cells[0].Str)
}

func TestUseFirstArgs_PadsMissing(t *testing.T) {
	inv := call("m", node.Int(1))
	out := rewrite(t, UseFirstArgs(2), inv)
	bindings := out.Cells[1]
	require.Equal(t, 4, len(bindings.Cells))
	assert.Equal(t, 1, bindings.Cells[1].Int)
	assert.True(t, bindings.Cells[3].IsNil())
}

func TestSequence(t *testing.T) {
	inv := call("m", node.Symbol("a"), node.Symbol("b"), node.Symbol("c"))
	out := rewrite(t, Sequence, inv)

	require.Equal(t, 4, len(out.Cells))
	assert.Equal(t, "do", out.Cells[0].Str)

	s, ok := meta.ReadSuppressions(out.Cells[0])
	require.True(t, ok)
	assert.True(t, s.Contains(LinterRedundantDo))

	for _, arg := range out.Cells[1:] {
		s, ok := meta.ReadSuppressions(arg)
		require.True(t, ok)
		assert.True(t, s.Contains(LinterUnusedValue))
	}
}

// Pre-existing suppressions on an argument are preserved alongside the new
// one — union, not overwrite.
func TestSequence_PreservesExistingSuppressions(t *testing.T) {
	a := meta.AddSuppression(node.Symbol("a"), "custom-check")
	inv := call("m", a)
	out := rewrite(t, Sequence, inv)

	s, ok := meta.ReadSuppressions(out.Cells[1])
	require.True(t, ok)
	assert.True(t, s.Contains("custom-check"))
	assert.True(t, s.Contains(LinterUnusedValue))
}

func TestSequence_NoArgs(t *testing.T) {
	out := rewrite(t, Sequence, call("m"))
	require.Equal(t, 1, len(out.Cells))
	assert.Equal(t, "do", out.Cells[0].Str)
}

func TestSequence_InputArgsUnchanged(t *testing.T) {
	a := node.Symbol("a")
	inv := call("m", a)
	_ = rewrite(t, Sequence, inv)
	_, ok := meta.ReadSuppressions(a)
	assert.False(t, ok)
}
