// Copyright © 2026 The linthook authors

package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luthersystems/linthook/token"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, NSymbol, Symbol("foo").Type)
	assert.Equal(t, "foo", Symbol("foo").Str)
	assert.Equal(t, NKeyword, Keyword("bar").Type)
	assert.Equal(t, NString, String("s").Type)
	assert.Equal(t, NInt, Int(1).Type)
	assert.Equal(t, 1, Int(1).Int)
	assert.Equal(t, NFloat, Float(1.5).Type)
	assert.Equal(t, NBool, Bool(true).Type)
	assert.Equal(t, NNil, Nil().Type)
	assert.Equal(t, NList, List().Type)
	assert.Equal(t, NVector, Vector().Type)
	assert.Equal(t, NMap, Map().Type)
	assert.Equal(t, NSet, Set().Type)
}

func TestIsToken(t *testing.T) {
	assert.True(t, Symbol("a").IsToken())
	assert.True(t, Keyword("a").IsToken())
	assert.True(t, Nil().IsToken())
	assert.False(t, List(Symbol("a")).IsToken())
	assert.False(t, Vector().IsToken())
}

func TestIsCollection(t *testing.T) {
	assert.True(t, List().IsCollection())
	assert.True(t, Map().IsCollection())
	assert.True(t, Set().IsCollection())
	assert.False(t, Symbol("a").IsCollection())
}

func TestLen(t *testing.T) {
	assert.Equal(t, -1, Symbol("a").Len())
	assert.Equal(t, 0, List().Len())
	assert.Equal(t, 2, Vector(Int(1), Int(2)).Len())
}

func TestEqual_Structural(t *testing.T) {
	a := List(Symbol("f"), Int(1), Vector(Keyword("k")))
	b := List(Symbol("f"), Int(1), Vector(Keyword("k")))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(List(Symbol("f"), Int(2), Vector(Keyword("k")))))
	assert.False(t, a.Equal(Vector(Symbol("f"), Int(1), Vector(Keyword("k")))))
}

// Two nodes with identical structure but different metadata are still the
// same form.
func TestEqual_IgnoresMeta(t *testing.T) {
	a := Symbol("f")
	b := a.WithMetaKey("k", Int(1))
	assert.True(t, a.Equal(b))
}

func TestEqual_IgnoresSource(t *testing.T) {
	a := Symbol("f")
	b := Symbol("f")
	b.Source = &token.Location{File: "x.clj", Line: 3}
	assert.True(t, a.Equal(b))
}

func TestCopy_Deep(t *testing.T) {
	orig := List(Symbol("f"), Vector(Int(1)))
	cp := orig.Copy()
	require.True(t, orig.Equal(cp))
	cp.Cells[1].Cells[0] = Int(2)
	assert.Equal(t, 1, orig.Cells[1].Cells[0].Int)
}

func TestWithMetaKey_Immutable(t *testing.T) {
	orig := Symbol("f")
	annotated := orig.WithMetaKey("k", Int(1))

	assert.Nil(t, orig.Meta)
	v, ok := annotated.MetaGet("k")
	require.True(t, ok)
	assert.Equal(t, 1, v.Int)
}

func TestWithMetaKey_PreservesOtherKeys(t *testing.T) {
	a := Symbol("f").WithMetaKey("k1", Int(1))
	b := a.WithMetaKey("k2", Int(2))

	v1, ok := b.MetaGet("k1")
	require.True(t, ok)
	assert.Equal(t, 1, v1.Int)
	_, ok = a.MetaGet("k2")
	assert.False(t, ok)
}

func TestWithMeta_Replaces(t *testing.T) {
	a := Symbol("f").WithMetaKey("k1", Int(1))
	b := a.WithMeta(map[string]*Node{"k2": Int(2)})

	_, ok := b.MetaGet("k1")
	assert.False(t, ok)
	_, ok = b.MetaGet("k2")
	assert.True(t, ok)
}

func TestWithMetaFrom(t *testing.T) {
	src := Symbol("m").WithMetaKey("k", Int(1))
	src.Source = &token.Location{File: "x.clj", Line: 5, Col: 2}

	dst := List(Symbol("let")).WithMetaFrom(src)
	v, ok := dst.MetaGet("k")
	require.True(t, ok)
	assert.Equal(t, 1, v.Int)
	assert.Equal(t, "x.clj:5:2", dst.Source.String())
}

func TestMetaGet_Absent(t *testing.T) {
	_, ok := Symbol("f").MetaGet("k")
	assert.False(t, ok)
}
