// Copyright © 2026 The linthook authors

package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHooks_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, h := range DefaultHooks() {
		require.NotEmpty(t, h.Name)
		require.NotNil(t, h.Rewrite, h.Name)
		assert.False(t, seen[h.Name], "duplicate hook name: %s", h.Name)
		seen[h.Name] = true
	}
}

func TestDefaultHooks_Docs(t *testing.T) {
	for _, h := range DefaultHooks() {
		assert.NotEmpty(t, h.Doc, h.Name)
	}
}

func TestLookup(t *testing.T) {
	h := Lookup("fixed-bindings-3")
	require.NotNil(t, h)
	assert.Equal(t, "fixed-bindings-3", h.Name)

	assert.Nil(t, Lookup("no-such-hook"))
}

func TestLookup_AllRegistered(t *testing.T) {
	names := []string{
		"single-binding",
		"pair-bindings",
		"model-binding",
		"vector-head-binding",
		"ignore-first-arg",
		"sequence",
		"fixed-bindings-1",
		"fixed-bindings-7",
		"top-level-bindings-1",
		"top-level-bindings-2",
		"use-first-args-1",
		"use-first-args-2",
	}
	for _, name := range names {
		assert.NotNil(t, Lookup(name), name)
	}
}
