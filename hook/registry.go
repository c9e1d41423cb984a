// Copyright © 2026 The linthook authors

package hook

// DefaultHooks returns the built-in set of rewrites.  The host's macro
// configuration refers to these by name.
func DefaultHooks() []*Hook {
	hooks := []*Hook{
		SingleBinding,
		PairBindings,
		ModelBinding,
		VectorHeadBinding,
		IgnoreFirstArg,
		Sequence,
	}
	for n := 1; n <= 7; n++ {
		hooks = append(hooks, FixedBindings(n))
	}
	for n := 1; n <= 2; n++ {
		hooks = append(hooks, TopLevelBindings(n))
		hooks = append(hooks, UseFirstArgs(n))
	}
	return hooks
}

// Lookup returns the built-in hook with the given name, or nil.
func Lookup(name string) *Hook {
	for _, h := range DefaultHooks() {
		if h.Name == name {
			return h
		}
	}
	return nil
}
