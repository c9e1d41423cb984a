// Copyright © 2026 The linthook authors

package hook

import (
	"fmt"
	"sync/atomic"

	"github.com/luthersystems/linthook/node"
)

// IgnoredBinding is the fixed placeholder name used when an omitted
// optional binding does not need to be locally unique.  The host treats a
// lone underscore as intentionally unused.
const IgnoredBinding = "_"

// GensymPrefix prefixes every freshly generated binding name.
const GensymPrefix = "__lint_arg_"

var gensymCounter uint64

// gensym returns a fresh, process-unique symbol.  Used where a synthesized
// binding must not collide with a sibling (the use-first-args family binds
// several values in one let).
func gensym() *node.Node {
	n := atomic.AddUint64(&gensymCounter, 1)
	return node.Symbol(fmt.Sprintf("%s%d", GensymPrefix, n))
}

// ignored returns the fixed placeholder binding symbol.
func ignored() *node.Node {
	return node.Symbol(IgnoredBinding)
}
