// Copyright © 2026 The linthook authors

// Package resolve qualifies symbol tokens against the host's namespace
// tables.
//
// Hooks occasionally need to know which macro a symbol actually names —
// source code refers to macros through aliases and refers, so the same
// rewrite must apply to with-env, env/with-env, and acme.env/with-env
// alike.  Resolution is read-only: the context is built by the host per
// analyzed file and consulted here, never modified.
package resolve

import (
	"strings"

	"github.com/luthersystems/linthook/node"
)

// Namespace is a named set of defined symbols together with the aliases
// and refers its source file declared.
type Namespace struct {
	Name string

	// Defs holds the names defined in this namespace.
	Defs map[string]bool

	// Aliases maps a local alias to the full name of another namespace.
	Aliases map[string]string

	// Refers maps an unqualified name to the full name of the namespace
	// that defines it.
	Refers map[string]string
}

// NewNamespace initializes and returns a namespace with the given name.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		Name:    name,
		Defs:    make(map[string]bool),
		Aliases: make(map[string]string),
		Refers:  make(map[string]string),
	}
}

// Define records names as defined in the namespace.
func (ns *Namespace) Define(names ...string) {
	for _, name := range names {
		ns.Defs[name] = true
	}
}

// Alias records a local alias for the target namespace.
func (ns *Namespace) Alias(alias, target string) {
	ns.Aliases[alias] = target
}

// Refer records that the unqualified name resolves to the target
// namespace.
func (ns *Namespace) Refer(name, target string) {
	ns.Refers[name] = target
}

// Registry contains a set of namespaces.
type Registry struct {
	Namespaces map[string]*Namespace
}

// NewRegistry initializes and returns a new Registry.
func NewRegistry() *Registry {
	return &Registry{
		Namespaces: make(map[string]*Namespace),
	}
}

// DefineNamespace returns the named namespace, creating it if necessary.
func (r *Registry) DefineNamespace(name string) *Namespace {
	ns, ok := r.Namespaces[name]
	if ok {
		return ns
	}
	ns = NewNamespace(name)
	r.Namespaces[name] = ns
	return ns
}

// Context is the namespace-resolution context for the form under
// analysis: the registry of known namespaces and the namespace the
// analyzed file lives in.  The host constructs one per file; hooks only
// read it.
type Context struct {
	Registry *Registry
	Current  *Namespace
}

// Qualify resolves a token node denoting a symbol to its fully-qualified
// spelling ("namespace/name").  The second return is false when the node
// is not a symbol token or the symbol cannot be resolved.
//
// A symbol that fails resolution but was already written in qualified form
// is returned as-is on the assumption that its prefix names a real
// namespace rather than an alias.  Pseudo-symbols that are not valid
// lookup keys (interop accessors, malformed names) are an expected,
// recoverable condition and resolve to absent, never an error.
func (c *Context) Qualify(n *node.Node) (string, bool) {
	if n == nil || n.Type != node.NSymbol {
		return "", false
	}
	sym := n.Str
	if !isLookupSymbol(sym) {
		return "", false
	}
	prefix, name, qualified := splitSymbol(sym)
	if qualified {
		if c.Current != nil {
			if target, ok := c.Current.Aliases[prefix]; ok {
				return target + "/" + name, true
			}
		}
		// The prefix is not an alias; assume it already names a real
		// namespace.
		return sym, true
	}
	if c.Current != nil {
		if c.Current.Defs[name] {
			return c.Current.Name + "/" + name, true
		}
		if target, ok := c.Current.Refers[name]; ok {
			return target + "/" + name, true
		}
	}
	return "", false
}

// splitSymbol splits "ns/name" spellings.  The division symbol "/" itself
// is unqualified.
func splitSymbol(sym string) (prefix, name string, qualified bool) {
	i := strings.Index(sym, "/")
	if i <= 0 || i == len(sym)-1 {
		return "", sym, false
	}
	return sym[:i], sym[i+1:], true
}

// isLookupSymbol reports whether sym is a valid resolution key.  Interop
// pseudo-symbols (".method", "Type.", "..") and degenerate spellings are
// not.
func isLookupSymbol(sym string) bool {
	if sym == "" {
		return false
	}
	if strings.HasPrefix(sym, ".") || strings.HasSuffix(sym, ".") {
		return false
	}
	if strings.Count(sym, "/") > 1 {
		return false
	}
	return true
}
