// Copyright © 2026 The linthook authors

// Package meta reads and rewrites the suppressed-linters annotation carried
// in node metadata.
//
// The annotation is logically a set of linter names but has two historical
// on-disk shapes.  The current shape stores a map under the "lint/ignore"
// metadata key whose "linters" entry holds the encoding.  The legacy shape
// stores the whole metadata literal under the "meta" key, with the
// "lint/ignore" keyword holding the encoding directly inside its first
// child.  Reads accept both shapes; writes always normalize to the current
// shape.
package meta

import (
	"sort"

	"github.com/luthersystems/linthook/node"
)

// Metadata keys.  These spellings are a wire contract shared with the
// linter host and with annotations already present in source trees — they
// cannot change without breaking suppression state.
const (
	// KeyIgnore is the metadata key holding the suppression map in the
	// current shape.
	KeyIgnore = "lint/ignore"
	// KeyLinters is the keyword inside the suppression map whose value
	// encodes the suppressed linter names.
	KeyLinters = "linters"
	// KeyMeta is the legacy metadata key holding a renderable metadata
	// literal whose first child carries the suppression map directly.
	KeyMeta = "meta"
)

// Set is a set of linter names.
type Set map[string]bool

// NewSet returns a Set containing the given linter names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = true
	}
	return s
}

// Contains returns true if name is in the set.
func (s Set) Contains(name string) bool {
	return s[name]
}

// Insert returns a new Set with name added.  The receiver is unchanged.
func (s Set) Insert(name string) Set {
	cp := make(Set, len(s)+1)
	for k := range s {
		cp[k] = true
	}
	cp[name] = true
	return cp
}

// Union returns a new Set containing every name in s or other.  The
// receiver is unchanged.
func (s Set) Union(other Set) Set {
	cp := make(Set, len(s)+len(other))
	for k := range s {
		cp[k] = true
	}
	for k := range other {
		cp[k] = true
	}
	return cp
}

// Names returns the linter names in the set, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ReadSuppressions returns the set of linter names suppressed on n.  The
// second return is false when n carries no suppression annotation at all,
// which is distinct from an annotation suppressing nothing.
func ReadSuppressions(n *node.Node) (Set, bool) {
	if v, ok := n.MetaGet(KeyIgnore); ok {
		return decodeIgnoreMap(v)
	}
	if v, ok := n.MetaGet(KeyMeta); ok {
		return decodeLegacy(v)
	}
	return nil, false
}

// decodeIgnoreMap decodes the current shape: a map node whose "linters"
// entry holds the encoding.
func decodeIgnoreMap(v *node.Node) (Set, bool) {
	enc, ok := mapValue(v, KeyLinters)
	if !ok {
		return nil, false
	}
	return decodeNames(enc)
}

// decodeLegacy decodes the legacy shape: a renderable metadata literal
// whose first child is a map carrying the encoding under the ignore key
// directly.
func decodeLegacy(v *node.Node) (Set, bool) {
	if !v.IsCollection() || len(v.Cells) == 0 {
		return nil, false
	}
	enc, ok := mapValue(v.Cells[0], KeyIgnore)
	if !ok {
		return nil, false
	}
	return decodeNames(enc)
}

// mapValue returns the value paired with the keyword key in a map node.
func mapValue(m *node.Node, key string) (*node.Node, bool) {
	if m == nil || m.Type != node.NMap {
		return nil, false
	}
	for i := 0; i+1 < len(m.Cells); i += 2 {
		k := m.Cells[i]
		if k.Type == node.NKeyword && k.Str == key {
			return m.Cells[i+1], true
		}
	}
	return nil, false
}

// decodeNames accepts any of the historical encodings: a single bare
// identifier, an ordered sequence of identifiers, or a set of identifiers.
func decodeNames(enc *node.Node) (Set, bool) {
	if enc == nil {
		return nil, false
	}
	if name, ok := identifierName(enc); ok {
		return NewSet(name), true
	}
	switch enc.Type {
	case node.NList, node.NVector, node.NSet:
		s := make(Set, len(enc.Cells))
		for _, c := range enc.Cells {
			if name, ok := identifierName(c); ok {
				s[name] = true
			}
		}
		return s, true
	}
	return nil, false
}

// identifierName returns the linter name denoted by a keyword or symbol
// token.
func identifierName(n *node.Node) (string, bool) {
	switch n.Type {
	case node.NKeyword, node.NSymbol:
		return n.Str, true
	}
	return "", false
}

// encodeNames emits the canonical encoding: a vector of keywords in sorted
// order.
func encodeNames(s Set) *node.Node {
	names := s.Names()
	cells := make([]*node.Node, len(names))
	for i, name := range names {
		cells[i] = node.Keyword(name)
	}
	return node.Vector(cells...)
}

// WriteSuppressions computes f over n's current suppression set (empty when
// absent) and returns a new node carrying the result in the current shape.
// All other metadata keys are untouched; n itself is unchanged.
func WriteSuppressions(n *node.Node, f func(Set) Set) *node.Node {
	old, _ := ReadSuppressions(n)
	next := f(old)
	ignore := node.Map(node.Keyword(KeyLinters), encodeNames(next))
	return n.WithMetaKey(KeyIgnore, ignore)
}

// AddSuppression returns a new node with name added to n's suppression set.
func AddSuppression(n *node.Node, name string) *node.Node {
	return WriteSuppressions(n, func(s Set) Set {
		return s.Insert(name)
	})
}

// MergeSuppressions unions the suppression sets of the source nodes into
// target.  Absent annotations on sources contribute nothing.  When no
// source carries any suppression, target is returned unchanged — no
// annotation is invented.
func MergeSuppressions(target *node.Node, sources ...*node.Node) *node.Node {
	var union Set
	for _, src := range sources {
		s, ok := ReadSuppressions(src)
		if !ok {
			continue
		}
		union = union.Union(s)
	}
	if len(union) == 0 {
		return target
	}
	return WriteSuppressions(target, func(s Set) Set {
		return s.Union(union)
	})
}
