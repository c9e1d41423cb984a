// Copyright © 2026 The linthook authors

package node

import (
	"github.com/luthersystems/linthook/token"
)

// NType is the type of a Node
type NType uint

// Possible NType values
const (
	// NInvalid (0) is not a valid node type.
	NInvalid NType = iota
	// NSymbol values store the symbol text in the Node.Str field.  The text
	// may include a namespace qualifier separated by a slash ("ns/name").
	NSymbol
	// NKeyword values store the keyword name in the Node.Str field without
	// its leading colon.
	NKeyword
	// NString values store a string in the Node.Str field.
	NString
	// NInt values store an int in the Node.Int field.
	NInt
	// NFloat values store a float64 in the Node.Float field.
	NFloat
	// NBool values store a bool in the Node.Bool field.
	NBool
	// NNil is the nil literal.  It is distinct from an empty list.
	NNil
	// NList values are "(...)" forms and store their children in Node.Cells.
	// The first cell of a macro invocation is the macro name symbol.
	NList
	// NVector values are "[...]" forms and store their children in
	// Node.Cells.
	NVector
	// NMap values are "{...}" forms.  Node.Cells holds alternating key and
	// value nodes, so len(Cells) is always even for well-formed maps.
	NMap
	// NSet values are "#{...}" forms and store their members in Node.Cells.
	NSet
	// NTypeMax is not a real type but represents a value numerically greater
	// than all valid NType values.
	NTypeMax
)

var nodeTypeStrings = []string{
	NInvalid: "INVALID",
	NSymbol:  "symbol",
	NKeyword: "keyword",
	NString:  "string",
	NInt:     "int",
	NFloat:   "float",
	NBool:    "bool",
	NNil:     "nil",
	NList:    "list",
	NVector:  "vector",
	NMap:     "map",
	NSet:     "set",
}

func (t NType) String() string {
	if t >= NType(len(nodeTypeStrings)) {
		return nodeTypeStrings[NInvalid]
	}
	return nodeTypeStrings[t]
}

// Node is an immutable syntax-tree value.  Nodes are created once, by the
// host's parser or by the constructors in this package, and are never
// mutated in place.  A "rewrite" always constructs a brand-new Node,
// optionally copying metadata from an existing one.
//
// Two nodes with identical structure but different Meta represent the same
// form for evaluation purposes.  Meta is a side channel consumed by the
// linter host (suppression annotations, reader hints) and must be carried
// across rewrites or downstream consumers lose that state.
type Node struct {
	// Source is the value's originating location in source code.  Programs
	// should not modify the contents of Source as the reference may be
	// shared by multiple Nodes.
	Source *token.Location

	// Str is used by NSymbol, NKeyword and NString values.
	Str string

	// Cells holds the children of collection values.
	Cells []*Node

	// Meta maps keyword names (without the leading colon) to value nodes.
	// Nil when the node carries no metadata.
	Meta map[string]*Node

	// Type is the discriminating type of the value.
	Type NType

	// Fields used for literal values.
	Int   int
	Float float64
	Bool  bool
}

// Singleton nil literal.  Returned by Nil() because inert placeholder
// values are synthesized on nearly every rewrite.  Callers must not mutate
// any field of the returned Node.
var singletonNil = &Node{Source: syntheticSource(), Type: NNil}

// Symbol returns a Node representing the symbol s.
func Symbol(s string) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NSymbol,
		Str:    s,
	}
}

// Keyword returns a Node representing the keyword with the given name.  The
// name must not include the leading colon.
func Keyword(name string) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NKeyword,
		Str:    name,
	}
}

// String returns a Node representing the string str.
func String(str string) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NString,
		Str:    str,
	}
}

// Int returns a Node representing the number x.
func Int(x int) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NInt,
		Int:    x,
	}
}

// Float returns a Node representing the number x.
func Float(x float64) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NFloat,
		Float:  x,
	}
}

// Bool returns a Node representing the boolean b.
func Bool(b bool) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NBool,
		Bool:   b,
	}
}

// Nil returns the Node representing the nil literal.
//
// The returned value is a shared singleton — callers MUST NOT mutate it.
func Nil() *Node {
	return singletonNil
}

// List returns a Node representing a "(...)" form.  Provided cells are used
// as backing storage for the returned node and are not copied.
func List(cells ...*Node) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NList,
		Cells:  cells,
	}
}

// Vector returns a Node representing a "[...]" form.  Provided cells are
// used as backing storage for the returned node and are not copied.
func Vector(cells ...*Node) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NVector,
		Cells:  cells,
	}
}

// Map returns a Node representing a "{...}" form.  The cells are
// alternating key and value nodes.
func Map(cells ...*Node) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NMap,
		Cells:  cells,
	}
}

// Set returns a Node representing a "#{...}" form.
func Set(cells ...*Node) *Node {
	return &Node{
		Source: syntheticSource(),
		Type:   NSet,
		Cells:  cells,
	}
}

// IsToken returns true if v is an atomic value rather than a collection.
func (v *Node) IsToken() bool {
	switch v.Type {
	case NSymbol, NKeyword, NString, NInt, NFloat, NBool, NNil:
		return true
	}
	return false
}

// IsCollection returns true if v is a list, vector, map, or set.
func (v *Node) IsCollection() bool {
	switch v.Type {
	case NList, NVector, NMap, NSet:
		return true
	}
	return false
}

// IsNil returns true if v represents the nil literal.
func (v *Node) IsNil() bool {
	return v.Type == NNil
}

// Len returns the number of children of a collection node, or -1 for
// atomic values.
func (v *Node) Len() int {
	if !v.IsCollection() {
		return -1
	}
	return len(v.Cells)
}

// Equal reports whether v and other are structurally equal.  Metadata and
// source positions are ignored: two nodes with identical structure are the
// same form no matter where they came from or what annotations they carry.
func (v *Node) Equal(other *Node) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case NSymbol, NKeyword, NString:
		return v.Str == other.Str
	case NInt:
		return v.Int == other.Int
	case NFloat:
		return v.Float == other.Float
	case NBool:
		return v.Bool == other.Bool
	case NNil:
		return true
	case NList, NVector, NMap, NSet:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Copy creates a deep copy of the receiver.
func (v *Node) Copy() *Node {
	if v == nil {
		return nil
	}
	cp := &Node{}
	*cp = *v // shallow copy of all fields
	cp.Cells = copyCells(v.Cells)
	cp.Meta = CopyMeta(v.Meta)
	return cp
}

func copyCells(cells []*Node) []*Node {
	if len(cells) == 0 {
		return nil
	}
	cp := make([]*Node, len(cells))
	for i := range cp {
		cp[i] = cells[i].Copy()
	}
	return cp
}

// CopyMeta returns a copy of a metadata map.  Value nodes are shared, not
// copied — they are immutable.
func CopyMeta(meta map[string]*Node) map[string]*Node {
	if meta == nil {
		return nil
	}
	cp := make(map[string]*Node, len(meta))
	for k, val := range meta {
		cp[k] = val
	}
	return cp
}

// MetaGet returns the metadata value stored under the given keyword name.
// The second return is false when the node has no metadata for the key.
func (v *Node) MetaGet(key string) (*Node, bool) {
	val, ok := v.Meta[key]
	return val, ok
}

// WithMeta returns a copy of v whose metadata is exactly meta.  The
// original node is unchanged; children are shared.
func (v *Node) WithMeta(meta map[string]*Node) *Node {
	cp := &Node{}
	*cp = *v
	cp.Meta = CopyMeta(meta)
	return cp
}

// WithMetaKey returns a copy of v with val stored under the given keyword
// name.  All other metadata keys are untouched.
func (v *Node) WithMetaKey(key string, val *Node) *Node {
	cp := &Node{}
	*cp = *v
	cp.Meta = CopyMeta(v.Meta)
	if cp.Meta == nil {
		cp.Meta = make(map[string]*Node, 1)
	}
	cp.Meta[key] = val
	return cp
}

// WithMetaFrom returns a copy of v carrying src's metadata and source
// position.  Synthesizers use this to make a brand-new wrapping node report
// diagnostics against the original call site.
func (v *Node) WithMetaFrom(src *Node) *Node {
	cp := &Node{}
	*cp = *v
	cp.Meta = CopyMeta(src.Meta)
	cp.Source = src.Source
	return cp
}

var syntheticSourceLocation = &token.Location{
	File: "<synthesized>",
	Pos:  -1,
}

func syntheticSource() *token.Location {
	return syntheticSourceLocation
}
