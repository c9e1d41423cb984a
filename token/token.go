// Copyright © 2026 The linthook authors

// Package token describes source positions attached to syntax-tree nodes.
//
// The linter host parses source text and records where every form came
// from.  Rewrites must carry these positions forward so that diagnostics
// produced for a synthesized form still point at the original call site.
package token

import "fmt"

// Location is an originating position in source code.  Locations are
// frequently shared between nodes and must be treated as immutable.
type Location struct {
	File string // a name representing the source stream
	Path string // a physical location which may differ from File
	Pos  int    // byte offset within the stream (negative when untracked)
	Line int    // line number (starting at 1 when tracked)
	Col  int    // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	switch {
	case loc.Pos < 0:
		return loc.File
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}

// LocationError decorates an error with the source position it concerns.
type LocationError struct {
	Err    error
	Source *Location
}

func (err *LocationError) Error() string {
	return fmt.Sprintf("%s: %s", err.Source, err.Err)
}

func (err *LocationError) Unwrap() error {
	return err.Err
}
