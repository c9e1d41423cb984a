// Copyright © 2026 The linthook authors

package node

import (
	"bytes"
	"fmt"
	"strconv"
)

// Sexpr renders v as source text.  The rendering is the data read back by
// the host, so it omits metadata and source positions.
func (v *Node) Sexpr() string {
	switch v.Type {
	case NSymbol:
		return v.Str
	case NKeyword:
		return ":" + v.Str
	case NString:
		return fmt.Sprintf("%q", v.Str)
	case NInt:
		return strconv.Itoa(v.Int)
	case NFloat:
		// NOTE:  The 'g' format can render a floating point number such that
		// it appears as an integer (2.0 renders as 2) which can be confusing
		// for those interested in the type of each numeric value.
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case NBool:
		return strconv.FormatBool(v.Bool)
	case NNil:
		return "nil"
	case NList:
		return exprString(v, "(", ")")
	case NVector:
		return exprString(v, "[", "]")
	case NMap:
		return exprString(v, "{", "}")
	case NSet:
		return exprString(v, "#{", "}")
	default:
		return fmt.Sprintf("#<%s %#v>", v.Type, v)
	}
}

func (v *Node) String() string {
	return v.Sexpr()
}

func exprString(v *Node, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.Sexpr())
	}
	buf.WriteString(right)
	return buf.String()
}
