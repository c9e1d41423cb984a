// Copyright © 2026 The linthook authors

// Package fmtspec scans format strings for conversion specifiers.
//
// Hooks rewriting logging or formatting macros need the specifier count to
// know how many trailing arguments the format consumes; everything after
// that is ordinary lintable code.
package fmtspec

import "regexp"

var specifierPattern = regexp.MustCompile(`%(?:\d+\$)?[-#+ 0,(]*\d*(?:\.\d+)?[a-zA-Z%]`)

// Specifiers returns every conversion specifier in s, in order, including
// the literal escapes "%%" and "%n".
func Specifiers(s string) []string {
	return specifierPattern.FindAllString(s, -1)
}

// Count returns the number of argument-consuming specifiers in s.  Literal
// escapes ("%%", "%n") and explicitly indexed specifiers ("%1$s") do not
// consume a fresh argument and are excluded.
func Count(s string) int {
	n := 0
	for _, spec := range Specifiers(s) {
		switch spec[len(spec)-1] {
		case '%', 'n':
			continue
		}
		if len(spec) > 1 && spec[1] >= '1' && spec[1] <= '9' && indexed(spec) {
			continue
		}
		n++
	}
	return n
}

func indexed(spec string) bool {
	for i := 1; i < len(spec); i++ {
		switch {
		case spec[i] >= '0' && spec[i] <= '9':
			continue
		case spec[i] == '$':
			return true
		default:
			return false
		}
	}
	return false
}
