// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jparse

// A RuneRange is an inclusive range of code points.
type RuneRange struct {
	Lo, Hi rune
}

// Range constructs the inclusive range lo..hi.
func Range(lo, hi rune) RuneRange { return RuneRange{Lo: lo, Hi: hi} }

// One constructs the single-element range containing r.
func One(r rune) RuneRange { return RuneRange{Lo: r, Hi: r} }

// Class returns a parser for a single character drawn from the union
// of the given ranges, labeled for diagnostics. This is how grammars
// declare their named character classes.
func Class(label string, ranges ...RuneRange) Parser[rune] {
	return Char(label, func(ch rune) bool {
		for _, r := range ranges {
			if ch >= r.Lo && ch <= r.Hi {
				return true
			}
		}
		return false
	})
}
