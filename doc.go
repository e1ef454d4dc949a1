// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a small combinator toolkit for recursive
// descent parsing, used by the ast subpackage to parse JSON.
//
// # Input and positions
//
// An Input is a read-only view of already-resident text. Reads are
// addressed by a Position, which records the number of characters
// consumed along with the line and column of the next character:
//
//	in := jparse.NewText(`{"a": true}`)
//	ch, next, err := in.Next(jparse.Position{})
//
// Next reads one character; NextRange reads a fixed-width slice, used
// for matching multi-character literals. Both fail with an out of
// bounds error if the requested characters are not available. Inputs
// are never modified by reading, so any number of parses may share one
// Input, concurrently or otherwise.
//
// # Parsers
//
// A Parser[O] is a function that consumes input at a position and
// either produces a value of type O with the position after it, or
// reports an error without consuming anything:
//
//	digits := jparse.Many1(jparse.Class("digit", jparse.Range('0', '9')))
//	ds, next, err := digits(in, pos)
//
// Parsers compose: Seq runs two parsers in order, Alt tries the second
// only if the first fails (at the same starting position), Opt, Many,
// and Many1 handle repetition, and Rule names a composition and shapes
// its output. A parser that fails always returns its starting
// position; combinators that explore alternatives never leave input
// partially consumed.
//
// # Errors
//
// Failures are reported as an *Error carrying a diagnostic trail: an
// ordered sequence of (position, reason) entries appended as the
// failure propagates outward, so the first entry is the deepest point
// reached and the last is the outermost rule that gave up. See the
// Error type for how trails render.
package jparse
