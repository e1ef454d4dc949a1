// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"fmt"
	"unicode/utf8"
)

// A Position describes a location in a source input. The zero value is
// the start of the input. A Position is addressed in characters, not
// bytes: Index reports the number of characters consumed to reach it.
type Position struct {
	index  int // characters consumed
	line   int // 0-based line offset
	column int // 0-based column offset within the line, in characters
	offset int // byte offset of the UTF-8 encoding, used by Text
}

// Index reports the number of characters consumed before p.
func (p Position) Index() int { return p.index }

// Line reports the 1-based line number of p.
func (p Position) Line() int { return p.line + 1 }

// Column reports the 0-based column offset of p in its line.
func (p Position) Column() int { return p.column }

// Advance returns the position after reading ch at p. A newline
// advances the line and resets the column; any other character
// advances the column.
func (p Position) Advance(ch rune) Position {
	q := Position{index: p.index + 1, offset: p.offset + utf8.RuneLen(ch)}
	if ch == '\n' {
		q.line = p.line + 1
	} else {
		q.line, q.column = p.line, p.column+1
	}
	return q
}

// Distance reports the signed number of characters from p to q.
// It is negative if q precedes p.
func (p Position) Distance(q Position) int { return q.index - p.index }

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line(), p.Column()) }
