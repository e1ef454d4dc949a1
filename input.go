// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"strings"

	"go4.org/mem"
)

// outOfBounds labels reads past the end of the available input.
const outOfBounds = "out of bounds"

// An Input is a capability for reading characters of source text at a
// position. Implementations must be pure: reading does not modify the
// input, and reads at equal positions yield equal results.
type Input interface {
	// Next reads the single character at pos and returns it with the
	// position after it. It fails if pos is at or beyond the end of
	// the input.
	Next(pos Position) (rune, Position, error)

	// NextRange reads exactly n characters starting at pos and
	// returns them with the position after them. It fails if fewer
	// than n characters remain.
	NextRange(pos Position, n int) (string, Position, error)
}

// A Text is an Input over a read-only view of in-memory text.
type Text struct {
	src mem.RO
}

// NewText constructs a Text that reads the contents of s.
func NewText(s string) *Text { return &Text{src: mem.S(s)} }

// NewTextBytes constructs a Text that reads the contents of data.
// The caller must not modify data while the Text is in use.
func NewTextBytes(data []byte) *Text { return &Text{src: mem.B(data)} }

// Next implements a method of the Input interface.
func (t *Text) Next(pos Position) (rune, Position, error) {
	if pos.offset >= t.src.Len() {
		return 0, pos, ErrorAt(pos, outOfBounds)
	}
	ch, _ := mem.DecodeRune(t.src.SliceFrom(pos.offset))
	return ch, pos.Advance(ch), nil
}

// NextRange implements a method of the Input interface.
func (t *Text) NextRange(pos Position, n int) (string, Position, error) {
	var sb strings.Builder
	cur := pos
	for i := 0; i < n; i++ {
		ch, next, err := t.Next(cur)
		if err != nil {
			return "", pos, ErrorAt(pos, outOfBounds)
		}
		sb.WriteRune(ch)
		cur = next
	}
	return sb.String(), cur, nil
}
