// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"strings"
)

// A Reason is one entry in a diagnostic trail: a fixed label naming the
// rule or combinator that reported it, with the position where that
// rule began. Pos is nil for errors reported outside of parsing, such
// as value accessor mismatches.
type Reason struct {
	Pos   *Position
	Label string
}

// Error is the concrete type of errors reported by parsers. It carries
// a trail of reasons ordered from the deepest failure to the outermost
// rule that propagated it. A trail is append-only: each propagation
// boundary adds its own entry and re-raises.
type Error struct {
	reasons []Reason
}

// ErrorAt constructs an error with a single-entry trail at pos.
func ErrorAt(pos Position, label string) *Error {
	p := pos
	return &Error{reasons: []Reason{{Pos: &p, Label: label}}}
}

// PlainError constructs an error with a single position-free reason.
func PlainError(label string) *Error {
	return &Error{reasons: []Reason{{Label: label}}}
}

// AddReason appends an entry to the trail and returns e.
func (e *Error) AddReason(pos Position, label string) *Error {
	p := pos
	e.reasons = append(e.reasons, Reason{Pos: &p, Label: label})
	return e
}

// Reasons returns the diagnostic trail, deepest entry first.
func (e *Error) Reasons() []Reason { return e.reasons }

// Position reports the deepest position recorded in the trail, and
// false if no entry carries a position.
func (e *Error) Position() (Position, bool) {
	for _, r := range e.reasons {
		if r.Pos != nil {
			return *r.Pos, true
		}
	}
	return Position{}, false
}

// Error satisfies the error interface. The message renders the deepest
// reason with its position, followed by the enclosing labels in order.
func (e *Error) Error() string {
	if len(e.reasons) == 0 {
		return "parse error"
	}
	var sb strings.Builder
	first := e.reasons[0]
	if first.Pos != nil {
		sb.WriteString("at ")
		sb.WriteString(first.Pos.String())
		sb.WriteString(": ")
	}
	sb.WriteString(first.Label)
	if len(e.reasons) > 1 {
		sb.WriteString(" (in ")
		for i, r := range e.reasons[1:] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(r.Label)
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// AddReason augments err with a trail entry at pos and returns it.
// An error that is not an *Error is converted to one, keeping its
// message as the deepest reason.
func AddReason(err error, pos Position, label string) error {
	var e *Error
	if !errors.As(err, &e) {
		e = PlainError(err.Error())
	}
	return e.AddReason(pos, label)
}
