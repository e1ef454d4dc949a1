// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jparse

// A Parser is a parsing capability: it consumes input at a position
// and produces a value of type O with the position after the consumed
// text, or reports an error. A parser that fails returns its starting
// position, so a caller can retry another parser at the same place.
type Parser[O any] func(in Input, pos Position) (O, Position, error)

// Unit is the output type of parsers that consume nothing of interest.
type Unit struct{}

// Empty is a Parser[Unit] that always succeeds without consuming any
// input. It is the zero-occurrence terminal for Opt and Many.
func Empty(in Input, pos Position) (Unit, Position, error) {
	return Unit{}, pos, nil
}

// Char returns a parser that consumes a single character accepted by
// pred. Failures are labeled with label, positioned at the unconsumed
// character.
func Char(label string, pred func(rune) bool) Parser[rune] {
	return func(in Input, pos Position) (rune, Position, error) {
		ch, next, err := in.Next(pos)
		if err != nil {
			return 0, pos, AddReason(err, pos, label)
		}
		if !pred(ch) {
			return 0, pos, ErrorAt(pos, label)
		}
		return ch, next, nil
	}
}

// A Pair is the output of Seq: the outputs of both parsers in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq returns a parser that runs pa, then pb at the position where pa
// ended, and yields both outputs. It fails if either fails, tagging
// the trail with which side gave up.
func Seq[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(in Input, pos Position) (Pair[A, B], Position, error) {
		var out Pair[A, B]
		a, next, err := pa(in, pos)
		if err != nil {
			return out, pos, AddReason(err, pos, "seq1")
		}
		b, end, err := pb(in, next)
		if err != nil {
			return out, pos, AddReason(err, pos, "seq2")
		}
		out.First, out.Second = a, b
		return out, end, nil
	}
}

// An Either is the output of Alt, recording which branch matched.
// Exactly one of A or B is meaningful, selected by IsA.
type Either[A, B any] struct {
	A   A
	B   B
	IsA bool
}

// Alt returns a parser that attempts pa, and if pa fails attempts pb
// at the same starting position; alternation never partially commits.
// If both fail, the second branch's trail is reported with an "alt"
// label appended, and the first branch's trail is discarded.
func Alt[A, B any](pa Parser[A], pb Parser[B]) Parser[Either[A, B]] {
	return func(in Input, pos Position) (Either[A, B], Position, error) {
		var out Either[A, B]
		if a, next, err := pa(in, pos); err == nil {
			out.A, out.IsA = a, true
			return out, next, nil
		}
		b, next, err := pb(in, pos)
		if err != nil {
			return out, pos, AddReason(err, pos, "alt")
		}
		out.B = b
		return out, next, nil
	}
}

// Opt returns a parser that attempts p and succeeds either way,
// yielding either p's output or Unit.
func Opt[A any](p Parser[A]) Parser[Either[A, Unit]] {
	return Alt(p, Parser[Unit](Empty))
}

// Many1 returns a parser that requires one match of p, then collects
// further matches at the advancing position until p fails. The failed
// attempt consumes nothing: the reported end is the position before it.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return func(in Input, pos Position) ([]A, Position, error) {
		a, next, err := p(in, pos)
		if err != nil {
			return nil, pos, AddReason(err, pos, "many1")
		}
		out := []A{a}
		for {
			a, after, err := p(in, next)
			if err != nil {
				return out, next, nil
			}
			out = append(out, a)
			next = after
		}
	}
}

// Many returns a parser that collects zero or more matches of p.
// It is the alternation of Many1(p) with Empty, flattened: on zero
// matches it yields an empty slice at the starting position.
func Many[A any](p Parser[A]) Parser[[]A] {
	rep := Many1(p)
	return func(in Input, pos Position) ([]A, Position, error) {
		out, next, err := rep(in, pos)
		if err != nil {
			return nil, pos, nil
		}
		return out, next, nil
	}
}

// Rule wraps p as a named grammar production whose output is shaped by
// f. Failures of p are tagged with the rule name before propagating.
func Rule[A, B any](name string, p Parser[A], f func(A) B) Parser[B] {
	return func(in Input, pos Position) (B, Position, error) {
		a, next, err := p(in, pos)
		if err != nil {
			var zero B
			return zero, pos, AddReason(err, pos, name)
		}
		return f(a), next, nil
	}
}
