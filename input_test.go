// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/google/go-cmp/cmp"
)

func TestTextNext(t *testing.T) {
	in := jparse.NewText("hé\n!")

	var got []rune
	pos := jparse.Position{}
	for {
		ch, next, err := in.Next(pos)
		if err != nil {
			break
		}
		got = append(got, ch)
		pos = next
	}
	if diff := cmp.Diff([]rune("hé\n!"), got); diff != "" {
		t.Errorf("Characters: (-want, +got)\n%s", diff)
	}
	if pos.Index() != 4 || pos.Line() != 2 || pos.Column() != 1 {
		t.Errorf("End position: got %d %s, want 4 2:1", pos.Index(), pos)
	}

	// Reading past the end must fail and leave the position alone.
	_, bad, err := in.Next(pos)
	if err == nil {
		t.Fatal("Next at EOF: got nil, want error")
	}
	if bad != pos {
		t.Errorf("Next at EOF: position moved to %v", bad)
	}
	var pe *jparse.Error
	if !errors.As(err, &pe) {
		t.Fatalf("Next at EOF: error has type %T, want *jparse.Error", err)
	}
	rs := pe.Reasons()
	if len(rs) != 1 || rs[0].Label != "out of bounds" {
		t.Errorf("Reasons: got %+v, want one out of bounds entry", rs)
	}
	if p, ok := pe.Position(); !ok || p.Index() != 4 {
		t.Errorf("Error position: got %v (ok=%v), want index 4", p, ok)
	}
}

func TestTextNextRange(t *testing.T) {
	in := jparse.NewText("ab\ncd")

	text, next, err := in.NextRange(jparse.Position{}, 4)
	if err != nil {
		t.Fatalf("NextRange failed: %v", err)
	}
	if text != "ab\nc" {
		t.Errorf("NextRange: got %#q, want %#q", text, "ab\nc")
	}
	if next.Index() != 4 || next.Line() != 2 || next.Column() != 1 {
		t.Errorf("NextRange position: got %d %s, want 4 2:1", next.Index(), next)
	}

	if _, _, err := in.NextRange(next, 2); err == nil {
		t.Error("NextRange past EOF: got nil, want error")
	}

	// A zero-width range succeeds without moving.
	text, same, err := in.NextRange(next, 0)
	if err != nil || text != "" || same != next {
		t.Errorf("NextRange(0): got %#q, %v, %v", text, same, err)
	}
}

func TestTextBytes(t *testing.T) {
	in := jparse.NewTextBytes([]byte("ok"))
	ch, _, err := in.Next(jparse.Position{})
	if err != nil || ch != 'o' {
		t.Errorf("Next: got %q, %v; want 'o', nil", ch, err)
	}
}

// Reads must not perturb the input: the same position always yields
// the same result.
func TestTextPure(t *testing.T) {
	in := jparse.NewText("xyz")
	pos := jparse.Position{}
	a1, n1, err1 := in.Next(pos)
	a2, n2, err2 := in.Next(pos)
	if a1 != a2 || n1 != n2 || (err1 == nil) != (err2 == nil) {
		t.Errorf("Next not repeatable: (%q,%v,%v) vs (%q,%v,%v)", a1, n1, err1, a2, n2, err2)
	}
}
