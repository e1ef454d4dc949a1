// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"testing"

	"github.com/creachadair/jparse"
)

func TestPositionAdvance(t *testing.T) {
	tests := []struct {
		input string
		index int
		line  int
		col   int
	}{
		{"", 0, 1, 0},
		{"a", 1, 1, 1},
		{"abc", 3, 1, 3},
		{"a\n", 2, 2, 0},
		{"a\nb", 3, 2, 1},
		{"a\nb\n\nc", 6, 4, 1},
		{"é\n世", 3, 2, 1}, // characters, not bytes
	}
	for _, test := range tests {
		var pos jparse.Position
		for _, ch := range test.input {
			pos = pos.Advance(ch)
		}
		if got := pos.Index(); got != test.index {
			t.Errorf("Input %#q: index: got %d, want %d", test.input, got, test.index)
		}
		if got := pos.Line(); got != test.line {
			t.Errorf("Input %#q: line: got %d, want %d", test.input, got, test.line)
		}
		if got := pos.Column(); got != test.col {
			t.Errorf("Input %#q: column: got %d, want %d", test.input, got, test.col)
		}
	}
}

func TestPositionDistance(t *testing.T) {
	var p, q jparse.Position
	for _, ch := range "ab\ncd" {
		q = q.Advance(ch)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance forward: got %d, want 5", got)
	}
	if got := q.Distance(p); got != -5 {
		t.Errorf("Distance backward: got %d, want -5", got)
	}
	if got := q.Distance(q); got != 0 {
		t.Errorf("Distance self: got %d, want 0", got)
	}
}

func TestPositionString(t *testing.T) {
	var pos jparse.Position
	if got := pos.String(); got != "1:0" {
		t.Errorf("Start: got %q, want 1:0", got)
	}
	for _, ch := range "x\nyz" {
		pos = pos.Advance(ch)
	}
	if got := pos.String(); got != "2:2" {
		t.Errorf("After x\\nyz: got %q, want 2:2", got)
	}
}
