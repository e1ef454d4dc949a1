// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape sequences of JSON strings.
package escape

import "unicode/utf8"

// Letter reports whether ch is one of the single-letter escapes that
// may follow a backslash: " \ / b f n r t. The parser passes these
// through as written; mapping b f n r t to their control characters is
// the consumer's responsibility.
func Letter(ch rune) bool {
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

// HexValue returns the numeric value of the hexadecimal digit ch.
// The caller must ensure ch is a hex digit.
func HexValue(ch rune) uint8 {
	switch {
	case ch >= '0' && ch <= '9':
		return uint8(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return uint8(ch-'a') + 10
	default:
		return uint8(ch-'A') + 10
	}
}

// Rune combines four hexadecimal digit values, most significant first,
// into a single code point. It reports false if the result is not a
// valid Unicode scalar value, such as an unpaired surrogate.
func Rune(d1, d2, d3, d4 uint8) (rune, bool) {
	ch := rune(d1)<<12 | rune(d2)<<8 | rune(d3)<<4 | rune(d4)
	if !utf8.ValidRune(ch) {
		return utf8.RuneError, false
	}
	return ch, true
}
