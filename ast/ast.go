// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value model for JSON documents and a parser
// that produces values from JSON source text.
package ast

import (
	"fmt"
	"math"

	"github.com/creachadair/jparse"
)

// Kind is the type tag of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // zero value, not produced by parsing
	Object              // collection of key-value members
	Array               // sequence of values
	String              // sequence of decoded characters
	Number              // decomposed number
	Bool                // true or false
	Null                // the null constant
)

var kindStr = [...]string{
	Invalid: "invalid",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Number:  "number",
	Bool:    "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A NumberValue is a number decomposed into exact components: the
// signed integer part, the fraction digits as an unsigned magnitude
// with an explicit digit count (so "0.007" keeps Fraction 7 and
// FractionLength 3), and the signed exponent. No rounding occurs
// during parsing; Float64 is the explicit conversion step.
type NumberValue struct {
	Integer        int64
	Fraction       uint64
	FractionLength uint32
	Exponent       int32
}

// Float64 converts n to a floating value, applying the fraction with
// the sign of the integer part:
//
//	±(|integer| + fraction / 10^length) * 10^exponent
//
// This is where rounding enters; the components themselves are exact.
func (n NumberValue) Float64() float64 {
	mag := math.Abs(float64(n.Integer)) +
		float64(n.Fraction)/math.Pow(10, float64(n.FractionLength))
	if n.Integer < 0 {
		mag = -mag
	}
	return mag * math.Pow(10, float64(n.Exponent))
}

// A Member is a single key-value pair belonging to an object.
type Member struct {
	Key   string
	Value Value
}

// A Value is a parsed JSON value: one of object, array, string,
// number, boolean, or null, distinguished by Kind. Object members are
// kept in encounter order, and duplicate keys are retained rather than
// merged. String values hold decoded characters, not raw source text.
type Value struct {
	kind Kind
	obj  []Member
	arr  []Value
	str  []rune
	num  NumberValue
	bool bool
}

// Kind reports the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// Object returns the members of v, or an error if v is not an object.
func (v Value) Object() ([]Member, error) {
	if v.kind != Object {
		return nil, jparse.PlainError("not an object")
	}
	return v.obj, nil
}

// Array returns the elements of v, or an error if v is not an array.
func (v Value) Array() ([]Value, error) {
	if v.kind != Array {
		return nil, jparse.PlainError("not an array")
	}
	return v.arr, nil
}

// Text returns the decoded text of v, or an error if v is not a
// string.
func (v Value) Text() (string, error) {
	if v.kind != String {
		return "", jparse.PlainError("not a string")
	}
	return string(v.str), nil
}

// Chars returns the decoded characters of v, or an error if v is not a
// string.
func (v Value) Chars() ([]rune, error) {
	if v.kind != String {
		return nil, jparse.PlainError("not a string")
	}
	out := make([]rune, len(v.str))
	copy(out, v.str)
	return out, nil
}

// Bytes returns the characters of v each truncated to a single byte,
// or an error if v is not a string. The truncation is lossy for
// characters outside the Latin-1 range.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != String {
		return nil, jparse.PlainError("not a string")
	}
	out := make([]byte, len(v.str))
	for i, ch := range v.str {
		out[i] = byte(ch)
	}
	return out, nil
}

// Number returns the decomposed number held by v, or an error if v is
// not a number.
func (v Value) Number() (NumberValue, error) {
	if v.kind != Number {
		return NumberValue{}, jparse.PlainError("not a number")
	}
	return v.num, nil
}

// Float64 returns the number held by v converted to floating point,
// or an error if v is not a number.
func (v Value) Float64() (float64, error) {
	n, err := v.Number()
	if err != nil {
		return 0, err
	}
	return n.Float64(), nil
}

// Bool returns the truth value of v, or an error if v is not a
// boolean.
func (v Value) Bool() (bool, error) {
	if v.kind != Bool {
		return false, jparse.PlainError("not a boolean")
	}
	return v.bool, nil
}

// IsNull reports whether v is the null constant.
func (v Value) IsNull() bool { return v.kind == Null }

// Find returns the first member of v with the given key, or nil if v
// is not an object or has no such member. Later duplicates of the key
// are not considered.
func (v Value) Find(key string) *Member {
	for i, m := range v.obj {
		if m.Key == key {
			return &v.obj[i]
		}
	}
	return nil
}

// Path traverses v by the given path elements and returns the value it
// arrives at. A string element selects the first member of an object
// with that key; an int element selects an array element, with
// negative values addressing from the end of the array.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.kind != Object {
				return Value{}, fmt.Errorf("cannot key %v with %q", cur.kind, t)
			}
			m := cur.Find(t)
			if m == nil {
				return Value{}, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value
		case int:
			if cur.kind != Array {
				return Value{}, fmt.Errorf("cannot index %v with %d", cur.kind, t)
			}
			i := t
			if i < 0 {
				i += len(cur.arr)
			}
			if i < 0 || i >= len(cur.arr) {
				return Value{}, fmt.Errorf("index %d out of range (0..%d)", t, len(cur.arr))
			}
			cur = cur.arr[i]
		default:
			return Value{}, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}
