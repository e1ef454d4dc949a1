// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"math"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/internal/escape"
	"github.com/tailscale/hujson"
)

// The character classes of the JSON grammar.
var (
	wsChar      = jparse.Class("whitespace", jparse.One(' '), jparse.One('\r'), jparse.One('\n'), jparse.One('\t'))
	signChar    = jparse.Class("sign", jparse.One('+'), jparse.One('-'))
	minusChar   = jparse.Class("minus", jparse.One('-'))
	expChar     = jparse.Class("exponent marker", jparse.One('E'), jparse.One('e'))
	oneNineChar = jparse.Class("nonzero digit", jparse.Range('1', '9'))
	digitChar   = jparse.Class("digit", jparse.Range('0', '9'))
	dotChar     = jparse.Class("decimal point", jparse.One('.'))
	hexChar     = jparse.Class("hex digit", jparse.Range('0', '9'), jparse.Range('a', 'f'), jparse.Range('A', 'F'))
	quoteChar   = jparse.Class("quote", jparse.One('"'))
	lbraceChar  = jparse.Class("left brace", jparse.One('{'))
	rbraceChar  = jparse.Class("right brace", jparse.One('}'))
	lsquareChar = jparse.Class("left bracket", jparse.One('['))
	rsquareChar = jparse.Class("right bracket", jparse.One(']'))
	commaChar   = jparse.Class("comma", jparse.One(','))
)

// whitespace consumes zero or more whitespace characters. It is not
// significant in the value model.
var whitespace = jparse.Many(wsChar)

// addDigit folds ch into the decimal accumulator v, saturating at the
// maximum value instead of wrapping.
func addDigit(v uint64, ch rune) uint64 {
	const cutoff = (math.MaxUint64 - 9) / 10
	if v > cutoff {
		return math.MaxUint64
	}
	return v*10 + uint64(ch-'0')
}

func addDigit32(v int32, ch rune) int32 {
	const cutoff = (math.MaxInt32 - 9) / 10
	if v > cutoff {
		return math.MaxInt32
	}
	return v*10 + int32(ch-'0')
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// positiveInteger matches either a nonzero digit followed by more
// digits, or a single digit (covering "0").
var positiveInteger = jparse.Rule("positive integer",
	jparse.Alt(jparse.Seq(oneNineChar, jparse.Many1(digitChar)), digitChar),
	func(r jparse.Either[jparse.Pair[rune, []rune], rune]) uint64 {
		if !r.IsA {
			return uint64(r.B - '0')
		}
		v := uint64(r.A.First - '0')
		for _, ch := range r.A.Second {
			v = addDigit(v, ch)
		}
		return v
	})

var negativeInteger = jparse.Rule("negative integer",
	jparse.Seq(minusChar, positiveInteger),
	func(p jparse.Pair[rune, uint64]) int64 { return -clampInt64(p.Second) })

// integer matches the integer part of a number. Magnitudes beyond the
// representable range saturate at the extreme value.
var integer = jparse.Rule("integer",
	jparse.Alt(positiveInteger, negativeInteger),
	func(r jparse.Either[uint64, int64]) int64 {
		if r.IsA {
			return clampInt64(r.A)
		}
		return r.B
	})

type fracPart struct {
	mag uint64
	len uint32
}

// fraction matches an optional decimal point followed by digits. The
// digit count is kept alongside the magnitude so leading zeroes in the
// fraction survive ("007" is magnitude 7, length 3).
var fraction = jparse.Rule("fraction",
	jparse.Opt(jparse.Seq(dotChar, jparse.Many1(digitChar))),
	func(r jparse.Either[jparse.Pair[rune, []rune], jparse.Unit]) fracPart {
		if !r.IsA {
			return fracPart{}
		}
		var v uint64
		for _, ch := range r.A.Second {
			v = addDigit(v, ch)
		}
		return fracPart{mag: v, len: uint32(len(r.A.Second))}
	})

// exponent matches an optional E/e with an optional sign and digits.
var exponent = jparse.Rule("exponent",
	jparse.Opt(jparse.Seq(expChar, jparse.Seq(jparse.Opt(signChar), jparse.Many1(digitChar)))),
	func(r jparse.Either[jparse.Pair[rune, jparse.Pair[jparse.Either[rune, jparse.Unit], []rune]], jparse.Unit]) int32 {
		if !r.IsA {
			return 0
		}
		var v int32
		for _, ch := range r.A.Second.Second {
			v = addDigit32(v, ch)
		}
		if s := r.A.Second.First; s.IsA && s.A == '-' {
			v = -v
		}
		return v
	})

// number assembles integer, fraction, and exponent into a NumberValue.
// The components stay exact; conversion to floating point is left to
// NumberValue.Float64.
var number = jparse.Rule("number",
	jparse.Seq(integer, jparse.Seq(fraction, exponent)),
	func(p jparse.Pair[int64, jparse.Pair[fracPart, int32]]) NumberValue {
		return NumberValue{
			Integer:        p.First,
			Fraction:       p.Second.First.mag,
			FractionLength: p.Second.First.len,
			Exponent:       p.Second.Second,
		}
	})

// parseEscape matches the remainder of an escape sequence after the
// backslash: one of the fixed escape letters, passed through as
// written, or u followed by exactly four hex digits naming a Unicode
// scalar value. Surrogate code points are rejected.
func parseEscape(in jparse.Input, pos jparse.Position) (rune, jparse.Position, error) {
	ch, next, err := in.Next(pos)
	if err != nil {
		return 0, pos, jparse.AddReason(err, pos, "escape")
	}
	if escape.Letter(ch) {
		return ch, next, nil
	}
	if ch != 'u' {
		return 0, pos, jparse.ErrorAt(pos, "escape")
	}
	var digits [4]uint8
	cur := next
	for i := range digits {
		d, after, err := hexChar(in, cur)
		if err != nil {
			return 0, pos, jparse.AddReason(err, pos, "escape")
		}
		digits[i] = escape.HexValue(d)
		cur = after
	}
	out, ok := escape.Rune(digits[0], digits[1], digits[2], digits[3])
	if !ok {
		return 0, pos, jparse.ErrorAt(pos, "escape")
	}
	return out, cur, nil
}

// parseCharacter matches one character of a string body: an escape
// sequence after a backslash, a hard failure at an unescaped quote,
// or the character itself.
func parseCharacter(in jparse.Input, pos jparse.Position) (rune, jparse.Position, error) {
	ch, next, err := in.Next(pos)
	if err != nil {
		return 0, pos, jparse.AddReason(err, pos, "character")
	}
	switch ch {
	case '\\':
		out, end, err := parseEscape(in, next)
		if err != nil {
			return 0, pos, err
		}
		return out, end, nil
	case '"':
		return 0, pos, jparse.ErrorAt(pos, "character")
	default:
		return ch, next, nil
	}
}

var characters = jparse.Many[rune](parseCharacter)

// parseString matches a quoted string and yields its decoded
// characters.
func parseString(in jparse.Input, pos jparse.Position) ([]rune, jparse.Position, error) {
	_, next, err := quoteChar(in, pos)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "string")
	}
	chars, next, err := characters(in, next)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "string")
	}
	_, end, err := quoteChar(in, next)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "string")
	}
	return chars, end, nil
}

// parseMember matches a single "key": value member.
func parseMember(in jparse.Input, pos jparse.Position) (Member, jparse.Position, error) {
	_, next, err := whitespace(in, pos)
	if err != nil {
		return Member{}, pos, jparse.AddReason(err, pos, "member")
	}
	key, next, err := parseString(in, next)
	if err != nil {
		return Member{}, pos, jparse.AddReason(err, pos, "member")
	}
	_, next, err = whitespace(in, next)
	if err != nil {
		return Member{}, pos, jparse.AddReason(err, pos, "member")
	}
	ch, after, err := in.Next(next)
	if err != nil {
		return Member{}, pos, jparse.AddReason(err, pos, "member")
	}
	if ch != ':' {
		return Member{}, pos, jparse.ErrorAt(next, "colon").AddReason(pos, "member")
	}
	value, end, err := parseElement(in, after)
	if err != nil {
		return Member{}, pos, jparse.AddReason(err, pos, "member")
	}
	return Member{Key: string(key), Value: value}, end, nil
}

// parseMembers matches one or more comma-separated members.
func parseMembers(in jparse.Input, pos jparse.Position) ([]Member, jparse.Position, error) {
	m, next, err := parseMember(in, pos)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "members")
	}
	rest, end, err := jparse.Many(jparse.Seq(commaChar, jparse.Parser[Member](parseMember)))(in, next)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "members")
	}
	out := make([]Member, 0, 1+len(rest))
	out = append(out, m)
	for _, p := range rest {
		out = append(out, p.Second)
	}
	return out, end, nil
}

// parseObject matches an object: a brace pair enclosing members or
// only whitespace. An empty object yields no members.
func parseObject(in jparse.Input, pos jparse.Position) ([]Member, jparse.Position, error) {
	_, next, err := lbraceChar(in, pos)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "object")
	}
	members, after, merr := parseMembers(in, next)
	if merr == nil {
		_, end, err := rbraceChar(in, after)
		if err != nil {
			return nil, pos, jparse.AddReason(err, pos, "object")
		}
		return members, end, nil
	}

	// No members matched, so the body must be empty: whitespace only.
	// If the close brace is also missing, the members failure is the
	// more useful diagnostic, so that is the trail propagated.
	_, after, err = whitespace(in, next)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "object")
	}
	if _, end, err := rbraceChar(in, after); err == nil {
		return nil, end, nil
	}
	return nil, pos, jparse.AddReason(merr, pos, "object")
}

// parseElement matches a value with its surrounding whitespace.
func parseElement(in jparse.Input, pos jparse.Position) (Value, jparse.Position, error) {
	_, next, err := whitespace(in, pos)
	if err != nil {
		return Value{}, pos, jparse.AddReason(err, pos, "element")
	}
	v, next, err := parseValue(in, next)
	if err != nil {
		return Value{}, pos, jparse.AddReason(err, pos, "element")
	}
	_, end, err := whitespace(in, next)
	if err != nil {
		return Value{}, pos, jparse.AddReason(err, pos, "element")
	}
	return v, end, nil
}

// parseElements matches one or more comma-separated elements.
func parseElements(in jparse.Input, pos jparse.Position) ([]Value, jparse.Position, error) {
	v, next, err := parseElement(in, pos)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "elements")
	}
	rest, end, err := jparse.Many(jparse.Seq(commaChar, jparse.Parser[Value](parseElement)))(in, next)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "elements")
	}
	out := make([]Value, 0, 1+len(rest))
	out = append(out, v)
	for _, p := range rest {
		out = append(out, p.Second)
	}
	return out, end, nil
}

// parseArray matches an array: a bracket pair enclosing elements or
// only whitespace. An empty array yields no values.
func parseArray(in jparse.Input, pos jparse.Position) ([]Value, jparse.Position, error) {
	_, next, err := lsquareChar(in, pos)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "array")
	}
	elts, after, eerr := parseElements(in, next)
	if eerr == nil {
		_, end, err := rsquareChar(in, after)
		if err != nil {
			return nil, pos, jparse.AddReason(err, pos, "array")
		}
		return elts, end, nil
	}

	// Empty body, as for parseObject.
	_, after, err = whitespace(in, next)
	if err != nil {
		return nil, pos, jparse.AddReason(err, pos, "array")
	}
	if _, end, err := rsquareChar(in, after); err == nil {
		return nil, end, nil
	}
	return nil, pos, jparse.AddReason(eerr, pos, "array")
}

// parseValue matches a single value, trying in fixed priority order:
// object, array, string, number, then the constants null, true, and
// false by fixed-width lookahead. The lookahead has no boundary
// check: input such as "nullable" matches null and leaves "able"
// unconsumed for the caller to notice.
func parseValue(in jparse.Input, pos jparse.Position) (Value, jparse.Position, error) {
	obj, next, objErr := parseObject(in, pos)
	if objErr == nil {
		return Value{kind: Object, obj: obj}, next, nil
	}
	arr, next, arrErr := parseArray(in, pos)
	if arrErr == nil {
		return Value{kind: Array, arr: arr}, next, nil
	}
	str, next, strErr := parseString(in, pos)
	if strErr == nil {
		return Value{kind: String, str: str}, next, nil
	}
	if num, next, err := number(in, pos); err == nil {
		return Value{kind: Number, num: num}, next, nil
	}
	if text, next, err := in.NextRange(pos, 4); err == nil {
		switch text {
		case "null":
			return Value{kind: Null}, next, nil
		case "true":
			return Value{kind: Bool, bool: true}, next, nil
		}
		if text, next, err := in.NextRange(pos, 5); err == nil && text == "false" {
			return Value{kind: Bool, bool: false}, next, nil
		}
	}

	// Nothing matched. If an opening delimiter was present, the
	// diagnostic of the branch it selects explains the failure; the
	// other branches could never have matched.
	if ch, _, err := in.Next(pos); err == nil {
		switch ch {
		case '{':
			return Value{}, pos, jparse.AddReason(objErr, pos, "value")
		case '[':
			return Value{}, pos, jparse.AddReason(arrErr, pos, "value")
		case '"':
			return Value{}, pos, jparse.AddReason(strErr, pos, "value")
		}
	}
	return Value{}, pos, jparse.ErrorAt(pos, "value")
}

// Parse parses a single JSON element from in starting at pos, and
// returns it with the position after it. Parse does not require that
// the element reach the end of the input; callers that need a full
// document consumed must check the returned position themselves, or
// use ParseText. Parsing recurses on nested containers, so input
// nested deeply enough can exhaust the stack.
func Parse(in jparse.Input, pos jparse.Position) (Value, jparse.Position, error) {
	return parseElement(in, pos)
}

// ErrExtraInput is reported by ParseText when input remains after the
// first value and its surrounding whitespace.
var ErrExtraInput = errors.New("extra input after value")

// ParseText parses s as a single JSON document. If input remains
// after the value, the value is returned along with ErrExtraInput.
func ParseText(s string) (Value, error) {
	in := jparse.NewText(s)
	v, end, err := parseElement(in, jparse.Position{})
	if err != nil {
		return Value{}, err
	}
	if _, _, err := in.Next(end); err == nil {
		return v, ErrExtraInput
	}
	return v, nil
}

// MustParse parses s as a single JSON document, and panics if parsing
// fails. Use for program-fixed inputs and tests.
func MustParse(s string) Value {
	v, err := ParseText(s)
	if err != nil {
		panic(fmt.Sprintf("parse: %v", err))
	}
	return v
}

// ParseJWCC parses s as JSON With Commas and Comments: the input is
// standardized to plain JSON first, then parsed as by ParseText.
func ParseJWCC(s string) (Value, error) {
	std, err := hujson.Standardize([]byte(s))
	if err != nil {
		return Value{}, err
	}
	return ParseText(string(std))
}
