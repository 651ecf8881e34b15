package serde

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/roach88/textwire/internal/wire"
)

// Integer is the set of Go integer kinds the flexible decoder reads.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of Go floating-point kinds the flexible decoder reads.
type Float interface {
	~float32 | ~float64
}

// Numeric is the target constraint of DecodeFlexible.
type Numeric interface {
	Integer | Float
}

// DecodeFlexible reads a numeric field that arrives either as a string
// token or as a native number token.
//
// A string is parsed with the strconv parser for T's kind and width;
// strconv is authoritative, so no trimming, separators or other
// leniency is applied, and any rejection is a parse failure. A number is
// decoded natively: a fractional, exponent or non-finite token into an
// integer T is a type mismatch and a magnitude T cannot hold is out of range. Every
// other token kind is a type mismatch.
func DecodeFlexible[T Numeric](v wire.Value) (T, error) {
	switch val := v.(type) {
	case wire.String:
		out, err := parseNumeric[T](string(val))
		if err != nil {
			var zero T
			return zero, NewParseFailure(TypeName[T](), string(val), err)
		}
		return out, nil

	case wire.Number:
		return decodeNumber[T](val)

	default:
		var zero T
		return zero, NewTypeMismatch(TypeName[T](), v, wire.KindString, wire.KindNumber)
	}
}

// parseNumeric parses s into T using the width of T's underlying kind.
func parseNumeric[T Numeric](s string) (T, error) {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, typ.Bits())
		return T(i), err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, typ.Bits())
		return T(u), err
	default:
		f, err := strconv.ParseFloat(s, typ.Bits())
		return T(f), err
	}
}

// decodeNumber is the native numeric path: the token is already known
// to be a number, so the only failures are shape and range.
func decodeNumber[T Numeric](n wire.Number) (T, error) {
	var zero T
	target := TypeName[T]()
	raw := string(n)
	kind := reflect.TypeFor[T]().Kind()

	isFloat := kind == reflect.Float32 || kind == reflect.Float64
	if !isFloat && !n.IsInteger() {
		return zero, &DecodeError{
			Kind:     KindTypeMismatch,
			Target:   target,
			Got:      "non-integer number",
			Expected: []string{"integer"},
			Raw:      raw,
		}
	}

	isUnsigned := kind >= reflect.Uint && kind <= reflect.Uint64
	if isUnsigned && strings.HasPrefix(raw, "-") {
		return zero, NewOutOfRange(target, raw, fmt.Errorf("negative value for unsigned type"))
	}

	out, err := parseNumeric[T](raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, NewOutOfRange(target, raw, err)
		}
		return zero, NewParseFailure(target, raw, err)
	}
	return out, nil
}

// formatNumeric renders v as the decimal text parseNumeric reads back.
func formatNumeric[T Numeric](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}
}
