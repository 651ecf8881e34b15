package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf16"
)

// Value is a sealed interface representing a single decoded wire token.
// Only Null, String, Number, Bool, Array, and Object implement this.
type Value interface {
	wireValue() // Sealed - only these types implement it
}

// Null represents a null token.
type Null struct{}

func (Null) wireValue() {}

// String represents a string token.
type String string

func (String) wireValue() {}

// Number represents a native numeric token.
// The decimal text is kept verbatim so the target type decides
// how to read it; no float64 round-trip ever happens here.
type Number string

func (Number) wireValue() {}

// IsInteger reports whether the token is plain decimal integer text: an
// optional sign followed by digits. Fractions, exponents and the
// non-finite spellings NaN, +Inf and -Inf are not integers.
func (n Number) IsInteger() bool {
	s := string(n)
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Bool represents a boolean token.
type Bool bool

func (Bool) wireValue() {}

// Array represents a sequence of values.
type Array []Value

func (Array) wireValue() {}

// Object represents a map of string keys to values.
// Use SortedKeys() for deterministic iteration.
type Object map[string]Value

func (Object) wireValue() {}

// Kind names for diagnostics.
const (
	KindNull   = "null"
	KindString = "string"
	KindNumber = "number"
	KindBool   = "bool"
	KindArray  = "array"
	KindObject = "object"
)

// Kind returns the tag name of v.
func Kind(v Value) string {
	switch v.(type) {
	case Null, nil:
		return KindNull
	case String:
		return KindString
	case Number:
		return KindNumber
	case Bool:
		return KindBool
	case Array:
		return KindArray
	case Object:
		return KindObject
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Text returns the textual payload of a String or Number token.
// The second result is false for every other kind.
func Text(v Value) (string, bool) {
	switch val := v.(type) {
	case String:
		return string(val), true
	case Number:
		return string(val), true
	default:
		return "", false
	}
}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// compareKeysRFC8785 compares strings using UTF-16 code unit ordering
// as required by RFC 8785. Go's default string comparison uses UTF-8
// which produces a different order outside the BMP.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}

// FromJSON decodes a single JSON document into a Value.
// Numbers keep their literal text; nothing is coerced between kinds.
func FromJSON(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty JSON value")
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON value: %q", data)
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return String(s), nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return Bool(b), nil

	case 'n':
		if string(data) != "null" {
			return nil, fmt.Errorf("invalid JSON literal: %s", data)
		}
		return Null{}, nil

	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		arr := make(Array, len(raw))
		for i, elem := range raw {
			v, err := FromJSON(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = v
		}
		return arr, nil

	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		obj := make(Object, len(raw))
		for k, elem := range raw {
			v, err := FromJSON(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = v
		}
		return obj, nil

	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return nil, err
		}
		return Number(n), nil
	}
}

// MarshalJSON encodes a Value as JSON.
// Numbers are written verbatim.
func MarshalJSON(v Value) ([]byte, error) {
	switch val := v.(type) {
	case Null, nil:
		return []byte("null"), nil
	case String:
		return json.Marshal(string(val))
	case Number:
		if !json.Valid([]byte(val)) {
			return nil, fmt.Errorf("invalid number token %q", string(val))
		}
		return []byte(val), nil
	case Bool:
		return json.Marshal(bool(val))
	case Array:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := MarshalJSON(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case Object:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range val.SortedKeys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, fmt.Errorf("marshal key %q: %w", k, err)
			}
			buf.Write(kb)
			buf.WriteByte(':')
			b, err := MarshalJSON(val[k])
			if err != nil {
				return nil, fmt.Errorf("marshal value for key %q: %w", k, err)
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown wire value type: %T", v)
	}
}
