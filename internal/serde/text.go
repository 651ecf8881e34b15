package serde

import (
	"fmt"

	"github.com/roach88/textwire/internal/wire"
)

// Canonical is the capability a type provides to travel as a string
// scalar: a total rendering and the matching parser. Implementations
// must satisfy ParseText(v.String()) == v for every value they intend
// to be representable.
//
// ParseText is called on the zero value of T.
type Canonical[T any] interface {
	fmt.Stringer
	ParseText(s string) (T, error)
}

// EncodeText renders v as a string scalar. It always succeeds.
func EncodeText[T fmt.Stringer](v T) wire.String {
	return wire.String(v.String())
}

// DecodeText parses a string scalar with T's canonical parser.
// Any other token kind is a type mismatch; text the parser rejects is
// an invalid value carrying the parser's error as the cause.
func DecodeText[T Canonical[T]](v wire.Value) (T, error) {
	var zero T
	s, ok := v.(wire.String)
	if !ok {
		return zero, NewTypeMismatch(TypeName[T](), v, wire.KindString)
	}
	out, err := zero.ParseText(string(s))
	if err != nil {
		return zero, NewInvalidValue(TypeName[T](), string(s), err)
	}
	return out, nil
}

// Bridge is the canonical-string bridge in function form, for types
// that cannot carry methods (third-party types such as uuid.UUID).
type Bridge[T any] struct {
	Format func(T) string
	Parse  func(string) (T, error)
}

// BridgeOf returns the function-form bridge of a Canonical type.
func BridgeOf[T Canonical[T]]() Bridge[T] {
	var zero T
	return Bridge[T]{
		Format: func(v T) string { return v.String() },
		Parse:  zero.ParseText,
	}
}

// Encode renders v as a string scalar.
func (b Bridge[T]) Encode(v T) wire.String {
	return wire.String(b.Format(v))
}

// Decode parses a string scalar with the bridge's parser.
func (b Bridge[T]) Decode(v wire.Value) (T, error) {
	var zero T
	s, ok := v.(wire.String)
	if !ok {
		return zero, NewTypeMismatch(TypeName[T](), v, wire.KindString)
	}
	out, err := b.Parse(string(s))
	if err != nil {
		return zero, NewInvalidValue(TypeName[T](), string(s), err)
	}
	return out, nil
}
