package serde

import (
	"database/sql/driver"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/roach88/textwire/internal/wire"
)

// Text carries a Canonical value as a string scalar in every supported
// format. Declare struct fields as Text[T] to get the encoding without
// writing per-type marshalers.
type Text[T Canonical[T]] struct {
	V T
}

// String returns the canonical text of the wrapped value.
func (t Text[T]) String() string {
	return t.V.String()
}

func (t *Text[T]) decode(v wire.Value) error {
	out, err := DecodeText[T](v)
	if err != nil {
		return err
	}
	t.V = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Text[T]) MarshalJSON() ([]byte, error) {
	return wire.MarshalJSON(EncodeText(t.V))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text[T]) UnmarshalJSON(data []byte) error {
	v, err := wire.FromJSON(data)
	if err != nil {
		return err
	}
	return t.decode(v)
}

// MarshalYAML implements yaml.Marshaler.
func (t Text[T]) MarshalYAML() (any, error) {
	return wire.YAMLValue(EncodeText(t.V))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Text[T]) UnmarshalYAML(node *yaml.Node) error {
	v, err := wire.FromYAML(node)
	if err != nil {
		return err
	}
	return t.decode(v)
}

// MarshalText implements encoding.TextMarshaler. TOML uses it to write
// the value as a quoted string.
func (t Text[T]) MarshalText() ([]byte, error) {
	return []byte(t.V.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text input is
// always a string token.
func (t *Text[T]) UnmarshalText(text []byte) error {
	return t.decode(wire.String(text))
}

// UnmarshalTOML implements toml.Unmarshaler.
func (t *Text[T]) UnmarshalTOML(data any) error {
	v, err := wire.FromAny(data)
	if err != nil {
		return err
	}
	return t.decode(v)
}

// MarshalCBOR implements cbor.Marshaler.
func (t Text[T]) MarshalCBOR() ([]byte, error) {
	return wire.MarshalCBOR(EncodeText(t.V))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (t *Text[T]) UnmarshalCBOR(data []byte) error {
	v, err := wire.FromCBOR(data)
	if err != nil {
		return err
	}
	return t.decode(v)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t Text[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return wire.EncodeMsgpack(enc, EncodeText(t.V))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (t *Text[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := wire.FromMsgpack(dec)
	if err != nil {
		return err
	}
	return t.decode(v)
}

// Value implements driver.Valuer.
func (t Text[T]) Value() (driver.Value, error) {
	return t.V.String(), nil
}

// Scan implements sql.Scanner.
func (t *Text[T]) Scan(src any) error {
	v, err := wire.FromAny(src)
	if err != nil {
		return err
	}
	return t.decode(v)
}
