package serde

import (
	"database/sql/driver"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/roach88/textwire/internal/wire"
)

// Flexible holds a numeric field that producers send either as a string
// or as a native number. It always encodes as the decimal string, which
// keeps 64-bit integers exact through JSON number handling that goes via
// float64.
type Flexible[T Numeric] struct {
	V T
}

// String returns the decimal text of the wrapped value.
func (f Flexible[T]) String() string {
	return formatNumeric(f.V)
}

func (f Flexible[T]) encode() wire.String {
	return wire.String(formatNumeric(f.V))
}

func (f *Flexible[T]) decode(v wire.Value) error {
	out, err := DecodeFlexible[T](v)
	if err != nil {
		return err
	}
	f.V = out
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Flexible[T]) MarshalJSON() ([]byte, error) {
	return wire.MarshalJSON(f.encode())
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flexible[T]) UnmarshalJSON(data []byte) error {
	v, err := wire.FromJSON(data)
	if err != nil {
		return err
	}
	return f.decode(v)
}

// MarshalYAML implements yaml.Marshaler.
func (f Flexible[T]) MarshalYAML() (any, error) {
	return wire.YAMLValue(f.encode())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flexible[T]) UnmarshalYAML(node *yaml.Node) error {
	v, err := wire.FromYAML(node)
	if err != nil {
		return err
	}
	return f.decode(v)
}

// MarshalText implements encoding.TextMarshaler.
func (f Flexible[T]) MarshalText() ([]byte, error) {
	return []byte(formatNumeric(f.V)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flexible[T]) UnmarshalText(text []byte) error {
	return f.decode(wire.String(text))
}

// UnmarshalTOML implements toml.Unmarshaler.
func (f *Flexible[T]) UnmarshalTOML(data any) error {
	v, err := wire.FromAny(data)
	if err != nil {
		return err
	}
	return f.decode(v)
}

// MarshalCBOR implements cbor.Marshaler.
func (f Flexible[T]) MarshalCBOR() ([]byte, error) {
	return wire.MarshalCBOR(f.encode())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (f *Flexible[T]) UnmarshalCBOR(data []byte) error {
	v, err := wire.FromCBOR(data)
	if err != nil {
		return err
	}
	return f.decode(v)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (f Flexible[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return wire.EncodeMsgpack(enc, f.encode())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (f *Flexible[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := wire.FromMsgpack(dec)
	if err != nil {
		return err
	}
	return f.decode(v)
}

// Value implements driver.Valuer.
func (f Flexible[T]) Value() (driver.Value, error) {
	return formatNumeric(f.V), nil
}

// Scan implements sql.Scanner. INTEGER and REAL columns arrive as
// native numbers, TEXT columns as strings; both are accepted.
func (f *Flexible[T]) Scan(src any) error {
	v, err := wire.FromAny(src)
	if err != nil {
		return err
	}
	return f.decode(v)
}
