package unixtime

import (
	"database/sql/driver"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/roach88/textwire/internal/wire"
)

// Timestamp is an instant that serializes as a decimal count of R-units
// since the Unix epoch. The zero Timestamp encodes 0001-01-01T00:00:00Z.
type Timestamp[R Resolution] struct {
	Instant time.Time
}

// Per-resolution field types.
type (
	Seconds = Timestamp[Second]
	Millis  = Timestamp[Millisecond]
	Micros  = Timestamp[Microsecond]
	Nanos   = Timestamp[Nanosecond]
)

// At wraps t.
func At[R Resolution](t time.Time) Timestamp[R] {
	return Timestamp[R]{Instant: t}
}

// Resolution returns R.
func (ts Timestamp[R]) Resolution() Resolution {
	var r R
	return r
}

// Time returns the wrapped instant.
func (ts Timestamp[R]) Time() time.Time {
	return ts.Instant
}

// Equal reports whether both timestamps denote the same instant.
func (ts Timestamp[R]) Equal(other Timestamp[R]) bool {
	return ts.Instant.Equal(other.Instant)
}

// String returns the encoded unit count.
func (ts Timestamp[R]) String() string {
	return string(ts.encode())
}

func (ts Timestamp[R]) encode() wire.String {
	return Encode(ts.Resolution(), ts.Instant)
}

func (ts *Timestamp[R]) decode(v wire.Value) error {
	t, err := Decode(ts.Resolution(), v)
	if err != nil {
		return err
	}
	ts.Instant = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp[R]) MarshalJSON() ([]byte, error) {
	return wire.MarshalJSON(ts.encode())
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp[R]) UnmarshalJSON(data []byte) error {
	v, err := wire.FromJSON(data)
	if err != nil {
		return err
	}
	return ts.decode(v)
}

// MarshalYAML implements yaml.Marshaler.
func (ts Timestamp[R]) MarshalYAML() (any, error) {
	return wire.YAMLValue(ts.encode())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ts *Timestamp[R]) UnmarshalYAML(node *yaml.Node) error {
	v, err := wire.FromYAML(node)
	if err != nil {
		return err
	}
	return ts.decode(v)
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp[R]) MarshalText() ([]byte, error) {
	return []byte(ts.encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp[R]) UnmarshalText(text []byte) error {
	return ts.decode(wire.String(text))
}

// UnmarshalTOML implements toml.Unmarshaler. A bare TOML integer is a
// type mismatch; a TOML datetime arrives as RFC 3339 text and fails to
// parse.
func (ts *Timestamp[R]) UnmarshalTOML(data any) error {
	v, err := wire.FromAny(data)
	if err != nil {
		return err
	}
	return ts.decode(v)
}

// MarshalCBOR implements cbor.Marshaler.
func (ts Timestamp[R]) MarshalCBOR() ([]byte, error) {
	return wire.MarshalCBOR(ts.encode())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (ts *Timestamp[R]) UnmarshalCBOR(data []byte) error {
	v, err := wire.FromCBOR(data)
	if err != nil {
		return err
	}
	return ts.decode(v)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (ts Timestamp[R]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return wire.EncodeMsgpack(enc, ts.encode())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (ts *Timestamp[R]) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := wire.FromMsgpack(dec)
	if err != nil {
		return err
	}
	return ts.decode(v)
}

// Value implements driver.Valuer. Store timestamps in TEXT columns.
func (ts Timestamp[R]) Value() (driver.Value, error) {
	return string(ts.encode()), nil
}

// Scan implements sql.Scanner.
func (ts *Timestamp[R]) Scan(src any) error {
	v, err := wire.FromAny(src)
	if err != nil {
		return err
	}
	return ts.decode(v)
}
