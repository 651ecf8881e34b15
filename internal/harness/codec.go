package harness

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/textwire/internal/browser"
	"github.com/roach88/textwire/internal/serde"
	"github.com/roach88/textwire/internal/unixtime"
	"github.com/roach88/textwire/internal/wire"
)

// Clock supplies the instant "now" resolves to.
type Clock interface {
	Now() time.Time
}

// Codec adapts one wire codec to text in and text out.
type Codec struct {
	Name string

	// Decode reads a wire token and renders the result as text.
	Decode func(v wire.Value) (string, error)

	// Encode reads text input and renders the wire string.
	Encode func(input string, clock Clock) (string, error)
}

// Codec names.
const (
	CodecUnix        = "unix"
	CodecUnixMilli   = "unix_milli"
	CodecUnixMicro   = "unix_micro"
	CodecUnixNano    = "unix_nano"
	CodecBrowser     = "browser"
	CodecUUID        = "uuid"
	CodecFlexInt64   = "flex_int64"
	CodecFlexUint64  = "flex_uint64"
	CodecFlexFloat64 = "flex_float64"
)

var uuidBridge = serde.Bridge[uuid.UUID]{
	Format: uuid.UUID.String,
	Parse:  uuid.Parse,
}

var codecs = map[string]Codec{
	CodecUnix:        timestampCodec(CodecUnix, unixtime.Second{}),
	CodecUnixMilli:   timestampCodec(CodecUnixMilli, unixtime.Millisecond{}),
	CodecUnixMicro:   timestampCodec(CodecUnixMicro, unixtime.Microsecond{}),
	CodecUnixNano:    timestampCodec(CodecUnixNano, unixtime.Nanosecond{}),
	CodecBrowser:     browserCodec(),
	CodecUUID:        uuidCodec(),
	CodecFlexInt64:   flexibleCodec[int64](CodecFlexInt64),
	CodecFlexUint64:  flexibleCodec[uint64](CodecFlexUint64),
	CodecFlexFloat64: flexibleCodec[float64](CodecFlexFloat64),
}

// LookupCodec returns the codec registered under name.
func LookupCodec(name string) (Codec, bool) {
	c, ok := codecs[name]
	return c, ok
}

// Codecs returns the registered codec names, sorted.
func Codecs() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// InputError reports encode input the codec could not read.
type InputError struct {
	Codec string
	Input string
	Err   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: cannot read input %q: %v", e.Codec, e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies err for the trace: the decode error kind, or
// KindInvalidInput for anything else.
func ErrorKind(err error) string {
	if k, ok := serde.KindOf(err); ok {
		return string(k)
	}
	return KindInvalidInput
}

func timestampCodec(name string, r unixtime.Resolution) Codec {
	return Codec{
		Name: name,
		Decode: func(v wire.Value) (string, error) {
			t, err := unixtime.Decode(r, v)
			if err != nil {
				return "", err
			}
			return t.Format(time.RFC3339Nano), nil
		},
		Encode: func(input string, clock Clock) (string, error) {
			t, err := ParseInstant(input, clock)
			if err != nil {
				return "", &InputError{Codec: name, Input: input, Err: err}
			}
			return string(unixtime.Encode(r, t)), nil
		},
	}
}

// ParseInstant reads an RFC 3339 instant, or "now" from clock. A numeric
// offset can carry a four-digit year outside the encodable domain once
// normalized to UTC; such instants are rejected here.
func ParseInstant(input string, clock Clock) (time.Time, error) {
	var t time.Time
	if input == "now" {
		t = clock.Now()
	} else {
		var err error
		if t, err = time.Parse(time.RFC3339Nano, input); err != nil {
			return time.Time{}, err
		}
	}
	if !unixtime.InRange(t) {
		return time.Time{}, fmt.Errorf("instant %s is outside %s..%s", input,
			unixtime.MinInstant.Format(time.RFC3339Nano), unixtime.MaxInstant.Format(time.RFC3339Nano))
	}
	return t, nil
}

func browserCodec() Codec {
	return Codec{
		Name: CodecBrowser,
		Decode: func(v wire.Value) (string, error) {
			t, err := serde.DecodeText[browser.Type](v)
			if err != nil {
				return "", err
			}
			return t.String(), nil
		},
		Encode: func(input string, _ Clock) (string, error) {
			t, err := serde.DecodeText[browser.Type](wire.String(input))
			if err != nil {
				return "", err
			}
			return string(serde.EncodeText(t)), nil
		},
	}
}

func uuidCodec() Codec {
	return Codec{
		Name: CodecUUID,
		Decode: func(v wire.Value) (string, error) {
			id, err := uuidBridge.Decode(v)
			if err != nil {
				return "", err
			}
			return id.String(), nil
		},
		Encode: func(input string, _ Clock) (string, error) {
			id, err := uuidBridge.Decode(wire.String(input))
			if err != nil {
				return "", err
			}
			return string(uuidBridge.Encode(id)), nil
		},
	}
}

func flexibleCodec[T serde.Numeric](name string) Codec {
	return Codec{
		Name: name,
		Decode: func(v wire.Value) (string, error) {
			n, err := serde.DecodeFlexible[T](v)
			if err != nil {
				return "", err
			}
			return serde.Flexible[T]{V: n}.String(), nil
		},
		Encode: func(input string, _ Clock) (string, error) {
			n, err := serde.DecodeFlexible[T](wire.String(input))
			if err != nil {
				return "", err
			}
			return serde.Flexible[T]{V: n}.String(), nil
		},
	}
}
