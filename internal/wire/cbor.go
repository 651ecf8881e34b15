package wire

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode decodes into map[string]any when the target is any, so
// FromAny sees the same shapes JSON produces.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
}

// FromCBOR decodes one CBOR data item into a Value.
// Text strings become String and integers or floats become Number.
// Byte strings are reported as String as well, mirroring FromAny.
func FromCBOR(data []byte) (Value, error) {
	var raw any
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return FromAny(raw)
}

// MarshalCBOR encodes a scalar Value as a single CBOR data item.
// Number tokens are emitted as integers when they fit, otherwise as
// float64.
func MarshalCBOR(v Value) ([]byte, error) {
	out, err := nativeScalar(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(out)
}
