package wire

import (
	"github.com/vmihailenco/msgpack/v5"
)

// FromMsgpack reads one MessagePack value from dec.
// DecodeInterfaceLoose widens integers to int64/uint64 and turns
// binary data into strings, which FromAny then tags.
func FromMsgpack(dec *msgpack.Decoder) (Value, error) {
	raw, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	return FromAny(raw)
}

// EncodeMsgpack writes a scalar Value to enc.
func EncodeMsgpack(enc *msgpack.Encoder, v Value) error {
	if s, ok := v.(String); ok {
		return enc.EncodeString(string(s))
	}
	out, err := nativeScalar(v)
	if err != nil {
		return err
	}
	return enc.Encode(out)
}
