package wire

import (
	"fmt"
	"strconv"
)

// nativeScalar turns a scalar Value into the Go value binary encoders
// (CBOR, MessagePack) understand. Number text is parsed as int64, then
// uint64, then float64.
func nativeScalar(v Value) (any, error) {
	switch val := v.(type) {
	case String:
		return string(val), nil
	case Bool:
		return bool(val), nil
	case Null:
		return nil, nil
	case Number:
		s := string(val)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number token %q: %w", s, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("cannot emit %s as a scalar", Kind(v))
	}
}
