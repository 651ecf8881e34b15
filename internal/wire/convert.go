package wire

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// FromAny converts a generically decoded Go value into a Value.
//
// This is the ingestion path for decoders that hand over primitives
// rather than tokens: TOML's UnmarshalTOML, database/sql Scan, and the
// CBOR and MessagePack interface decoders. Integer widths collapse into
// Number text; []byte is treated as a string because SQL drivers return
// TEXT columns that way. Native datetimes (TOML, CBOR tag 0/1) become
// RFC 3339 strings, as YAML timestamps do in FromYAML.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case []byte:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case json.Number:
		return Number(val), nil
	case int:
		return Number(strconv.FormatInt(int64(val), 10)), nil
	case int8:
		return Number(strconv.FormatInt(int64(val), 10)), nil
	case int16:
		return Number(strconv.FormatInt(int64(val), 10)), nil
	case int32:
		return Number(strconv.FormatInt(int64(val), 10)), nil
	case int64:
		return Number(strconv.FormatInt(val, 10)), nil
	case uint:
		return Number(strconv.FormatUint(uint64(val), 10)), nil
	case uint8:
		return Number(strconv.FormatUint(uint64(val), 10)), nil
	case uint16:
		return Number(strconv.FormatUint(uint64(val), 10)), nil
	case uint32:
		return Number(strconv.FormatUint(uint64(val), 10)), nil
	case uint64:
		return Number(strconv.FormatUint(val, 10)), nil
	case float32:
		return Number(strconv.FormatFloat(float64(val), 'g', -1, 32)), nil
	case float64:
		return Number(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case *big.Int:
		if val == nil {
			return Null{}, nil
		}
		return Number(val.String()), nil
	case big.Int:
		return Number(val.String()), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			w, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = w
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			w, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = w
		}
		return obj, nil
	case time.Time:
		return String(val.Format(time.RFC3339Nano)), nil
	case map[any]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v (%T)", k, k)
			}
			w, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", key, err)
			}
			obj[key] = w
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToAny converts a scalar Value into the Go primitive most encoders
// accept: string for String, json.Number for Number. Other kinds are an
// error because codecs only ever emit scalars.
func ToAny(v Value) (any, error) {
	switch val := v.(type) {
	case String:
		return string(val), nil
	case Number:
		return json.Number(val), nil
	case Bool:
		return bool(val), nil
	case Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("cannot emit %s as a scalar", Kind(v))
	}
}
