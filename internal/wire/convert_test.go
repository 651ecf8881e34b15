package wire

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAny(t *testing.T) {
	huge, ok := new(big.Int).SetString("-170000000000000000000", 10)
	require.True(t, ok)

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"string", "1700000000", String("1700000000")},
		{"bytes", []byte("chrome"), String("chrome")},
		{"bool", true, Bool(true)},
		{"int", 42, Number("42")},
		{"int8", int8(-8), Number("-8")},
		{"int64", int64(-1), Number("-1")},
		{"uint16", uint16(65535), Number("65535")},
		{"uint64 max", uint64(18446744073709551615), Number("18446744073709551615")},
		{"float64", 1.5, Number("1.5")},
		{"float32", float32(0.25), Number("0.25")},
		{"json number", json.Number("7"), Number("7")},
		{"big int", huge, Number("-170000000000000000000")},
		{"value passthrough", String("x"), String("x")},
		{"slice", []any{"a", int64(1)}, Array{String("a"), Number("1")}},
		{"map", map[string]any{"k": false}, Object{"k": Bool(false)}},
		{"generic map", map[any]any{"k": "v"}, Object{"k": String("v")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromAnyErrors(t *testing.T) {
	_, err := FromAny(struct{}{})
	assert.Error(t, err)

	_, err = FromAny(map[any]any{1: "v"})
	assert.Error(t, err)

	_, err = FromAny([]any{complex(1, 2)})
	assert.Error(t, err)
}

func TestToAny(t *testing.T) {
	got, err := ToAny(String("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	got, err = ToAny(Number("12"))
	require.NoError(t, err)
	assert.Equal(t, json.Number("12"), got)

	_, err = ToAny(Array{})
	assert.Error(t, err)
}
