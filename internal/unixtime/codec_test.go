package unixtime

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/textwire/internal/serde"
	"github.com/roach88/textwire/internal/wire"
)

const (
	maxInt128Text = "170141183460469231731687303715884105727"
	overInt128    = "170141183460469231731687303715884105728"
	minInt128Text = "-170141183460469231731687303715884105728"
)

func TestEncodeResolutions(t *testing.T) {
	instant := time.Unix(1_700_000_000, 0)

	tests := []struct {
		res  Resolution
		want wire.String
	}{
		{Second{}, "1700000000"},
		{Millisecond{}, "1700000000000"},
		{Microsecond{}, "1700000000000000"},
		{Nanosecond{}, "1700000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.res.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.res, instant))
		})
	}
}

func TestEncodeFloors(t *testing.T) {
	tests := []struct {
		name    string
		res     Resolution
		instant time.Time
		want    wire.String
	}{
		{"half second", Second{}, time.Unix(1_700_000_000, 500_000_000), "1700000000"},
		{"sub-milli", Millisecond{}, time.Unix(1_700_000_000, 999_999), "1700000000000"},
		{"negative half second", Second{}, time.Unix(-1, 500_000_000), "-1"},
		{"negative sub-micro", Microsecond{}, time.Unix(0, -1), "-1"},
		{"epoch", Nanosecond{}, time.Unix(0, 0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.res, tt.instant))
		})
	}
}

func TestEncodeZeroTime(t *testing.T) {
	assert.Equal(t, wire.String("-62135596800"), Encode(Second{}, time.Time{}))
}

func TestEncodeDomainBounds(t *testing.T) {
	assert.Equal(t, wire.String("253402300799"), Encode(Second{}, MaxInstant))
	assert.Equal(t, wire.String("253402300799999999999"), Encode(Nanosecond{}, MaxInstant))

	assert.Panics(t, func() { Encode(Second{}, MaxInstant.Add(time.Nanosecond)) })
	assert.Panics(t, func() { Encode(Millisecond{}, MinInstant.Add(-time.Nanosecond)) })
	assert.NotPanics(t, func() { Encode(Nanosecond{}, MinInstant) })
}

func TestDecode(t *testing.T) {
	tests := []struct {
		res  Resolution
		text string
		want time.Time
	}{
		{Second{}, "1700000000", time.Unix(1_700_000_000, 0)},
		{Second{}, "-1", time.Unix(-1, 0)},
		{Second{}, "+5", time.Unix(5, 0)},
		{Millisecond{}, "1700000000123", time.Unix(1_700_000_000, 123_000_000)},
		{Millisecond{}, "-1", time.Unix(-1, 999_000_000)},
		{Microsecond{}, "1700000000000001", time.Unix(1_700_000_000, 1_000)},
		{Nanosecond{}, "1700000000000000001", time.Unix(1_700_000_000, 1)},
		{Nanosecond{}, "253402300799999999999", MaxInstant},
	}

	for _, tt := range tests {
		t.Run(tt.res.String()+"/"+tt.text, func(t *testing.T) {
			got, err := Decode(tt.res, wire.String(tt.text))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	for _, v := range []wire.Value{wire.Bool(true), wire.Number("1700000000"), wire.Null{}, wire.Array{}, wire.Object{}} {
		for _, res := range Resolutions() {
			_, err := Decode(res, v)
			assert.True(t, serde.IsTypeMismatch(err), "%s %s: got %v", res, wire.Kind(v), err)
		}
	}
}

func TestDecodeParseFailure(t *testing.T) {
	inputs := []string{"not_a_number", "", " 1", "1.5", "1e3", "0x10", "1_000", "-", overInt128}

	for _, in := range inputs {
		for _, res := range Resolutions() {
			_, err := Decode(res, wire.String(in))
			require.Error(t, err)
			assert.True(t, serde.IsParseFailure(err), "%s %q: got %v", res, in, err)

			var de *serde.DecodeError
			require.ErrorAs(t, err, &de)
			assert.NotNil(t, de.Cause)
			assert.Equal(t, in, de.Raw)
		}
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	maxSec, err := strconv.ParseInt(string(Encode(Second{}, MaxInstant)), 10, 64)
	require.NoError(t, err)
	minSec, err := strconv.ParseInt(string(Encode(Second{}, MinInstant)), 10, 64)
	require.NoError(t, err)

	tests := []struct {
		res  Resolution
		text string
	}{
		{Second{}, strconv.FormatInt(maxSec+1, 10)},
		{Second{}, strconv.FormatInt(minSec-1, 10)},
		{Millisecond{}, fmt.Sprintf("%d000", maxSec+1)},
		{Microsecond{}, "9223372036854775807000"},
		{Nanosecond{}, "253402300800000000000"},
		{Nanosecond{}, maxInt128Text},
		{Nanosecond{}, minInt128Text},
		{Millisecond{}, maxInt128Text},
		{Microsecond{}, minInt128Text},
		{Second{}, "-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.res.String()+"/"+tt.text, func(t *testing.T) {
			_, err := Decode(tt.res, wire.String(tt.text))
			assert.True(t, serde.IsOutOfRange(err), "got %v", err)
		})
	}
}

func TestDecodeDomainEdges(t *testing.T) {
	for _, res := range Resolutions() {
		t.Run(res.String(), func(t *testing.T) {
			got, err := Decode(res, Encode(res, MinInstant))
			require.NoError(t, err)
			assert.True(t, MinInstant.Equal(got))

			got, err = Decode(res, Encode(res, MaxInstant))
			require.NoError(t, err)
			assert.True(t, InRange(got))
			assert.False(t, got.After(MaxInstant))
		})
	}
}

func TestRoundTripFloorsOnce(t *testing.T) {
	instants := []time.Time{
		time.Unix(0, 0),
		time.Unix(1_700_000_000, 123_456_789),
		time.Unix(-1, 500_000_000),
		time.Unix(-86_400*365*3000, 7),
		time.Date(1969, time.December, 31, 23, 59, 59, 999_999_999, time.UTC),
		MinInstant,
		MaxInstant,
	}

	for _, res := range Resolutions() {
		unit := time.Duration(res.NanosPerUnit())
		for _, in := range instants {
			enc := Encode(res, in)
			got, err := Decode(res, enc)
			require.NoError(t, err, "%s %s", res, in)

			assert.False(t, got.After(in), "%s %s: decoded %s after input", res, in, got)
			assert.Less(t, in.Sub(got), unit, "%s %s", res, in)
			assert.Equal(t, enc, Encode(res, got), "%s %s", res, in)
		}
	}
}

func TestRoundTripExact(t *testing.T) {
	for _, res := range Resolutions() {
		for _, text := range []string{"0", "1", "-1", "1700000000", "-1700000000"} {
			got, err := Decode(res, wire.String(text))
			require.NoError(t, err)
			assert.Equal(t, wire.String(text), Encode(res, got), "%s %s", res, text)
		}
	}
}

func TestRescale(t *testing.T) {
	tests := []struct {
		from, to Resolution
		in, want string
	}{
		{Millisecond{}, Second{}, "1700000000999", "1700000000"},
		{Millisecond{}, Second{}, "-1", "-1"},
		{Second{}, Nanosecond{}, "1", "1000000000"},
		{Second{}, Second{}, "42", "42"},
		{Nanosecond{}, Microsecond{}, "1700000000000000001", "1700000000000000"},
	}

	for _, tt := range tests {
		got, err := Rescale(tt.from, tt.to, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s %s", tt.from, tt.to, tt.in)
	}

	_, err := Rescale(Second{}, Millisecond{}, "x")
	assert.True(t, serde.IsParseFailure(err))
}

func TestParseResolution(t *testing.T) {
	tests := map[string]Resolution{
		"s":            Second{},
		"seconds":      Second{},
		"MS":           Millisecond{},
		"millis":       Millisecond{},
		"us":           Microsecond{},
		"µs":           Microsecond{},
		"microseconds": Microsecond{},
		"ns":           Nanosecond{},
		"Nanosecond":   Nanosecond{},
	}

	for in, want := range tests {
		got, err := ParseResolution(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseResolution("minutes")
	assert.Error(t, err)
}

func TestResolutionsOrder(t *testing.T) {
	res := Resolutions()
	require.Len(t, res, 4)
	for i := 1; i < len(res); i++ {
		assert.Greater(t, res[i-1].NanosPerUnit(), res[i].NanosPerUnit())
	}
}
