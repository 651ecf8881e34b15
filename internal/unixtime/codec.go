package unixtime

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/roach88/textwire/internal/serde"
	"github.com/roach88/textwire/internal/wire"
)

// The representable instant domain. Equality is offset-free; decoded
// instants are always UTC.
var (
	MinInstant = time.Date(-9999, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 999_999_999, time.UTC)
)

var (
	nanosPerSecond = big.NewInt(1_000_000_000)

	// int128 bounds: [-2^127, 2^127-1]
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

	minNanos = unixNanos(MinInstant)
	maxNanos = unixNanos(MaxInstant)
)

var (
	errInt128Overflow = errors.New("nanosecond count overflows int128")
	errOutsideDomain  = errors.New("instant outside -9999-01-01T00:00:00Z..9999-12-31T23:59:59.999999999Z")
)

// InRange reports whether t lies inside the representable domain.
func InRange(t time.Time) bool {
	return !t.Before(MinInstant) && !t.After(MaxInstant)
}

// unixNanos returns the signed nanosecond count of t since the epoch.
func unixNanos(t time.Time) *big.Int {
	n := new(big.Int).Mul(big.NewInt(t.Unix()), nanosPerSecond)
	return n.Add(n, big.NewInt(int64(t.Nanosecond())))
}

// fromUnixNanos is the inverse of unixNanos. DivMod is Euclidean, so the
// nanosecond remainder is always in [0, 1e9).
func fromUnixNanos(n *big.Int) time.Time {
	sec, nsec := new(big.Int).DivMod(n, nanosPerSecond, new(big.Int))
	return time.Unix(sec.Int64(), nsec.Int64()).UTC()
}

func fitsInt128(n *big.Int) bool {
	return n.Cmp(minInt128) >= 0 && n.Cmp(maxInt128) <= 0
}

func targetName(r Resolution) string {
	return fmt.Sprintf("unix timestamp (%s)", r)
}

// Encode renders t as the decimal count of r-units since the epoch,
// flooring any sub-unit remainder toward negative infinity.
//
// t must lie inside [MinInstant, MaxInstant]; anything else is a
// programming error and panics.
func Encode(r Resolution, t time.Time) wire.String {
	if !InRange(t) {
		panic(fmt.Sprintf("unixtime: cannot encode %s: %v", t.Format(time.RFC3339Nano), errOutsideDomain))
	}
	// For a positive divisor Euclidean division is floor division.
	units := new(big.Int).Div(unixNanos(t), big.NewInt(r.NanosPerUnit()))
	return wire.String(units.String())
}

// Decode parses a string token holding a count of r-units since the
// epoch. The count is read as an int128; the product with r's unit size
// is checked against int128 and then against the instant domain.
func Decode(r Resolution, v wire.Value) (time.Time, error) {
	target := targetName(r)

	s, ok := v.(wire.String)
	if !ok {
		return time.Time{}, serde.NewTypeMismatch(target, v, wire.KindString)
	}
	raw := string(s)

	units, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return time.Time{}, serde.NewParseFailure(target, raw, strconv.ErrSyntax)
	}
	if !fitsInt128(units) {
		return time.Time{}, serde.NewParseFailure(target, raw, strconv.ErrRange)
	}

	nanos := units.Mul(units, big.NewInt(r.NanosPerUnit()))
	if !fitsInt128(nanos) {
		return time.Time{}, serde.NewOutOfRange(target, raw, errInt128Overflow)
	}
	if nanos.Cmp(minNanos) < 0 || nanos.Cmp(maxNanos) > 0 {
		return time.Time{}, serde.NewOutOfRange(target, raw, errOutsideDomain)
	}

	return fromUnixNanos(nanos), nil
}

// Rescale converts a count of from-units into a count of to-units.
// Converting to a coarser resolution floors.
func Rescale(from, to Resolution, text string) (string, error) {
	t, err := Decode(from, wire.String(text))
	if err != nil {
		return "", err
	}
	return string(Encode(to, t)), nil
}
