// Package unixtime encodes instants as decimal strings holding an
// integer count of units since the Unix epoch, at one of four fixed
// resolutions: seconds, milliseconds, microseconds or nanoseconds.
//
// Conversions go through a 128-bit-or-wider intermediate (math/big with
// explicit int128 bounds), so nanosecond counts far beyond int64 are
// exact. Encoding floors toward negative infinity; decoding rejects
// malformed text as a parse failure and out-of-domain instants as out of
// range, for every resolution. Nothing is clamped or wrapped.
//
// Timestamp[R] is the field wrapper, tagged by resolution at the type
// level:
//
//	type Event struct {
//	    At unixtime.Millis `json:"at"`
//	}
//
// encodes as {"at":"1700000000000"}.
package unixtime
