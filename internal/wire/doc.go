// Package wire models the scalar tokens exchanged with structured-data
// formats (JSON, YAML, TOML, CBOR, MessagePack, SQL columns).
//
// A Value is a sealed tagged union. Decoders in the serde and unixtime
// packages inspect the tag and never guess: a string token is a String,
// a native number token is a Number holding its decimal text, and
// everything else is reported by its Kind.
//
// wire imports nothing internal. All codec packages import wire.
package wire
