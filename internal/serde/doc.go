// Package serde adapts domain types to wire scalars through their
// textual form.
//
// Two generic adapters live here:
//
//   - The canonical-string bridge (EncodeText, DecodeText, Bridge, Text)
//     carries any type with a canonical rendering and parser as a single
//     string scalar. A type adopts it once by implementing Canonical.
//   - The flexible scalar decoder (DecodeFlexible, Flexible) reads a
//     numeric field that producers send either as a string or as a
//     native number, and normalizes both to one Go type.
//
// Text and Flexible are field wrappers. They implement the hooks of
// encoding/json, gopkg.in/yaml.v3, github.com/BurntSushi/toml,
// github.com/fxamacker/cbor/v2, github.com/vmihailenco/msgpack/v5 and
// database/sql, so a struct field declared as Text[browser.Type] or
// Flexible[int64] behaves identically in every format.
//
// Every decode failure is a *DecodeError whose Kind is one of
// KindTypeMismatch, KindParseFailure, KindInvalidValue or KindOutOfRange.
// Nothing is coerced, clamped or retried.
package serde
