package serde

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/textwire/internal/wire"
)

// Kind categorizes decode failures.
type Kind string

const (
	// KindTypeMismatch indicates the wire token's tag is not one the
	// decoder accepts (e.g. a bool where a string was required).
	KindTypeMismatch Kind = "type_mismatch"

	// KindParseFailure indicates the token text could not be parsed
	// into the target type.
	KindParseFailure Kind = "parse_failure"

	// KindInvalidValue indicates a canonical parser rejected the text.
	KindInvalidValue Kind = "invalid_value"

	// KindOutOfRange indicates a syntactically valid number lies outside
	// the representable domain of the target type.
	KindOutOfRange Kind = "out_of_range"
)

// Kinds lists every decode failure kind.
var Kinds = []Kind{KindTypeMismatch, KindParseFailure, KindInvalidValue, KindOutOfRange}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown decode error kind %q", s)
}

// DecodeError describes why a wire token could not become a Go value.
type DecodeError struct {
	// Kind identifies the failure category.
	Kind Kind

	// Target names the Go type being decoded.
	Target string

	// Got is the wire kind received (type mismatches only).
	Got string

	// Expected lists the wire kinds the decoder accepts (type mismatches only).
	Expected []string

	// Raw is the offending token text.
	Raw string

	// Cause is the underlying parser or range error, if any.
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var msg string
	switch e.Kind {
	case KindTypeMismatch:
		msg = fmt.Sprintf("cannot decode %s into %s: expected %s", e.Got, e.Target, strings.Join(e.Expected, " or "))
	case KindParseFailure:
		msg = fmt.Sprintf("cannot parse %q as %s", e.Raw, e.Target)
	case KindInvalidValue:
		msg = fmt.Sprintf("invalid %s value %q", e.Target, e.Raw)
	case KindOutOfRange:
		msg = fmt.Sprintf("value %q out of range for %s", e.Raw, e.Target)
	default:
		msg = fmt.Sprintf("cannot decode %s", e.Target)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewTypeMismatch creates a DecodeError for a token with the wrong tag.
func NewTypeMismatch(target string, got wire.Value, expected ...string) *DecodeError {
	return &DecodeError{
		Kind:     KindTypeMismatch,
		Target:   target,
		Got:      wire.Kind(got),
		Expected: expected,
	}
}

// NewParseFailure creates a DecodeError for text the target parser rejected.
func NewParseFailure(target, raw string, cause error) *DecodeError {
	return &DecodeError{Kind: KindParseFailure, Target: target, Raw: raw, Cause: cause}
}

// NewInvalidValue creates a DecodeError for text a canonical parser rejected.
func NewInvalidValue(target, raw string, cause error) *DecodeError {
	return &DecodeError{Kind: KindInvalidValue, Target: target, Raw: raw, Cause: cause}
}

// NewOutOfRange creates a DecodeError for a number outside the target domain.
func NewOutOfRange(target, raw string, cause error) *DecodeError {
	return &DecodeError{Kind: KindOutOfRange, Target: target, Raw: raw, Cause: cause}
}

// KindOf returns the Kind of the first DecodeError in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// IsTypeMismatch returns true if err is a type mismatch decode error.
// Uses errors.As to handle wrapped errors.
func IsTypeMismatch(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindTypeMismatch
}

// IsParseFailure returns true if err is a parse failure decode error.
func IsParseFailure(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindParseFailure
}

// IsInvalidValue returns true if err is an invalid value decode error.
func IsInvalidValue(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidValue
}

// IsOutOfRange returns true if err is an out of range decode error.
func IsOutOfRange(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindOutOfRange
}

// TypeName returns the Go type name of T for diagnostics.
func TypeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
