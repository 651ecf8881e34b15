package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/textwire/internal/serde"
)

// Scenario defines a codec conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases run in order; each produces one trace event.
	Cases []Case `yaml:"cases"`

	// Assertions validate the final trace.
	// Supported types: trace_contains, trace_order, trace_count
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Case feeds one input through one codec.
type Case struct {
	// Name identifies the case within the scenario.
	Name string `yaml:"name"`

	// Codec names a registered codec (see Codecs).
	Codec string `yaml:"codec"`

	// Decode is the wire token to decode, kept as a raw node so the
	// YAML tag the author wrote survives. Zero Kind when absent.
	Decode yaml.Node `yaml:"decode,omitempty"`

	// Encode is the text input to encode.
	Encode *string `yaml:"encode,omitempty"`

	// Expect is the expected outcome.
	Expect Expect `yaml:"expect"`
}

// IsDecode reports whether the case decodes.
func (c *Case) IsDecode() bool {
	return c.Decode.Kind != 0
}

// Expect holds exactly one of Value and Error.
type Expect struct {
	// Value is the expected text output.
	Value *string `yaml:"value,omitempty"`

	// Error is the expected error kind (see ErrorKinds).
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the trace.
type Assertion struct {
	// Type specifies the assertion type:
	// - "trace_contains": some event matches the filter fields
	// - "trace_order": Cases appear in this order
	// - "trace_count": exactly Count events match the filter fields
	Type string `yaml:"type"`

	// Filter fields (trace_contains, trace_count). Empty fields match
	// anything.
	Codec  string `yaml:"codec,omitempty"`
	Op     string `yaml:"op,omitempty"`
	Output string `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`

	// Count is the expected number of matches (trace_count).
	Count int `yaml:"count,omitempty"`

	// Cases is the expected case order (trace_order).
	Cases []string `yaml:"cases,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// KindInvalidInput is the error kind recorded when encode input cannot be
// read (e.g. a malformed RFC 3339 instant).
const KindInvalidInput = "invalid_input"

// ErrorKinds lists every error kind a case may expect.
func ErrorKinds() []string {
	kinds := make([]string, 0, len(serde.Kinds)+1)
	for _, k := range serde.Kinds {
		kinds = append(kinds, string(k))
	}
	return append(kinds, KindInvalidInput)
}

func isErrorKind(s string) bool {
	for _, k := range ErrorKinds() {
		if k == s {
			return true
		}
	}
	return false
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	names := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if names[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		names[c.Name] = true

		if _, ok := LookupCodec(c.Codec); !ok {
			return fmt.Errorf("cases[%d]: unknown codec %q", i, c.Codec)
		}
		if c.IsDecode() == (c.Encode != nil) {
			return fmt.Errorf("cases[%d]: exactly one of decode or encode is required", i)
		}
		if (c.Expect.Value != nil) == (c.Expect.Error != "") {
			return fmt.Errorf("cases[%d].expect: exactly one of value or error is required", i)
		}
		if c.Expect.Error != "" && !isErrorKind(c.Expect.Error) {
			return fmt.Errorf("cases[%d].expect: unknown error kind %q", i, c.Expect.Error)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion, names); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, cases map[string]bool) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Codec == "" && a.Op == "" && a.Output == "" && a.Error == "" {
			return fmt.Errorf("assertions[%d]: at least one of codec, op, output, error is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Cases) == 0 {
			return fmt.Errorf("assertions[%d]: cases list is required for trace_order", index)
		}
		for _, name := range a.Cases {
			if !cases[name] {
				return fmt.Errorf("assertions[%d]: unknown case %q", index, name)
			}
		}
	case AssertTraceCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	if a.Op != "" && a.Op != OpDecode && a.Op != OpEncode {
		return fmt.Errorf("assertions[%d]: op must be %q or %q", index, OpDecode, OpEncode)
	}
	if a.Error != "" && !isErrorKind(a.Error) {
		return fmt.Errorf("assertions[%d]: unknown error kind %q", index, a.Error)
	}

	return nil
}
