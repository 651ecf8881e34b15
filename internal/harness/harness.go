package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/textwire/internal/testutil"
	"github.com/roach88/textwire/internal/wire"
)

// Harness evaluates scenarios with an injectable clock and logger.
type Harness struct {
	clock  Clock
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock sets the clock "now" inputs read.
func WithClock(c Clock) Option {
	return func(h *Harness) {
		h.clock = c
	}
}

// WithLogger sets the logger case evaluation is reported to at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a harness. Defaults: a fresh testutil.DeterministicClock
// and a discarding logger.
func New(opts ...Option) *Harness {
	h := &Harness{
		clock:  testutil.NewDeterministicClock(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(scenario)
}

// Run executes every case in order, then evaluates the assertions.
//
// Case mismatches and failed assertions fail the result. An error is
// returned only when the scenario cannot be executed at all (unknown
// codec, unconvertible decode input).
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	result := NewResult()

	for i := range scenario.Cases {
		c := &scenario.Cases[i]
		event, err := h.runCase(c, int64(i+1))
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		result.AddTrace(event)

		if mismatch := checkExpect(c, event); mismatch != nil {
			result.AddError(mismatch.Error())
		}
	}

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	h.logger.Debug("scenario complete",
		"scenario", scenario.Name,
		"cases", len(scenario.Cases),
		"pass", result.Pass)

	return result, nil
}

func (h *Harness) runCase(c *Case, seq int64) (TraceEvent, error) {
	codec, ok := LookupCodec(c.Codec)
	if !ok {
		return TraceEvent{}, fmt.Errorf("unknown codec %q", c.Codec)
	}

	event := TraceEvent{Case: c.Name, Codec: c.Codec, Seq: seq}

	var out string
	var err error
	if c.IsDecode() {
		v, convErr := wire.FromYAML(&c.Decode)
		if convErr != nil {
			return TraceEvent{}, fmt.Errorf("failed to convert decode input: %w", convErr)
		}
		event.Op = OpDecode
		event.Input = v
		out, err = codec.Decode(v)
	} else {
		event.Op = OpEncode
		event.Input = wire.String(*c.Encode)
		out, err = codec.Encode(*c.Encode, h.clock)
	}

	if err != nil {
		event.Error = ErrorKind(err)
		event.Message = err.Error()
	} else {
		event.Output = out
	}

	h.logger.Debug("case evaluated",
		"case", c.Name,
		"codec", c.Codec,
		"op", event.Op,
		"output", event.Output,
		"error", event.Error)

	return event, nil
}

// CaseError is returned when a case's outcome differs from its expect
// clause.
type CaseError struct {
	Case     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *CaseError) Error() string {
	return fmt.Sprintf("case %s: expected %s, got %s", e.Case, e.Expected, e.Actual)
}

func checkExpect(c *Case, event TraceEvent) *CaseError {
	actual := describeOutcome(event)

	if c.Expect.Error != "" {
		if event.Error == c.Expect.Error {
			return nil
		}
		return &CaseError{Case: c.Name, Expected: "error " + c.Expect.Error, Actual: actual}
	}

	want := *c.Expect.Value
	if event.Error == "" && event.Output == want {
		return nil
	}
	return &CaseError{Case: c.Name, Expected: fmt.Sprintf("value %q", want), Actual: actual}
}

func describeOutcome(event TraceEvent) string {
	if event.Error != "" {
		return fmt.Sprintf("error %s (%s)", event.Error, event.Message)
	}
	return fmt.Sprintf("value %q", event.Output)
}
