package harness

import "github.com/roach88/textwire/internal/wire"

// Trace operations.
const (
	OpDecode = "decode"
	OpEncode = "encode"
)

// TraceEvent records one case evaluation.
type TraceEvent struct {
	Case  string `json:"case"`
	Codec string `json:"codec"`
	Op    string `json:"op"` // "decode" or "encode"

	// Input is the wire token (decode) or wire.String of the text (encode).
	Input wire.Value `json:"-"`

	// Output is the text result; empty when Error is set.
	Output string `json:"output,omitempty"`

	// Error is the error kind; Message the full error text.
	Error   string `json:"error,omitempty"`
	Message string `json:"-"`

	Seq int64 `json:"seq"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every case matched its expectation and all assertions held.
	Pass bool `json:"pass"`

	// Trace contains one event per case, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an event to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
