package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s %s %s -> %s\n", event.Seq, event.Case, event.Codec, event.Op, outcome(event))
	}

	return buf.String()
}

func outcome(event TraceEvent) string {
	if event.Error != "" {
		return "error " + event.Error
	}
	return fmt.Sprintf("%q", event.Output)
}

// matches reports whether event matches every non-empty filter field.
func matches(event TraceEvent, a Assertion) bool {
	if a.Codec != "" && event.Codec != a.Codec {
		return false
	}
	if a.Op != "" && event.Op != a.Op {
		return false
	}
	if a.Error != "" && event.Error != a.Error {
		return false
	}
	if a.Output != "" && (event.Error != "" || event.Output != a.Output) {
		return false
	}
	return true
}

func describeFilter(a Assertion) string {
	var parts []string
	if a.Codec != "" {
		parts = append(parts, "codec="+a.Codec)
	}
	if a.Op != "" {
		parts = append(parts, "op="+a.Op)
	}
	if a.Output != "" {
		parts = append(parts, fmt.Sprintf("output=%q", a.Output))
	}
	if a.Error != "" {
		parts = append(parts, "error="+a.Error)
	}
	if len(parts) == 0 {
		return "any event"
	}
	return strings.Join(parts, " ")
}

// assertTraceContains checks that at least one event matches the filter.
func assertTraceContains(trace []TraceEvent, assertion Assertion) error {
	for _, event := range trace {
		if matches(event, assertion) {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: describeFilter(assertion),
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

// assertTraceOrder checks that the named cases appear in the specified
// order. They don't need to be consecutive.
func assertTraceOrder(trace []TraceEvent, assertion Assertion) error {
	// Step 1: Find first position of each expected case
	positions := make(map[string]int)
	for i, event := range trace {
		if _, seen := positions[event.Case]; !seen {
			positions[event.Case] = i + 1 // 1-indexed for readability
		}
	}

	// Step 2: Verify all cases found
	for _, name := range assertion.Cases {
		if positions[name] == 0 {
			return &AssertionError{
				Type:     AssertTraceOrder,
				Expected: fmt.Sprintf("all cases present: %v", assertion.Cases),
				Actual:   fmt.Sprintf("missing case: %s", name),
				Trace:    trace,
			}
		}
	}

	// Step 3: Verify order
	for i := 1; i < len(assertion.Cases); i++ {
		prev := assertion.Cases[i-1]
		curr := assertion.Cases[i]

		if positions[prev] >= positions[curr] {
			return &AssertionError{
				Type:     AssertTraceOrder,
				Expected: fmt.Sprintf("cases in order: %v", assertion.Cases),
				Actual: fmt.Sprintf("%s (pos %d) should be before %s (pos %d)",
					prev, positions[prev], curr, positions[curr]),
				Trace: trace,
			}
		}
	}

	return nil
}

// assertTraceCount checks that exactly Count events match the filter.
func assertTraceCount(trace []TraceEvent, assertion Assertion) error {
	count := 0
	for _, event := range trace {
		if matches(event, assertion) {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d events matching %s", assertion.Count, describeFilter(assertion)),
			Actual:   fmt.Sprintf("%d events", count),
			Trace:    trace,
		}
	}

	return nil
}

// EvaluateAssertions runs every assertion against the result trace and
// returns the failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for _, assertion := range assertions {
		var err error
		switch assertion.Type {
		case AssertTraceContains:
			err = assertTraceContains(result.Trace, assertion)
		case AssertTraceOrder:
			err = assertTraceOrder(result.Trace, assertion)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, assertion)
		default:
			err = fmt.Errorf("unknown assertion type: %s", assertion.Type)
		}
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}
