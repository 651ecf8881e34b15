package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrace() []TraceEvent {
	return []TraceEvent{
		{Case: "a", Codec: "unix", Op: OpEncode, Output: "1700000000", Seq: 1},
		{Case: "b", Codec: "unix", Op: OpDecode, Error: "type_mismatch", Seq: 2},
		{Case: "c", Codec: "browser", Op: OpDecode, Output: "chrome", Seq: 3},
		{Case: "d", Codec: "unix_milli", Op: OpDecode, Error: "type_mismatch", Seq: 4},
	}
}

func TestAssertTraceContains(t *testing.T) {
	trace := sampleTrace()

	assert.NoError(t, assertTraceContains(trace, Assertion{Type: AssertTraceContains, Codec: "browser", Output: "chrome"}))
	assert.NoError(t, assertTraceContains(trace, Assertion{Type: AssertTraceContains, Op: OpDecode, Error: "type_mismatch"}))

	err := assertTraceContains(trace, Assertion{Type: AssertTraceContains, Codec: "browser", Error: "type_mismatch"})
	require.Error(t, err)
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertTraceContains, ae.Type)
	assert.Equal(t, "codec=browser error=type_mismatch", ae.Expected)
	assert.Len(t, ae.Trace, 4)
}

func TestAssertTraceContains_OutputIgnoresFailedEvents(t *testing.T) {
	trace := []TraceEvent{{Case: "a", Codec: "unix", Op: OpDecode, Error: "parse_failure"}}
	assert.Error(t, assertTraceContains(trace, Assertion{Type: AssertTraceContains, Output: "x"}))
}

func TestAssertTraceOrder(t *testing.T) {
	trace := sampleTrace()

	assert.NoError(t, assertTraceOrder(trace, Assertion{Type: AssertTraceOrder, Cases: []string{"a", "c"}}))
	assert.NoError(t, assertTraceOrder(trace, Assertion{Type: AssertTraceOrder, Cases: []string{"a", "b", "c", "d"}}))

	err := assertTraceOrder(trace, Assertion{Type: AssertTraceOrder, Cases: []string{"c", "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c (pos 3) should be before a (pos 1)")

	err = assertTraceOrder(trace, Assertion{Type: AssertTraceOrder, Cases: []string{"a", "z"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing case: z")
}

func TestAssertTraceCount(t *testing.T) {
	trace := sampleTrace()

	assert.NoError(t, assertTraceCount(trace, Assertion{Type: AssertTraceCount, Error: "type_mismatch", Count: 2}))
	assert.NoError(t, assertTraceCount(trace, Assertion{Type: AssertTraceCount, Codec: "unix", Count: 2}))
	assert.NoError(t, assertTraceCount(trace, Assertion{Type: AssertTraceCount, Codec: "uuid", Count: 0}))
	assert.NoError(t, assertTraceCount(trace, Assertion{Type: AssertTraceCount, Count: 4}))

	err := assertTraceCount(trace, Assertion{Type: AssertTraceCount, Op: OpEncode, Count: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected: 2 events matching op=encode")
	assert.Contains(t, err.Error(), "Actual: 1 events")
}

func TestAssertionError_IncludesTrace(t *testing.T) {
	err := &AssertionError{
		Type:     AssertTraceCount,
		Expected: "1 events matching any event",
		Actual:   "4 events",
		Trace:    sampleTrace(),
	}

	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: trace_count")
	assert.Contains(t, msg, "Full trace:")
	assert.Contains(t, msg, `[1] a unix encode -> "1700000000"`)
	assert.Contains(t, msg, "[2] b unix decode -> error type_mismatch")
}

func TestEvaluateAssertions(t *testing.T) {
	result := NewResult()
	for _, e := range sampleTrace() {
		result.AddTrace(e)
	}

	errs := EvaluateAssertions(result, []Assertion{
		{Type: AssertTraceCount, Error: "type_mismatch", Count: 2},
		{Type: AssertTraceOrder, Cases: []string{"d", "a"}},
		{Type: "unknown"},
	})
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "trace_order")
	assert.Contains(t, errs[1], "unknown assertion type: unknown")

	assert.Empty(t, EvaluateAssertions(result, nil))
}
