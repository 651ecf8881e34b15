package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/textwire/internal/harness"
	"github.com/roach88/textwire/internal/wire"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestResult creates a two-event harness result.
func createTestResult(pass bool) *harness.Result {
	result := harness.NewResult()
	result.AddTrace(harness.TraceEvent{
		Case:   "decode_ms",
		Codec:  "unix_milli",
		Op:     harness.OpDecode,
		Input:  wire.String("1700000000000"),
		Output: "2023-11-14T22:13:20Z",
		Seq:    1,
	})
	result.AddTrace(harness.TraceEvent{
		Case:    "decode_bool",
		Codec:   "unix_milli",
		Op:      harness.OpDecode,
		Input:   wire.Bool(true),
		Error:   "type_mismatch",
		Message: "type_mismatch: cannot decode bool",
		Seq:     2,
	})
	if !pass {
		result.AddError("case decode_ms: expected value \"x\", got value \"y\"")
	}
	return result
}
