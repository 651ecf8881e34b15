package harness

import (
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/textwire/internal/wire"
)

// GoldenDir is where AssertGolden keeps golden files, relative to the
// test's package directory.
const GoldenDir = "testdata/golden"

// toCanonicalMap converts a result to the map[string]any shape
// wire.MarshalCanonical serializes. Inputs are recorded as kind plus
// text, since canonical JSON has no floats. Event messages are left out:
// they quote parser errors whose wording is not part of the contract.
func toCanonicalMap(scenarioName string, result *Result) map[string]any {
	traceList := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		eventMap := map[string]any{
			"case":       event.Case,
			"codec":      event.Codec,
			"op":         event.Op,
			"input":      InputText(event.Input),
			"input_kind": wire.Kind(event.Input),
			"seq":        event.Seq,
		}
		if event.Error != "" {
			eventMap["error"] = event.Error
		} else {
			eventMap["output"] = event.Output
		}
		traceList[i] = eventMap
	}

	return map[string]any{
		"scenario_name": scenarioName,
		"pass":          result.Pass,
		"trace":         traceList,
	}
}

// InputText renders a wire value as its token text: scalars verbatim,
// arrays and objects as JSON.
func InputText(v wire.Value) string {
	if text, ok := wire.Text(v); ok {
		return text
	}
	switch val := v.(type) {
	case wire.Bool:
		return strconv.FormatBool(bool(val))
	case wire.Null, nil:
		return "null"
	}
	data, err := wire.MarshalJSON(v)
	if err != nil {
		return wire.Kind(v)
	}
	return string(data)
}

// Snapshot renders the result as canonical JSON for golden comparison.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	return wire.MarshalCanonical(toCanonicalMap(scenarioName, result))
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares the given result's trace against a golden file.
// This is useful when you've already run a scenario and want to compare
// the result against a golden file without re-running.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, snapshot)

	return nil
}
