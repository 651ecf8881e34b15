// Package harness runs conformance scenarios against the textwire codecs.
//
// A scenario is a YAML file listing codec cases. Each case feeds one
// input through one codec, in one direction, and states the expected
// text output or decode error kind. Every case appends an event to the
// result trace; the trace is what golden snapshots record.
//
// # Scenario Format
//
//	name: unix_milli
//	description: "Millisecond timestamps"
//	cases:
//	  - name: encode_epoch
//	    codec: unix_milli
//	    encode: "2023-11-14T22:13:20Z"
//	    expect:
//	      value: "1700000000000"
//	  - name: reject_native_number
//	    codec: unix_milli
//	    decode: 1700000000000
//	    expect:
//	      error: type_mismatch
//	assertions:
//	  - type: trace_count
//	    error: type_mismatch
//	    count: 1
//
// decode takes any YAML value; it is converted with wire.FromYAML, so a
// quoted "42" is a string token and a bare 42 a number token. encode
// takes text: an RFC 3339 instant (or "now") for timestamp codecs, the
// canonical text for text codecs, decimal text for flexible codecs.
//
// # Codecs
//
//   - unix, unix_milli, unix_micro, unix_nano: unixtime at s, ms, us, ns
//   - browser: browser.Type canonical text
//   - uuid: uuid.UUID through the function-form bridge
//   - flex_int64, flex_uint64, flex_float64: flexible numeric decoding
//
// # Assertion Types
//
//   - trace_contains: some event matches every field given
//   - trace_order: the named cases appear in the trace in this order
//   - trace_count: exactly count events match every field given
//
// # Deterministic Testing
//
// "now" reads the harness clock, a testutil.DeterministicClock starting at
// testutil.Epoch unless overridden, so traces are identical across runs.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/unix.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
