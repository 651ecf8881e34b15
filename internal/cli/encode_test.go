package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"now_default_millis", []string{"encode"}, "1700000000000\n"},
		{"now_explicit", []string{"encode", "now", "-r", "s"}, "1700000000\n"},
		{"seconds_floor", []string{"encode", "2023-11-14T22:13:20.5Z", "-r", "s"}, "1700000000\n"},
		{"negative_floor", []string{"encode", "1969-12-31T23:59:59.5Z", "-r", "s"}, "-1\n"},
		{"micros", []string{"encode", "2023-11-14T22:13:20.000001Z", "--resolution", "us"}, "1700000000000001\n"},
		{"nanos", []string{"encode", "2023-11-14T22:13:20.000000001Z", "-r", "ns"}, "1700000000000000001\n"},
		{"offset", []string{"encode", "2023-11-14T23:13:20+01:00", "-r", "s"}, "1700000000\n"},
		{"epoch", []string{"encode", "1970-01-01T00:00:00Z"}, "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestEncodeCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "encode", "2023-11-14T23:13:20.25+01:00", "-r", "ms", "--format", "json")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"status": "ok",
		"data": {
			"resolution": "ms",
			"instant": "2023-11-14T22:13:20.25Z",
			"value": "1700000000250"
		}
	}`, stdout)
}

func TestEncodeCommandInvalidInstant(t *testing.T) {
	stdout, _, err := execute(t, "encode", "yesterday")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E_INVALID_INPUT]")
}

func TestEncodeCommandInvalidInstantJSON(t *testing.T) {
	stdout, _, err := execute(t, "encode", "yesterday", "--format", "json")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidInput, resp.Error.Code)
}

func TestEncodeCommandInvalidResolution(t *testing.T) {
	_, _, err := execute(t, "encode", "-r", "minutes")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown resolution")
}

func TestEncodeCommandOffsetPastMax(t *testing.T) {
	var (
		stdout string
		err    error
	)
	require.NotPanics(t, func() {
		stdout, _, err = execute(t, "encode", "9999-12-31T23:59:59-01:00", "-r", "s")
	})
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E_INVALID_INPUT]")
	assert.Contains(t, stdout, "outside")
}
