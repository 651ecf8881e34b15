package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/textwire/internal/unixtime"
	"github.com/roach88/textwire/internal/wire"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	Resolution string
	JSONToken  bool
}

// DecodeResult is the json payload of the decode command.
type DecodeResult struct {
	Resolution string `json:"resolution"`
	Value      string `json:"value"`
	Instant    string `json:"instant"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode <value>",
		Short: "Decode a Unix timestamp string to an RFC 3339 instant",
		Long: `Decode a decimal count of units since the Unix epoch and print the
instant in RFC 3339 with nanosecond precision, in UTC.

The argument is a string token. With --json it is read as a JSON token
instead, so numbers, booleans and quoted strings can be tried as they
would arrive on the wire.

Exit codes:
  0 - Decoded
  1 - Decode failure (type mismatch, parse failure, out of range)
  2 - Command error (invalid flags or JSON)

Examples:
  textwire decode 1700000000000
  textwire decode -r s -- -1
  textwire decode --json 1700000000000`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Resolution, "resolution", "r", "ms", "timestamp resolution (s|ms|us|ns)")
	cmd.Flags().BoolVar(&opts.JSONToken, "json", false, "read the argument as a JSON token")

	return cmd
}

func runDecode(opts *DecodeOptions, arg string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	res, err := unixtime.ParseResolution(opts.Resolution)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --resolution", err)
	}

	var token wire.Value = wire.String(arg)
	if opts.JSONToken {
		token, err = wire.FromJSON([]byte(arg))
		if err != nil {
			if outErr := f.Error(CodeInvalidInput, err.Error(), map[string]string{"input": arg}); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, "invalid JSON token", err)
		}
	}

	opts.logger().Debug("decoding", "kind", wire.Kind(token), "resolution", res.String())

	t, err := unixtime.Decode(res, token)
	if err != nil {
		return f.DecodeFailure(err)
	}

	instant := t.Format(time.RFC3339Nano)
	return f.Result(instant, DecodeResult{
		Resolution: res.String(),
		Value:      arg,
		Instant:    instant,
	})
}
