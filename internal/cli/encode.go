package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/textwire/internal/harness"
	"github.com/roach88/textwire/internal/unixtime"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Resolution string
}

// EncodeResult is the json payload of the encode command.
type EncodeResult struct {
	Resolution string `json:"resolution"`
	Instant    string `json:"instant"`
	Value      string `json:"value"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode [instant]",
		Short: "Encode an instant as a Unix timestamp string",
		Long: `Encode an RFC 3339 instant as the decimal count of units since the
Unix epoch. Sub-unit remainders floor toward negative infinity.
Without an argument (or with "now") the current time is encoded.

Examples:
  textwire encode 2023-11-14T22:13:20.5Z -r s
  textwire encode --resolution ns
  textwire encode now --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "now"
			if len(args) == 1 {
				input = args[0]
			}
			return runEncode(opts, input, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Resolution, "resolution", "r", "ms", "timestamp resolution (s|ms|us|ns)")

	return cmd
}

func runEncode(opts *EncodeOptions, input string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	res, err := unixtime.ParseResolution(opts.Resolution)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --resolution", err)
	}

	t, err := harness.ParseInstant(input, opts.clock())
	if err != nil {
		if outErr := f.Error(CodeInvalidInput, err.Error(), map[string]string{"input": input}); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "invalid instant", err)
	}

	value := string(unixtime.Encode(res, t))
	opts.logger().Debug("encoded instant", "instant", t, "resolution", res.String(), "value", value)

	return f.Result(value, EncodeResult{
		Resolution: res.String(),
		Instant:    t.UTC().Format(time.RFC3339Nano),
		Value:      value,
	})
}
