package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/textwire/internal/unixtime"
)

// RescaleOptions holds flags for the rescale command.
type RescaleOptions struct {
	*RootOptions
	From string
	To   string
}

// RescaleResult is the json payload of the rescale command.
type RescaleResult struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewRescaleCommand creates the rescale command.
func NewRescaleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RescaleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rescale <value>",
		Short: "Convert a Unix timestamp string between resolutions",
		Long: `Convert a decimal count of units since the Unix epoch from one
resolution to another. Converting to a coarser resolution floors.

Examples:
  textwire rescale 1700000000999 --from ms --to s
  textwire rescale 1700000000 --from s --to ns`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRescale(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "s", "input resolution (s|ms|us|ns)")
	cmd.Flags().StringVar(&opts.To, "to", "ms", "output resolution (s|ms|us|ns)")

	return cmd
}

func runRescale(opts *RescaleOptions, input string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	from, err := unixtime.ParseResolution(opts.From)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --from", err)
	}
	to, err := unixtime.ParseResolution(opts.To)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --to", err)
	}

	output, err := unixtime.Rescale(from, to, input)
	if err != nil {
		return f.DecodeFailure(err)
	}

	opts.logger().Debug("rescaled", "from", from.String(), "to", to.String(), "input", input, "output", output)

	return f.Result(output, RescaleResult{
		From:   from.String(),
		To:     to.String(),
		Input:  input,
		Output: output,
	})
}
