package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/textwire/internal/browser"
	"github.com/roach88/textwire/internal/serde"
	"github.com/roach88/textwire/internal/wire"
)

// CapsOptions holds flags for the caps command.
type CapsOptions struct {
	*RootOptions
	Browser  string
	Headless bool
	Config   string
}

// CapsResult is the json payload of the caps command.
type CapsResult struct {
	Browser      string         `json:"browser"`
	Headless     bool           `json:"headless"`
	URL          string         `json:"url"`
	Capabilities map[string]any `json:"capabilities"`
}

// NewCapsCommand creates the caps command.
func NewCapsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CapsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Print WebDriver capabilities for a browser",
		Long: `Print the W3C capabilities a WebDriver session is started with.

Options can come from a YAML file (--config); flags given explicitly
override it.

Examples:
  textwire caps --browser firefox --headless
  textwire caps --config browser.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaps(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Browser, "browser", "chrome", "browser (chrome|firefox)")
	cmd.Flags().BoolVar(&opts.Headless, "headless", false, "append --headless to the launch arguments")
	cmd.Flags().StringVar(&opts.Config, "config", "", "browser options YAML file")

	return cmd
}

func runCaps(opts *CapsOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	bopts := &browser.Options{URL: browser.DefaultURL}
	if opts.Config != "" {
		loaded, err := browser.LoadOptions(opts.Config)
		if err != nil {
			if outErr := f.Error(ErrorCode(err), err.Error(), map[string]string{"config": opts.Config}); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, "invalid browser options", err)
		}
		bopts = loaded
		opts.logger().Debug("loaded browser options", "path", opts.Config, "browser", bopts.Browser.String())
	}

	if opts.Config == "" || cmd.Flags().Changed("browser") {
		typ, err := serde.DecodeText[browser.Type](wire.String(opts.Browser))
		if err != nil {
			if outErr := f.Error(ErrorCode(err), err.Error(), nil); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, "invalid --browser", err)
		}
		bopts.Browser = serde.Text[browser.Type]{V: typ}
	}
	if opts.Config == "" || cmd.Flags().Changed("headless") {
		bopts.Headless = opts.Headless
	}

	caps := bopts.Capabilities()

	if opts.Format == "json" {
		return f.Success(CapsResult{
			Browser:      bopts.Browser.String(),
			Headless:     bopts.Headless,
			URL:          bopts.URL,
			Capabilities: caps,
		})
	}

	data, err := wire.MarshalCanonical(caps)
	if err != nil {
		return err
	}
	return f.Success(string(data))
}
