// textwire - encode and decode domain values as textual scalars
//
// Usage:
//
//	textwire encode [instant] [-r s|ms|us|ns]    Encode an RFC 3339 instant as a Unix timestamp string
//	textwire decode <value> [-r ...] [--json]    Decode a Unix timestamp string
//	textwire rescale <value> --from s --to ms    Convert between resolutions
//	textwire caps [--browser chrome|firefox]     Print WebDriver capabilities
//	textwire test <scenarios-dir>                Run codec conformance scenarios
package main

import (
	"fmt"
	"os"

	"github.com/roach88/textwire/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
