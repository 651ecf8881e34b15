package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/textwire/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	DB       string
	Scenario string
	Limit    int
}

// RunSummary is the json shape of a recorded run.
type RunSummary struct {
	ID        string   `json:"id"`
	Scenario  string   `json:"scenario"`
	StartedAt string   `json:"started_at"`
	Pass      bool     `json:"pass"`
	Errors    []string `json:"errors,omitempty"`
}

// RunDetail is a recorded run with its events.
type RunDetail struct {
	RunSummary
	Events []RunEvent `json:"events"`
}

// RunEvent is the json shape of a recorded case evaluation.
type RunEvent struct {
	Seq       int64  `json:"seq"`
	Case      string `json:"case"`
	Codec     string `json:"codec"`
	Op        string `json:"op"`
	Input     string `json:"input"`
	InputKind string `json:"input_kind"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List or show runs recorded by test --db",
		Long: `List runs recorded in a run log, most recent first, or show one
run with every case it evaluated.

Examples:
  textwire runs --db runs.db
  textwire runs --db runs.db --scenario unix_resolutions --limit 5
  textwire runs --db runs.db 1b4e28ba-2fa1-51d2-883f-0016d3cca427`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runShowRun(opts, args[0], cmd)
			}
			return runListRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "run log database (required)")
	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "only runs of this scenario")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list (0 for all)")
	cmd.MarkFlagRequired("db")

	return cmd
}

// openRunLog opens an existing run log. A missing file is a command
// error rather than a fresh empty database.
func openRunLog(path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("run log not found: %s", path))
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open run log", err)
	}
	return s, nil
}

func runListRuns(opts *RunsOptions, cmd *cobra.Command) error {
	s, err := openRunLog(opts.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(cmd.Context(), opts.Scenario, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	summaries := make([]RunSummary, len(runs))
	for i, run := range runs {
		summaries[i] = summarize(run)
	}

	f := opts.formatter(cmd)
	if opts.Format == "json" {
		return f.Success(summaries)
	}

	w := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, run := range summaries {
		fmt.Fprintf(w, "%s  %s  %s  %s\n", run.ID, run.StartedAt, passLabel(run.Pass), run.Scenario)
	}
	return nil
}

func runShowRun(opts *RunsOptions, id string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	s, err := openRunLog(opts.DB)
	if err != nil {
		return err
	}
	defer s.Close()

	run, err := s.ReadRun(cmd.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		if outErr := f.Error(CodeInvalidInput, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "run not found", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	detail := RunDetail{
		RunSummary: summarize(run),
		Events:     make([]RunEvent, len(run.Events)),
	}
	for i, e := range run.Events {
		detail.Events[i] = RunEvent(e)
	}

	if opts.Format == "json" {
		return f.Success(detail)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Run %s\n", detail.ID)
	fmt.Fprintf(w, "Scenario: %s\n", detail.Scenario)
	fmt.Fprintf(w, "Started:  %s\n", detail.StartedAt)
	fmt.Fprintf(w, "Result:   %s\n", passLabel(detail.Pass))
	fmt.Fprintln(w)
	for _, e := range detail.Events {
		outcome := e.Output
		if e.Error != "" {
			outcome = "error " + e.Error
		}
		fmt.Fprintf(w, "[%d] %s %s %s %q -> %s\n", e.Seq, e.Case, e.Codec, e.Op, e.Input, outcome)
	}
	for _, msg := range detail.Errors {
		fmt.Fprintf(w, "  %s\n", msg)
	}
	return nil
}

func summarize(run store.Run) RunSummary {
	return RunSummary{
		ID:        run.ID,
		Scenario:  run.Scenario,
		StartedAt: run.StartedAt.Time().UTC().Format(time.RFC3339Nano),
		Pass:      run.Pass,
		Errors:    run.Errors,
	}
}

func passLabel(pass bool) string {
	if pass {
		return "pass"
	}
	return "FAIL"
}
