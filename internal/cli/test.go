package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/textwire/internal/harness"
	"github.com/roach88/textwire/internal/store"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
	DB     string // run log database (optional)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run codec conformance scenarios",
		Long: `Run codec conformance scenarios using the harness.

Executes every scenario file in the directory, checking each case's
expected value or error kind and the scenario assertions. When
<scenarios-dir>/golden/<name>.golden exists the trace must match it.
With --db every run is recorded in a SQLite run log (see "textwire runs").

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  textwire test ./scenarios
  textwire test ./scenarios --filter "unix*"
  textwire test ./scenarios --update
  textwire test ./scenarios --format json
  textwire test ./scenarios --db runs.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")
	cmd.Flags().StringVar(&opts.DB, "db", "", "record runs in this SQLite database")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	scenarioFiles, err := findScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	if len(scenarioFiles) == 0 {
		if opts.Format == "json" {
			return outputTestJSON(cmd, TestResult{
				Scenarios: []ScenarioResult{},
				Total:     0,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	var runLog *store.Store
	if opts.DB != "" {
		runLog, err = store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open run log", err)
		}
		defer runLog.Close()
	}

	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarioFiles)),
		Total:     len(scenarioFiles),
	}

	for _, scenarioFile := range scenarioFiles {
		scenResult := runScenario(scenarioFile, opts, runLog, cmd)
		result.Scenarios = append(result.Scenarios, scenResult)

		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputTestJSON(cmd, result)
	}

	return outputTestText(cmd, result)
}

// findScenarioFiles finds all YAML scenario files directly in dir.
// The golden/ subdirectory and other nested directories are skipped.
func findScenarioFiles(dir string, filter string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		if filter != "" {
			name := strings.TrimSuffix(entry.Name(), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return nil, fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				continue
			}
		}

		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

func failScenario(opts *TestOptions, cmd *cobra.Command, name string, errs ...string) ScenarioResult {
	if opts.Format != "json" {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "✗ %s\n", name)
		for _, e := range errs {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	return ScenarioResult{Name: name, Pass: false, Errors: errs}
}

func passScenario(opts *TestOptions, cmd *cobra.Command, name, note string) ScenarioResult {
	if opts.Format != "json" {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s%s\n", name, note)
	}
	return ScenarioResult{Name: name, Pass: true}
}

// runScenario executes a single scenario and returns the result. When
// runLog is non-nil the run is recorded before golden comparison.
func runScenario(scenarioFile string, opts *TestOptions, runLog *store.Store, cmd *cobra.Command) ScenarioResult {
	scenario, err := harness.LoadScenario(scenarioFile)
	if err != nil {
		return failScenario(opts, cmd, filepath.Base(scenarioFile), fmt.Sprintf("failed to load scenario: %v", err))
	}

	// Each scenario gets a fresh deterministic clock so "now" is stable.
	startedAt := opts.clock().Now()
	h := harness.New(harness.WithLogger(opts.logger()))
	result, err := h.Run(scenario)
	if err != nil {
		return failScenario(opts, cmd, scenario.Name, fmt.Sprintf("execution failed: %v", err))
	}

	if runLog != nil {
		run, err := store.NewRun(scenario.Name, startedAt, result)
		if err == nil {
			err = runLog.RecordRun(cmd.Context(), run)
		}
		if err != nil {
			return failScenario(opts, cmd, scenario.Name, fmt.Sprintf("failed to record run: %v", err))
		}
		opts.logger().Debug("recorded run", "scenario", scenario.Name, "id", run.ID, "pass", run.Pass)
	}

	goldenPath := goldenFilePath(scenarioFile)

	if opts.Update {
		if !result.Pass {
			return failScenario(opts, cmd, scenario.Name, result.Errors...)
		}
		if err := updateGoldenFile(scenario, result, goldenPath); err != nil {
			return failScenario(opts, cmd, scenario.Name, fmt.Sprintf("failed to update golden file: %v", err))
		}
		return passScenario(opts, cmd, scenario.Name, " (golden updated)")
	}

	if !result.Pass {
		return failScenario(opts, cmd, scenario.Name, result.Errors...)
	}

	if _, err := os.Stat(goldenPath); os.IsNotExist(err) {
		// No golden file - expectation-based validation only
		return passScenario(opts, cmd, scenario.Name, "")
	}

	match, err := compareWithGolden(scenario, result, goldenPath)
	if err != nil {
		return failScenario(opts, cmd, scenario.Name, fmt.Sprintf("golden comparison failed: %v", err))
	}
	if !match {
		return failScenario(opts, cmd, scenario.Name, "trace does not match golden file (run with --update to regenerate)")
	}

	return passScenario(opts, cmd, scenario.Name, "")
}

// goldenFilePath returns the path to the golden file for a scenario.
func goldenFilePath(scenarioFile string) string {
	dir := filepath.Dir(scenarioFile)
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// updateGoldenFile writes the current trace as the golden file.
func updateGoldenFile(scenario *harness.Scenario, result *harness.Result, goldenPath string) error {
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}

	data, err := harness.Snapshot(scenario.Name, result)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}

	if err := os.WriteFile(goldenPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}

	return nil
}

// compareWithGolden compares the result trace against the golden file.
func compareWithGolden(scenario *harness.Scenario, result *harness.Result, goldenPath string) (bool, error) {
	goldenData, err := os.ReadFile(goldenPath)
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}

	currentData, err := harness.Snapshot(scenario.Name, result)
	if err != nil {
		return false, fmt.Errorf("failed to marshal current trace: %w", err)
	}

	return string(goldenData) == string(currentData), nil
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(cmd *cobra.Command, result TestResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{
		Status: status,
		Data:   result,
	}

	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    CodeTestFailed,
			Message: fmt.Sprintf("%d scenario(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

// outputTestText outputs the test result as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All scenarios passed")
	return nil
}
