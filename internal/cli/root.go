/*
PURPOSE:
  Defines the root Cobra command for the append-results CLI.
  The root command is the whole tool: two positional arguments, a few optional flags.

REQUIREMENTS:
  User-specified:
  - Invocation: append-results <benchmark_tsv_path> <model_name>
  - Non-zero exit with a readable message on any failure.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Flags override config values; defaults reproduce the plain two-argument behavior.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/append-results/main.go
  - Calls: internal/engine.AppendResults()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Usage is only printed for argument errors, not for failed appends.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/append-results/main.go
  - internal/engine/appender.go
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/append-results/internal/config"
	"github.com/daryltucker/append-results/internal/engine"
	"github.com/daryltucker/append-results/internal/output"
	"github.com/spf13/cobra"
)

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the root command with fresh flag state.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile    string
		resultsDir string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "append-results <benchmark_tsv_path> <model_name>",
		Short: "Append a model's results as a new column of a benchmark TSV file",
		Long: `Reads _<model_name>_result.txt (one result per line, blank lines ignored)
and appends its values as a new column named <model_name> to the benchmark file.

The benchmark file is left untouched if it is empty, already has a column for
the model, or has a different number of data rows than the results file.`,
		Example: `  # Append _gpt-4o_result.txt to bench.tsv
  append-results bench.tsv gpt-4o

  # Look for results files in another directory
  append-results bench.tsv gpt-4o --results-dir ./results`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			// 1. Load Config
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			// 2. Overrides
			if cmd.Flags().Changed("results-dir") {
				cfg.ResultsDir = resultsDir
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			lvl, _ := cfg.Level()
			output.SetLogger(output.NewLogger(cmd.ErrOrStderr(), lvl))

			// 3. Execution
			_, err = engine.AppendResults(cfg, args[0], args[1])
			return err
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is ./%s)", config.DefaultFiles[0]))
	cmd.Flags().StringVar(&resultsDir, "results-dir", ".", "Directory containing _<model_name>_result.txt")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
