package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// analyzeCmd triggers a fresh engine run.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Trigger a fresh analysis run and show the resulting report.",
	Long: `Ask the engine to analyze the codebase now, then render the new
snapshot diffed against the most recent one seen before the run.

The new snapshot is also saved to the local cache so it survives the engine's
history pruning.

Examples:
  # Run a fresh analysis
  healthreport analyze

  # Run a fresh analysis against a non-default engine
  healthreport analyze --server http://engine.internal:8000`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, client, store); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
