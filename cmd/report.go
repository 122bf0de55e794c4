package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// reportCmd renders the latest snapshot as a grouped report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the latest code health report grouped by category.",
	Long: `Fetch the analysis history and render the most recent snapshot as a
per-file report grouped into dashboard categories.

Each file shows its composite score, the score from the previous analysis run,
and the delta between them, plus category-level averages.

Examples:
  # Show the latest report
  healthreport report

  # Only API files, top 10
  healthreport report --category "API Files" --limit 10

  # Export the report to CSV for tracking
  healthreport report --output csv --output-file report.csv

  # Render from the local cache without contacting the engine
  healthreport report --offline`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, client, store); err != nil {
			contract.LogFatal("Cannot build report", err)
		}
	},
}
