package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// trendsCmd computes whole-history score trends.
var trendsCmd = &cobra.Command{
	Use:   "trends [filepath]",
	Short: "Show score trends across the whole analysis history.",
	Long: `Compute per-file score trends over every stored snapshot, not just the
last two. A file needs at least two observations to have a trend.

Without arguments, trends for all qualifying files are shown, ordered from
biggest decline to biggest improvement. With a filepath argument, only that
file's trend is shown.

Examples:
  # Show all file trends
  healthreport trends

  # Show the trend for one file
  healthreport trends src/pages/Dashboard.tsx

  # Export trends to JSON
  healthreport trends --output json --output-file trends.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if err := core.ExecuteTrends(rootCtx, cfg, client, store, path); err != nil {
			contract.LogFatal("Cannot compute trends", err)
		}
	},
}
