package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// historyCmd shows overall scores across snapshots.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show overall and per-category scores across all analysis runs.",
	Long: `Render one row per stored snapshot with the engine's overall score and
the average score of each category at that point in time.

With --chart, an HTML line chart of the same series is written alongside the
table output.

Examples:
  # Show score history
  healthreport history

  # Write an HTML chart as well
  healthreport history --chart health.html

  # Export history to CSV
  healthreport history --output csv --output-file history.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		chartFile := viper.GetString("chart")
		if err := core.ExecuteHistory(rootCtx, cfg, client, store, chartFile); err != nil {
			contract.LogFatal("Cannot render history", err)
		}
	},
}
