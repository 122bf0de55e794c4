package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// recommendCmd shows engine recommendations for the latest snapshot.
var recommendCmd = &cobra.Command{
	Use:     "recommendations",
	Aliases: []string{"recommend"},
	Short:   "Show improvement recommendations from the latest analysis run.",
	Long: `Print the engine's improvement recommendations from the most recent
snapshot, supplemented with rule-derived best practices for recurring issue
patterns.

Examples:
  # Show recommendations
  healthreport recommendations

  # Export recommendations to JSON
  healthreport recommendations --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecommendations(rootCtx, cfg, client, store); err != nil {
			contract.LogFatal("Cannot fetch recommendations", err)
		}
	},
}
