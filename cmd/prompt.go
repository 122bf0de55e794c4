package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// promptCmd generates a fix prompt for one file.
var promptCmd = &cobra.Command{
	Use:   "prompt <filepath>",
	Short: "Generate a ready-to-use fix prompt for one file.",
	Long: `Build a prompt describing one file's current score, detected issues and
suggested practices, ready to paste into an editor or coding assistant.

The filepath must match the path exactly as reported by the engine.

Examples:
  # Print the fix prompt for a file
  healthreport prompt src/components/Chart.tsx

  # Write the prompt to a file
  healthreport prompt src/components/Chart.tsx --output-file prompt.txt`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecutePrompt(rootCtx, cfg, client, store, args[0]); err != nil {
			contract.LogFatal("Cannot build fix prompt", err)
		}
	},
}
