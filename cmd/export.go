package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// exportCmd exports the snapshot history to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the snapshot history to Parquet files.",
	Long: `Flatten the full snapshot history into two Parquet files for downstream
analytics: one row per snapshot and one row per file observation.

The --output-file flag sets the base path; "health.parquet" produces
"health_snapshots.parquet" and "health_files.parquet".

Examples:
  # Export everything
  healthreport export --output-file health.parquet

  # Export from the local cache only
  healthreport export --offline --output-file health.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, client, store, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot export history", err)
		}
	},
}
