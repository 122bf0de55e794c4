package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ElleNealAI/code-health-report/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the health report MCP server",
	Long:  `Launch an MCP server that allows AI agents to query code health reports, trends and fix prompts via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so setup must not write to stdout.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, client, store)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
