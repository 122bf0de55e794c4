// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ElleNealAI/code-health-report/internal/contract"
)

// NewMCPServer initializes and configures the health report MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Code Health Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		store:   store,
	}

	// --- 1. Tool: get_health_report ---
	s.AddTool(mcp.NewTool("get_health_report",
		mcp.WithDescription("Get the latest code health report with per-file scores grouped by category, diffed against the previous analysis run."),
		mcp.WithString("category", mcp.Description("Restrict results to one category."), mcp.Enum("Pages", "Components", "UI Files", "API Files", "Other")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of files returned per category.")),
	), h.handleGetHealthReport)

	// --- 2. Tool: get_file_trend ---
	s.AddTool(mcp.NewTool("get_file_trend",
		mcp.WithDescription("Get the score trend for a single file across the whole analysis history."),
		mcp.WithString("filepath", mcp.Description("The file path exactly as reported by the engine."), mcp.Required()),
	), h.handleGetFileTrend)

	// --- 3. Tool: get_recommendations ---
	s.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription("Get the engine's improvement recommendations from the latest analysis run."),
	), h.handleGetRecommendations)

	// --- 4. Tool: get_fix_prompt ---
	s.AddTool(mcp.NewTool("get_fix_prompt",
		mcp.WithDescription("Get a ready-to-use fix prompt for one file, listing its score, issues and suggested practices."),
		mcp.WithString("filepath", mcp.Description("The file path exactly as reported by the engine."), mcp.Required()),
	), h.handleGetFixPrompt)

	return s
}

// StartMCPServer starts the health report MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore) error {
	s := NewMCPServer(baseCfg, client, store)
	return server.ServeStdio(s)
}
