package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ElleNealAI/code-health-report/core"
	"github.com/ElleNealAI/code-health-report/internal/contract"
	"github.com/ElleNealAI/code-health-report/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.HealthClient
	store   contract.SnapshotStore
}

// fetchHistory pulls the snapshot history using the shared fetch path.
func (h *toolHandler) fetchHistory(ctx context.Context, cfg *contract.Config) ([]schema.Snapshot, error) {
	return core.FetchHistory(ctx, cfg, h.client, h.store)
}

func (h *toolHandler) handleGetHealthReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if c := request.GetString("category", ""); c != "" {
		category, err := contract.ResolveCategory(c)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid category: %v", err)), nil
		}
		cfg.Category = category
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	report, err := core.LatestGroupedReport(ctx, cfg, h.client, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFileTrend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("filepath", "")
	if path == "" {
		return mcp.NewToolResultError("filepath is required"), nil
	}

	history, err := h.fetchHistory(ctx, h.baseCfg.Clone())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history fetch failed: %v", err)), nil
	}

	trend, ok := core.FileTrend(path, history)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no trend available for %q: fewer than two observations", path)), nil
	}

	jsonData, _ := json.MarshalIndent(trend, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRecommendations(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := h.fetchHistory(ctx, h.baseCfg.Clone())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history fetch failed: %v", err)), nil
	}
	if len(history) == 0 {
		return mcp.NewToolResultError("no health data yet; trigger an analysis first"), nil
	}

	latest := history[len(history)-1]
	payload := map[string]any{
		"date":            latest.Date,
		"recommendations": core.Recommendations(latest),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFixPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("filepath", "")
	if path == "" {
		return mcp.NewToolResultError("filepath is required"), nil
	}

	history, err := h.fetchHistory(ctx, h.baseCfg.Clone())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history fetch failed: %v", err)), nil
	}
	if len(history) == 0 {
		return mcp.NewToolResultError("no health data yet; trigger an analysis first"), nil
	}

	latest := history[len(history)-1]
	var prev *schema.Snapshot
	if len(history) > 1 {
		prev = &history[len(history)-2]
	}

	view, ok := core.FindFileView(latest, prev, path)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("file %q not found in the latest snapshot", path)), nil
	}

	return mcp.NewToolResultText(core.FixPrompt(view)), nil
}
