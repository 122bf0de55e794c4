// Package healthapi is the HTTP client for the external code-health analysis
// engine. The engine owns all scanning, scoring and history persistence; this
// client only fetches its JSON.
package healthapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ElleNealAI/code-health-report/internal/contract"
	"github.com/ElleNealAI/code-health-report/schema"
)

// Engine endpoint paths.
const (
	analyzePath = "/analyze"        // analyze_code_health
	historyPath = "/health-history" // get_health_check_history
)

// Client talks to the analysis engine. Calls are plain request/response with
// a client-level timeout; failures surface as a single wrapped error with no
// retry.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ contract.HealthClient = &Client{} // Compile-time check

// NewClient creates a client for the engine at the given base URL.
func NewClient(cfg *contract.Config) *Client {
	return &Client{
		baseURL: cfg.ServerURL,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Analyze triggers a fresh scan and decodes the resulting report envelope.
func (c *Client) Analyze(ctx context.Context) (*schema.HealthReport, error) {
	var report schema.HealthReport
	if err := c.getJSON(ctx, analyzePath, &report); err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	return &report, nil
}

// History fetches all stored snapshots, ordered oldest to newest by the
// engine. The order is preserved as delivered.
func (c *Client) History(ctx context.Context) ([]schema.Snapshot, error) {
	var history []schema.Snapshot
	if err := c.getJSON(ctx, historyPath, &history); err != nil {
		return nil, fmt.Errorf("history request failed: %w", err)
	}
	return history, nil
}

// getJSON performs a GET against the engine and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded amount of the body for the error message.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("engine returned %s: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
