package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ElleNealAI/code-health-report/internal/chart"
	"github.com/ElleNealAI/code-health-report/internal/contract"
	"github.com/ElleNealAI/code-health-report/internal/outwriter"
	"github.com/ElleNealAI/code-health-report/internal/parquetx"
	"github.com/ElleNealAI/code-health-report/schema"
)

// maxQualityWarnings caps the number of data-quality warnings printed for a
// single snapshot so a malformed engine response doesn't flood stderr.
const maxQualityWarnings = 10

// EmptyHistoryMessage is shown when the engine has no stored runs yet.
// An empty history is a normal state, not an error.
const EmptyHistoryMessage = "No health data yet. Run 'healthreport analyze' to trigger the first analysis."

// ExecuteReport fetches the snapshot history and renders the grouped file
// report for the most recent snapshot, diffed against the one before it.
// It serves as the main entry point for the 'report' mode.
func ExecuteReport(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore) error {
	start := time.Now()
	history, err := FetchHistory(ctx, cfg, client, store)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(os.Stderr, EmptyHistoryMessage)
		return nil
	}

	latest := history[len(history)-1]
	var prev *schema.Snapshot
	if len(history) > 1 {
		prev = &history[len(history)-2]
	}
	warnQuality(&latest.Results)

	report := BuildGroupedReport(latest, prev)
	filterReport(&report, cfg)
	return outwriter.PrintGroupedReport(report, cfg, time.Since(start))
}

// ExecuteAnalyze triggers a fresh engine run and renders the new report,
// diffed against the most recent snapshot seen before the run.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore) error {
	start := time.Now()

	// The previous snapshot must be captured before the run, since the engine
	// appends the new result to its own history.
	var prev *schema.Snapshot
	if cached, err := store.Load(); err == nil && len(cached) > 0 {
		prev = &cached[len(cached)-1]
	}

	result, err := client.Analyze(ctx)
	if err != nil {
		return err
	}
	warnQuality(result)

	now := time.Now().UTC()
	snap := schema.Snapshot{
		Timestamp: float64(now.UnixNano()) / float64(time.Second),
		Date:      now.Format(time.RFC3339),
		Results:   *result,
	}
	if err := store.Save([]schema.Snapshot{snap}); err != nil {
		contract.LogWarn("Could not cache analysis result", err)
	}

	report := BuildGroupedReport(snap, prev)
	filterReport(&report, cfg)
	return outwriter.PrintGroupedReport(report, cfg, time.Since(start))
}

// ExecuteTrends renders whole-history trends, either for a single filepath or
// for every file observed at least twice.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore, path string) error {
	start := time.Now()
	history, err := FetchHistory(ctx, cfg, client, store)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(os.Stderr, EmptyHistoryMessage)
		return nil
	}

	var trends []schema.Trend
	if path != "" {
		trend, ok := FileTrend(path, history)
		if !ok {
			fmt.Fprintf(os.Stderr, "No trend available for %s: fewer than two observations.\n", path)
			return nil
		}
		trends = []schema.Trend{trend}
	} else {
		trends = AllTrends(history)
		if len(trends) > cfg.ResultLimit {
			trends = trends[:cfg.ResultLimit]
		}
	}
	return outwriter.PrintTrends(trends, cfg, time.Since(start))
}

// ExecuteHistory renders the overall and per-category score series across all
// snapshots. When chartFile is set, an HTML chart is written as well.
func ExecuteHistory(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore, chartFile string) error {
	start := time.Now()
	history, err := FetchHistory(ctx, cfg, client, store)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(os.Stderr, EmptyHistoryMessage)
		return nil
	}

	points := OverallTrend(history)
	if chartFile != "" {
		if err := chart.WriteTrendChart(points, chartFile); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote chart to %s\n", chartFile)
	}
	return outwriter.PrintHistory(points, cfg, time.Since(start))
}

// ExecuteRecommendations renders the engine's recommendation strings for the
// most recent snapshot.
func ExecuteRecommendations(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore) error {
	history, err := FetchHistory(ctx, cfg, client, store)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(os.Stderr, EmptyHistoryMessage)
		return nil
	}
	latest := history[len(history)-1]
	return outwriter.PrintRecommendations(Recommendations(latest), latest.Date, cfg)
}

// ExecutePrompt writes the fix-prompt text for one filepath to stdout or the
// configured output file, for pasting into an editor or assistant.
func ExecutePrompt(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore, path string) error {
	history, err := FetchHistory(ctx, cfg, client, store)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(os.Stderr, EmptyHistoryMessage)
		return nil
	}

	latest := history[len(history)-1]
	var prev *schema.Snapshot
	if len(history) > 1 {
		prev = &history[len(history)-2]
	}

	view, ok := FindFileView(latest, prev, path)
	if !ok {
		return fmt.Errorf("file %q not found in the latest snapshot", path)
	}

	out, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	if cfg.OutputFile != "" {
		defer func() { _ = out.Close() }()
	}
	_, err = fmt.Fprint(out, FixPrompt(view))
	return err
}

// ExecuteExport flattens the full history into Parquet files for downstream
// analytics.
func ExecuteExport(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore, outputFile string) error {
	if outputFile == "" {
		return fmt.Errorf("--output-file is required for export")
	}
	history, err := FetchHistory(ctx, cfg, client, store)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(os.Stderr, EmptyHistoryMessage)
		return nil
	}
	views := FlattenHistory(history)
	return parquetx.WriteHistory(history, views, outputFile)
}

// LatestGroupedReport builds the filtered grouped report for the most recent
// snapshot without rendering it. Used by programmatic callers.
func LatestGroupedReport(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore) (schema.GroupedReport, error) {
	history, err := FetchHistory(ctx, cfg, client, store)
	if err != nil {
		return schema.GroupedReport{}, err
	}
	if len(history) == 0 {
		return schema.GroupedReport{}, fmt.Errorf("no health data yet")
	}

	latest := history[len(history)-1]
	var prev *schema.Snapshot
	if len(history) > 1 {
		prev = &history[len(history)-2]
	}
	report := BuildGroupedReport(latest, prev)
	filterReport(&report, cfg)
	return report, nil
}

// FindFileView locates one file in the target snapshot and returns its
// derived view.
func FindFileView(target schema.Snapshot, prev *schema.Snapshot, path string) (schema.FileView, bool) {
	buckets := BuildFileViews(target, PreviousScoreIndex(prev))
	for _, views := range buckets {
		for _, v := range views {
			if v.Filepath == path {
				return v, true
			}
		}
	}
	return schema.FileView{}, false
}

// FlattenHistory produces one row per file per snapshot, each diffed against
// its immediately preceding snapshot.
func FlattenHistory(history []schema.Snapshot) []schema.FileObservation {
	var flat []schema.FileObservation
	for i, snap := range history {
		var prev *schema.Snapshot
		if i > 0 {
			prev = &history[i-1]
		}
		buckets := BuildFileViews(snap, PreviousScoreIndex(prev))
		for _, cat := range schema.CategoryOrder {
			for _, view := range buckets[cat] {
				flat = append(flat, schema.FileObservation{
					Timestamp: snap.Timestamp,
					Date:      snap.Date,
					FileView:  view,
				})
			}
		}
	}
	return flat
}

// FetchHistory returns the snapshot history to aggregate over. Online, the
// engine is authoritative and what it returns is mirrored into the local
// store; the merged store contents are preferred because the engine prunes
// its history to the most recent runs. On transport failure the cached
// history is used with a warning; there is no retry.
func FetchHistory(ctx context.Context, cfg *contract.Config, client contract.HealthClient, store contract.SnapshotStore) ([]schema.Snapshot, error) {
	if cfg.Offline {
		return store.Load()
	}

	fetched, err := client.History(ctx)
	if err != nil {
		cached, loadErr := store.Load()
		if loadErr == nil && len(cached) > 0 {
			contract.LogWarn("Engine unreachable; rendering locally cached history", err)
			return cached, nil
		}
		return nil, err
	}

	if err := store.Save(fetched); err != nil {
		contract.LogWarn("Could not cache fetched history", err)
		return fetched, nil
	}
	if merged, err := store.Load(); err == nil && len(merged) > len(fetched) {
		return merged, nil
	}
	return fetched, nil
}

// filterReport restricts the report to the configured category and truncates
// each bucket to the result limit. Summaries keep reflecting the full bucket.
func filterReport(report *schema.GroupedReport, cfg *contract.Config) {
	if cfg.Category != "" {
		for cat := range report.Buckets {
			if cat != cfg.Category {
				delete(report.Buckets, cat)
				delete(report.Summaries, cat)
			}
		}
	}
	for cat, views := range report.Buckets {
		if len(views) > cfg.ResultLimit {
			report.Buckets[cat] = views[:cfg.ResultLimit]
		}
	}
}

// warnQuality surfaces suspect records from an engine response as warnings
// instead of silently zero-filling them.
func warnQuality(report *schema.HealthReport) {
	issues := schema.ValidateReport(report)
	for i, issue := range issues {
		if i == maxQualityWarnings {
			contract.LogWarn(fmt.Sprintf("Data quality: %d further issues suppressed", len(issues)-i), nil)
			break
		}
		contract.LogWarn("Data quality: "+issue.String(), nil)
	}
}
