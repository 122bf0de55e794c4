package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ElleNealAI/code-health-report/internal/contract"
	"github.com/ElleNealAI/code-health-report/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGroupedReport outputs the grouped file report, dispatching based on
// the output format configured.
func PrintGroupedReport(report schema.GroupedReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, cfg, duration)
		}, "table")
	}
}

// writeReportTable generates the human-readable bucket tables.
func writeReportTable(w io.Writer, report schema.GroupedReport, cfg *contract.Config, duration time.Duration) error {
	if cfg.UseEmojis {
		fmt.Fprintf(w, "🩺 Code health report for %s\n", report.Date)
	} else {
		fmt.Fprintf(w, "Code health report for %s\n", report.Date)
	}
	fmt.Fprintf(w, "Overall score: %d (%s)\n\n", report.OverallScore, scoreLabelFor(report.OverallScore, cfg))

	for _, cat := range schema.CategoryOrder {
		views, ok := report.Buckets[cat]
		if !ok || len(views) == 0 {
			continue // empty buckets are never rendered
		}
		if summary, ok := report.Summaries[cat]; ok {
			fmt.Fprintf(w, "%s: avg %d (%s), %d file(s)\n",
				cat, summary.AvgScore, contract.FormatDelta(summary.AvgChange), summary.FileCount)
		} else {
			fmt.Fprintf(w, "%s\n", cat)
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"File", "Score", "Prev", "Change", "Label"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, v := range views {
			data = append(data, []string{
				contract.TruncatePath(v.Filepath, getMaxTablePathWidth(cfg)),
				strconv.Itoa(v.Score),
				strconv.Itoa(v.PreviousScore),
				contract.FormatDelta(v.ScoreChange),
				scoreLabelFor(v.Score, cfg),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(w, "Recommendations:")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
	return err
}

// writeReportCSV writes one row per file across all buckets.
func writeReportCSV(w io.Writer, report schema.GroupedReport) error {
	header := []string{
		"category",
		"file",
		"component",
		"score",
		"previous_score",
		"score_change",
		"label",
		"issues",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cat := range schema.CategoryOrder {
			for _, v := range report.Buckets[cat] {
				rec := []string{
					string(cat),
					v.Filepath,
					v.Component,
					strconv.Itoa(v.Score),
					strconv.Itoa(v.PreviousScore),
					strconv.Itoa(v.ScoreChange),
					schema.ScoreLabel(v.Score),
					strings.Join(v.Issues, "|"),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// scoreLabelFor returns a colored or plain status label per config.
func scoreLabelFor(score int, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return schema.ScoreLabel(score)
}
