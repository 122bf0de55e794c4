package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ElleNealAI/code-health-report/internal/contract"
	"github.com/ElleNealAI/code-health-report/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintHistory outputs overall scores across snapshots, dispatching based on
// the output format configured.
func PrintHistory(points []schema.OverallPoint, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, points)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, points, cfg, duration)
		}, "table")
	}
}

func writeHistoryTable(w io.Writer, points []schema.OverallPoint, cfg *contract.Config, duration time.Duration) error {
	if len(points) == 0 {
		fmt.Fprintln(w, "No snapshots recorded yet. Run an analysis to populate history.")
		_, err := fmt.Fprintf(w, "History completed in %v\n", duration)
		return err
	}

	header := []string{"Date", "Overall"}
	for _, cat := range schema.CategoryOrder {
		header = append(header, string(cat))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range points {
		row := []string{p.Date, scoreLabelCell(p.Overall, cfg)}
		for _, cat := range schema.CategoryOrder {
			if score, ok := p.Buckets[cat]; ok {
				row = append(row, strconv.Itoa(score))
			} else {
				row = append(row, "-")
			}
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nHistory completed in %v\n", duration)
	return err
}

func writeHistoryCSV(w io.Writer, points []schema.OverallPoint) error {
	header := []string{"timestamp", "date", "overall"}
	for _, cat := range schema.CategoryOrder {
		header = append(header, string(cat))
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range points {
			rec := []string{
				strconv.FormatFloat(p.Timestamp, 'f', -1, 64),
				p.Date,
				strconv.Itoa(p.Overall),
			}
			for _, cat := range schema.CategoryOrder {
				if score, ok := p.Buckets[cat]; ok {
					rec = append(rec, strconv.Itoa(score))
				} else {
					rec = append(rec, "")
				}
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// scoreLabelCell renders a score with its colored label when colors are on.
func scoreLabelCell(score int, cfg *contract.Config) string {
	if cfg.UseColors {
		return fmt.Sprintf("%d (%s)", score, contract.GetColorLabel(score))
	}
	return strconv.Itoa(score)
}

// PrintRecommendations outputs engine and rule-derived recommendations for
// the most recent snapshot.
func PrintRecommendations(recs []string, date string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		payload := map[string]any{"date": date, "recommendations": recs}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, payload)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"date", "recommendation"}, func(cw *csv.Writer) error {
				for _, rec := range recs {
					if err := cw.Write([]string{date, rec}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if len(recs) == 0 {
				_, err := fmt.Fprintln(w, "No recommendations. Code health looks steady.")
				return err
			}
			fmt.Fprintf(w, "Recommendations for %s:\n", date)
			for _, rec := range recs {
				fmt.Fprintf(w, "  - %s\n", rec)
			}
			return nil
		}, "recommendations")
	}
}
