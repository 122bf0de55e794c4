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

// PrintTrends outputs per-file trend results, dispatching based on the
// output format configured.
func PrintTrends(trends []schema.Trend, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, trends)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsCSV(w, trends)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsTable(w, trends, cfg, duration)
		}, "table")
	}
}

func writeTrendsTable(w io.Writer, trends []schema.Trend, cfg *contract.Config, duration time.Duration) error {
	if len(trends) == 0 {
		fmt.Fprintln(w, "No trend data available. At least two observations per file are needed.")
		_, err := fmt.Fprintf(w, "Trends completed in %v\n", duration)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"File", "Direction", "Change", "First", "Last", "Points"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, t := range trends {
		data = append(data, []string{
			contract.TruncatePath(t.Filepath, getMaxTablePathWidth(cfg)),
			trendMarker(t.Direction, cfg),
			contract.FormatDelta(t.Magnitude),
			strconv.Itoa(t.First),
			strconv.Itoa(t.Last),
			strconv.Itoa(len(t.Points)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTrends completed in %v\n", duration)
	return err
}

func writeTrendsCSV(w io.Writer, trends []schema.Trend) error {
	header := []string{"file", "direction", "change", "first", "last", "points"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, t := range trends {
			rec := []string{
				t.Filepath,
				string(t.Direction),
				strconv.Itoa(t.Magnitude),
				strconv.Itoa(t.First),
				strconv.Itoa(t.Last),
				strconv.Itoa(len(t.Points)),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// trendMarker renders a trend direction with optional emoji and color.
func trendMarker(dir schema.TrendDirection, cfg *contract.Config) string {
	text := string(dir)
	if cfg.UseEmojis {
		switch dir {
		case schema.TrendUp:
			text = "📈 " + text
		case schema.TrendDown:
			text = "📉 " + text
		default:
			text = "➡️ " + text
		}
	}
	if cfg.UseColors {
		switch dir {
		case schema.TrendUp:
			return contract.GoodColor.Sprint(text)
		case schema.TrendDown:
			return contract.PoorColor.Sprint(text)
		default:
			return contract.DimColor.Sprint(text)
		}
	}
	return text
}
