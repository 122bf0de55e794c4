// Package chart renders score history as a standalone HTML chart.
package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ElleNealAI/code-health-report/schema"
)

const (
	chartWidth  = "1100px"
	chartHeight = "500px"
)

// WriteTrendChart writes a line chart of overall and per-category scores
// across snapshots to the given HTML file.
func WriteTrendChart(points []schema.OverallPoint, chartFile string) error {
	if len(points) == 0 {
		return fmt.Errorf("no history points to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Code Health History",
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Code Health History",
			Subtitle: "Overall and per-category scores across analysis runs",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100, Name: "Score"}),
	)

	dates := make([]string, len(points))
	overall := make([]opts.LineData, len(points))
	for i, p := range points {
		dates[i] = p.Date
		overall[i] = opts.LineData{Value: p.Overall}
	}

	line.SetXAxis(dates)
	line.AddSeries("Overall", overall,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	for _, cat := range schema.CategoryOrder {
		series := make([]opts.LineData, len(points))
		seen := false
		for i, p := range points {
			if score, ok := p.Buckets[cat]; ok {
				series[i] = opts.LineData{Value: score}
				seen = true
			} else {
				series[i] = opts.LineData{Value: nil}
			}
		}
		if !seen {
			continue // category never observed in this history
		}
		line.AddSeries(string(cat), series)
	}

	f, err := os.Create(chartFile)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return line.Render(f)
}
