package core

import (
	"testing"

	"github.com/ElleNealAI/code-health-report/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot builds a single-component snapshot from file metrics.
func snapshot(date string, ts float64, files ...schema.FileMetrics) schema.Snapshot {
	return schema.Snapshot{
		Timestamp: ts,
		Date:      date,
		Results: schema.HealthReport{
			OverallScore: 75,
			Components:   []schema.ComponentResult{{Name: "frontend", Score: 75, Files: files}},
		},
	}
}

func TestPreviousScoreIndex(t *testing.T) {
	t.Run("nil snapshot yields empty index", func(t *testing.T) {
		index := PreviousScoreIndex(nil)
		assert.Empty(t, index)
	})

	t.Run("covers all components", func(t *testing.T) {
		prev := schema.Snapshot{
			Results: schema.HealthReport{
				Components: []schema.ComponentResult{
					{Name: "frontend", Files: []schema.FileMetrics{metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})}},
					{Name: "backend", Files: []schema.FileMetrics{metrics("b.py", [6]int{90, 90, 90, 90, 90, 90})}},
				},
			},
		}
		index := PreviousScoreIndex(&prev)
		assert.Equal(t, map[string]int{"a.ts": 60, "b.py": 90}, index)
	})

	t.Run("last component wins on duplicate path", func(t *testing.T) {
		prev := schema.Snapshot{
			Results: schema.HealthReport{
				Components: []schema.ComponentResult{
					{Name: "first", Files: []schema.FileMetrics{metrics("a.ts", [6]int{40, 40, 40, 40, 40, 40})}},
					{Name: "second", Files: []schema.FileMetrics{metrics("a.ts", [6]int{70, 70, 70, 70, 70, 70})}},
				},
			},
		}
		index := PreviousScoreIndex(&prev)
		assert.Equal(t, 70, index["a.ts"])
	})
}

func TestBuildFileViews(t *testing.T) {
	t.Run("delta against previous snapshot", func(t *testing.T) {
		prev := snapshot("2026-08-01", 1, metrics("ui/pages/A.tsx", [6]int{80, 80, 80, 80, 80, 80}))
		target := snapshot("2026-08-02", 2, metrics("ui/pages/A.tsx", [6]int{90, 90, 90, 90, 90, 90}))

		buckets := BuildFileViews(target, PreviousScoreIndex(&prev))
		views := buckets[schema.PagesCategory]
		require.Len(t, views, 1)

		assert.Equal(t, 90, views[0].Score)
		assert.Equal(t, 80, views[0].PreviousScore)
		assert.Equal(t, 10, views[0].ScoreChange)
		assert.Equal(t, "frontend", views[0].Component)
	})

	t.Run("unseen file defaults previous to current", func(t *testing.T) {
		target := snapshot("2026-08-02", 2, metrics("src/components/New.tsx", [6]int{70, 70, 70, 70, 70, 70}))

		buckets := BuildFileViews(target, map[string]int{})
		views := buckets[schema.ComponentsCategory]
		require.Len(t, views, 1)

		assert.Equal(t, 70, views[0].PreviousScore)
		assert.Zero(t, views[0].ScoreChange)
	})

	t.Run("buckets sorted worst first with filepath tiebreak", func(t *testing.T) {
		target := snapshot("2026-08-02", 2,
			metrics("src/pages/B.tsx", [6]int{90, 90, 90, 90, 90, 90}),
			metrics("src/pages/C.tsx", [6]int{40, 40, 40, 40, 40, 40}),
			metrics("src/pages/A.tsx", [6]int{40, 40, 40, 40, 40, 40}),
		)

		views := BuildFileViews(target, map[string]int{})[schema.PagesCategory]
		require.Len(t, views, 3)
		assert.Equal(t, "src/pages/A.tsx", views[0].Filepath)
		assert.Equal(t, "src/pages/C.tsx", views[1].Filepath)
		assert.Equal(t, "src/pages/B.tsx", views[2].Filepath)
	})

	t.Run("quality problems attached to views", func(t *testing.T) {
		target := snapshot("2026-08-02", 2, metrics("src/pages/A.tsx", [6]int{150, 80, 80, 80, 80, 80}))

		views := BuildFileViews(target, map[string]int{})[schema.PagesCategory]
		require.Len(t, views, 1)
		assert.Contains(t, views[0].Quality, "size_score out of range (150)")
	})
}

func TestSummarizeBucket(t *testing.T) {
	t.Run("empty bucket has no summary", func(t *testing.T) {
		_, ok := SummarizeBucket(nil)
		assert.False(t, ok)
	})

	t.Run("rounded averages", func(t *testing.T) {
		files := []schema.FileView{
			{Score: 80, PreviousScore: 70},
			{Score: 85, PreviousScore: 70},
		}
		summary, ok := SummarizeBucket(files)
		require.True(t, ok)
		assert.Equal(t, 83, summary.AvgScore) // 82.5 rounds up
		assert.Equal(t, 70, summary.AvgPreviousScore)
		assert.Equal(t, 13, summary.AvgChange)
		assert.Equal(t, 2, summary.FileCount)
	})
}

func TestBuildGroupedReport(t *testing.T) {
	prev := snapshot("2026-08-01", 1, metrics("src/pages/A.tsx", [6]int{80, 80, 80, 80, 80, 80}))
	target := snapshot("2026-08-02", 2,
		metrics("src/pages/A.tsx", [6]int{90, 90, 90, 90, 90, 90}),
		metrics("src/api/users.ts", [6]int{50, 50, 50, 50, 50, 50}),
	)
	target.Results.Recommendations = []string{"Split large files"}

	report := BuildGroupedReport(target, &prev)

	assert.Equal(t, "2026-08-02", report.Date)
	assert.Equal(t, 75, report.OverallScore)
	assert.Equal(t, []string{"Split large files"}, report.Recommendations)

	// Empty categories never appear
	assert.NotContains(t, report.Buckets, schema.ComponentsCategory)
	assert.NotContains(t, report.Summaries, schema.ComponentsCategory)

	require.Contains(t, report.Summaries, schema.PagesCategory)
	assert.Equal(t, 90, report.Summaries[schema.PagesCategory].AvgScore)
	assert.Equal(t, 10, report.Summaries[schema.PagesCategory].AvgChange)

	require.Contains(t, report.Summaries, schema.APIFilesCategory)
	assert.Zero(t, report.Summaries[schema.APIFilesCategory].AvgChange)
}
