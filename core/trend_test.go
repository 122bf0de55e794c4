package core

import (
	"testing"

	"github.com/ElleNealAI/code-health-report/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTrend(t *testing.T) {
	t.Run("direction from first and last only", func(t *testing.T) {
		history := []schema.Snapshot{
			snapshot("2026-08-01", 1, metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})),
			snapshot("2026-08-02", 2, metrics("a.ts", [6]int{70, 70, 70, 70, 70, 70})),
			snapshot("2026-08-03", 3, metrics("a.ts", [6]int{65, 65, 65, 65, 65, 65})),
		}

		trend, ok := FileTrend("a.ts", history)
		require.True(t, ok)
		assert.Equal(t, schema.TrendUp, trend.Direction)
		assert.Equal(t, 5, trend.Magnitude) // 65 - 60, middle point ignored
		assert.Equal(t, 60, trend.First)
		assert.Equal(t, 65, trend.Last)
		assert.Len(t, trend.Points, 3)
	})

	t.Run("single observation has no trend", func(t *testing.T) {
		history := []schema.Snapshot{
			snapshot("2026-08-01", 1, metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})),
		}
		_, ok := FileTrend("a.ts", history)
		assert.False(t, ok)
	})

	t.Run("gaps in history are skipped", func(t *testing.T) {
		history := []schema.Snapshot{
			snapshot("2026-08-01", 1, metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})),
			snapshot("2026-08-02", 2, metrics("b.ts", [6]int{50, 50, 50, 50, 50, 50})),
			snapshot("2026-08-03", 3, metrics("a.ts", [6]int{40, 40, 40, 40, 40, 40})),
		}

		trend, ok := FileTrend("a.ts", history)
		require.True(t, ok)
		assert.Equal(t, schema.TrendDown, trend.Direction)
		assert.Equal(t, -20, trend.Magnitude)
		assert.Len(t, trend.Points, 2)
	})

	t.Run("flat scores are neutral", func(t *testing.T) {
		history := []schema.Snapshot{
			snapshot("2026-08-01", 1, metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})),
			snapshot("2026-08-02", 2, metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})),
		}

		trend, ok := FileTrend("a.ts", history)
		require.True(t, ok)
		assert.Equal(t, schema.TrendNeutral, trend.Direction)
		assert.Zero(t, trend.Magnitude)
	})

	t.Run("unknown file has no trend", func(t *testing.T) {
		history := []schema.Snapshot{
			snapshot("2026-08-01", 1, metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})),
			snapshot("2026-08-02", 2, metrics("a.ts", [6]int{60, 60, 60, 60, 60, 60})),
		}
		_, ok := FileTrend("missing.ts", history)
		assert.False(t, ok)
	})
}

func TestAllTrends(t *testing.T) {
	history := []schema.Snapshot{
		snapshot("2026-08-01", 1,
			metrics("declining.ts", [6]int{90, 90, 90, 90, 90, 90}),
			metrics("improving.ts", [6]int{50, 50, 50, 50, 50, 50}),
			metrics("lonely.ts", [6]int{70, 70, 70, 70, 70, 70}),
		),
		snapshot("2026-08-02", 2,
			metrics("declining.ts", [6]int{60, 60, 60, 60, 60, 60}),
			metrics("improving.ts", [6]int{80, 80, 80, 80, 80, 80}),
		),
	}

	trends := AllTrends(history)
	require.Len(t, trends, 2) // lonely.ts has one observation, skipped

	// Steepest decline first
	assert.Equal(t, "declining.ts", trends[0].Filepath)
	assert.Equal(t, -30, trends[0].Magnitude)
	assert.Equal(t, "improving.ts", trends[1].Filepath)
	assert.Equal(t, 30, trends[1].Magnitude)
}

func TestOverallTrend(t *testing.T) {
	history := []schema.Snapshot{
		snapshot("2026-08-01", 1, metrics("src/pages/A.tsx", [6]int{60, 60, 60, 60, 60, 60})),
		snapshot("2026-08-02", 2,
			metrics("src/pages/A.tsx", [6]int{70, 70, 70, 70, 70, 70}),
			metrics("src/api/b.ts", [6]int{50, 50, 50, 50, 50, 50}),
		),
	}

	points := OverallTrend(history)
	require.Len(t, points, 2)

	assert.Equal(t, "2026-08-01", points[0].Date)
	assert.Equal(t, 75, points[0].Overall)
	assert.Equal(t, map[schema.Category]int{schema.PagesCategory: 60}, points[0].Buckets)

	assert.Equal(t, 70, points[1].Buckets[schema.PagesCategory])
	assert.Equal(t, 50, points[1].Buckets[schema.APIFilesCategory])
	assert.NotContains(t, points[1].Buckets, schema.OtherCategory)
}
