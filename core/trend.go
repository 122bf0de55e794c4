package core

import (
	"sort"

	"github.com/ElleNealAI/code-health-report/schema"
)

// FileTrend collects the composite score for one filepath from every snapshot
// in which it appears and classifies the movement between the first and last
// observation. Intermediate observations are kept as points but do not affect
// the direction or magnitude. Fewer than two observations produce no trend.
func FileTrend(path string, history []schema.Snapshot) (schema.Trend, bool) {
	var points []schema.TrendPoint
	for _, snap := range history {
		// Last component wins when a filepath recurs within one snapshot,
		// matching the previous-score index semantics.
		score, seen := 0, false
		for _, comp := range snap.Results.Components {
			for _, f := range comp.Files {
				if f.Filepath == path {
					score, seen = CompositeScore(f), true
				}
			}
		}
		if seen {
			points = append(points, schema.TrendPoint{
				Timestamp: snap.Timestamp,
				Date:      snap.Date,
				Score:     score,
			})
		}
	}
	if len(points) < 2 {
		return schema.Trend{}, false
	}

	first := points[0].Score
	last := points[len(points)-1].Score
	magnitude := last - first

	direction := schema.TrendNeutral
	switch {
	case magnitude > 0:
		direction = schema.TrendUp
	case magnitude < 0:
		direction = schema.TrendDown
	}

	return schema.Trend{
		Filepath:  path,
		Direction: direction,
		Magnitude: magnitude,
		First:     first,
		Last:      last,
		Points:    points,
	}, true
}

// AllTrends computes trends for every filepath observed anywhere in the
// history. Files with a single observation are skipped. Results are sorted
// by magnitude ascending (steepest decline first) with filepath as
// tiebreaker.
func AllTrends(history []schema.Snapshot) []schema.Trend {
	seen := make(map[string]struct{})
	var paths []string
	for _, snap := range history {
		for _, comp := range snap.Results.Components {
			for _, f := range comp.Files {
				if _, ok := seen[f.Filepath]; !ok {
					seen[f.Filepath] = struct{}{}
					paths = append(paths, f.Filepath)
				}
			}
		}
	}

	trends := make([]schema.Trend, 0, len(paths))
	for _, p := range paths {
		if trend, ok := FileTrend(p, history); ok {
			trends = append(trends, trend)
		}
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Magnitude != trends[j].Magnitude {
			return trends[i].Magnitude < trends[j].Magnitude
		}
		return trends[i].Filepath < trends[j].Filepath
	})
	return trends
}

// OverallTrend produces one point per snapshot with the engine-supplied
// overall score and the per-category average composite score, for history
// tables and charts.
func OverallTrend(history []schema.Snapshot) []schema.OverallPoint {
	points := make([]schema.OverallPoint, 0, len(history))
	for _, snap := range history {
		buckets := BuildFileViews(snap, map[string]int{})
		bucketScores := make(map[schema.Category]int, len(buckets))
		for cat, views := range buckets {
			if summary, ok := SummarizeBucket(views); ok {
				bucketScores[cat] = summary.AvgScore
			}
		}
		points = append(points, schema.OverallPoint{
			Timestamp: snap.Timestamp,
			Date:      snap.Date,
			Overall:   snap.Results.OverallScore,
			Buckets:   bucketScores,
		})
	}
	return points
}
