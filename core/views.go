package core

import (
	"math"
	"sort"

	"github.com/ElleNealAI/code-health-report/schema"
)

// PreviousScoreIndex builds a filepath -> composite score mapping for the
// snapshot immediately preceding the target, covering every file across every
// component. If a filepath appears in multiple components the last one
// processed wins. A nil snapshot yields an empty index, so first-ever
// snapshots report zero deltas.
func PreviousScoreIndex(prev *schema.Snapshot) map[string]int {
	index := make(map[string]int)
	if prev == nil {
		return index
	}
	for _, comp := range prev.Results.Components {
		for _, f := range comp.Files {
			index[f.Filepath] = CompositeScore(f)
		}
	}
	return index
}

// BuildFileViews transforms every file of the target snapshot into a FileView
// and groups the views by category. Within each bucket files are sorted
// ascending by composite score (worst first), with filepath as tiebreaker.
// A file absent from the previous index reports PreviousScore equal to its
// current Score, never a spurious delta.
func BuildFileViews(target schema.Snapshot, prevIndex map[string]int) map[schema.Category][]schema.FileView {
	buckets := make(map[schema.Category][]schema.FileView)
	for _, comp := range target.Results.Components {
		for _, f := range comp.Files {
			score := CompositeScore(f)
			previous, seen := prevIndex[f.Filepath]
			if !seen {
				previous = score
			}
			view := schema.FileView{
				FileMetrics:   f,
				Score:         score,
				PreviousScore: previous,
				ScoreChange:   score - previous,
				Category:      Categorize(f.Filepath),
				Component:     comp.Name,
				Quality:       schema.FileQuality(f),
			}
			buckets[view.Category] = append(buckets[view.Category], view)
		}
	}
	for _, views := range buckets {
		sort.Slice(views, func(i, j int) bool {
			if views[i].Score != views[j].Score {
				return views[i].Score < views[j].Score
			}
			return views[i].Filepath < views[j].Filepath
		})
	}
	return buckets
}

// SummarizeBucket computes rounded mean scores for one category bucket.
// An empty bucket produces no summary at all, so callers never render NaN
// or zero-file entries.
func SummarizeBucket(files []schema.FileView) (schema.BucketSummary, bool) {
	if len(files) == 0 {
		return schema.BucketSummary{}, false
	}
	var scoreSum, prevSum int
	for _, f := range files {
		scoreSum += f.Score
		prevSum += f.PreviousScore
	}
	n := float64(len(files))
	avgScore := int(math.Round(float64(scoreSum) / n))
	avgPrev := int(math.Round(float64(prevSum) / n))
	return schema.BucketSummary{
		AvgScore:         avgScore,
		AvgPreviousScore: avgPrev,
		AvgChange:        avgScore - avgPrev,
		FileCount:        len(files),
	}, true
}

// BuildGroupedReport assembles the full aggregation output for one target
// snapshot, diffed against the optional preceding snapshot.
func BuildGroupedReport(target schema.Snapshot, prev *schema.Snapshot) schema.GroupedReport {
	buckets := BuildFileViews(target, PreviousScoreIndex(prev))
	summaries := make(map[schema.Category]schema.BucketSummary, len(buckets))
	for cat, views := range buckets {
		if summary, ok := SummarizeBucket(views); ok {
			summaries[cat] = summary
		}
	}
	return schema.GroupedReport{
		Date:            target.Date,
		OverallScore:    target.Results.OverallScore,
		Buckets:         buckets,
		Summaries:       summaries,
		Recommendations: Recommendations(target),
	}
}
