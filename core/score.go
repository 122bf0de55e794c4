// Package core implements the history aggregation logic: composite scores,
// categorization, snapshot deltas, whole-history trends and bucket summaries.
// Everything here is pure and stateless; it is safe to call concurrently for
// different inputs.
package core

import (
	"math"

	"github.com/ElleNealAI/code-health-report/schema"
)

// CompositeScore calculates a file's composite health score (0-100) as the
// rounded arithmetic mean of its six sub-scores. Missing sub-scores decode as
// zero and simply pull the mean down; out-of-range values are flagged at the
// boundary (schema.FileQuality), not here.
func CompositeScore(f schema.FileMetrics) int {
	var sum int
	for _, v := range f.SubScores() {
		sum += v
	}
	return int(math.Round(float64(sum) / 6.0))
}
