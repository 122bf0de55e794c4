package core

import (
	"testing"

	"github.com/ElleNealAI/code-health-report/schema"
	"github.com/stretchr/testify/assert"
)

// metrics builds a FileMetrics with the six sub-scores in canonical order.
func metrics(path string, scores [6]int) schema.FileMetrics {
	return schema.FileMetrics{
		Filepath:              path,
		SizeScore:             scores[0],
		ComplexityScore:       scores[1],
		DuplicationScore:      scores[2],
		FunctionLengthScore:   scores[3],
		CommentDensityScore:   scores[4],
		NamingConventionScore: scores[5],
	}
}

// TestCompositeScore tests the rounded mean of the six sub-scores.
func TestCompositeScore(t *testing.T) {
	tests := []struct {
		name     string
		scores   [6]int
		expected int
	}{
		{
			name:     "all equal",
			scores:   [6]int{90, 90, 90, 90, 90, 90},
			expected: 90,
		},
		{
			name:     "rounds up at half",
			scores:   [6]int{100, 100, 100, 100, 100, 99},
			expected: 100, // mean 99.83
		},
		{
			name:     "rounds down below half",
			scores:   [6]int{0, 0, 0, 0, 0, 1},
			expected: 0, // mean 0.17
		},
		{
			name:     "mixed values",
			scores:   [6]int{80, 70, 90, 60, 75, 85},
			expected: 77, // mean 76.67
		},
		{
			name:     "zero-filled metrics",
			scores:   [6]int{0, 0, 0, 0, 0, 0},
			expected: 0,
		},
		{
			name:     "missing metric pulls mean down",
			scores:   [6]int{90, 90, 90, 90, 90, 0},
			expected: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompositeScore(metrics("src/a.ts", tt.scores))
			assert.Equal(t, tt.expected, result)
		})
	}
}
