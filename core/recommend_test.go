package core

import (
	"strings"
	"testing"

	"github.com/ElleNealAI/code-health-report/schema"
	"github.com/stretchr/testify/assert"
)

func TestBestPractices(t *testing.T) {
	tests := []struct {
		name     string
		issues   []string
		expected int
		contains string
	}{
		{
			name:     "no issues",
			issues:   nil,
			expected: 0,
		},
		{
			name:     "large file issue",
			issues:   []string{"Large file: 1200 lines"},
			expected: 1,
			contains: "Split this file",
		},
		{
			name:     "complexity issue case-insensitive",
			issues:   []string{"HIGH COMPLEXITY detected in render()"},
			expected: 1,
			contains: "single-purpose functions",
		},
		{
			name:     "duplicate advice collapsed",
			issues:   []string{"duplicated block at line 12", "duplication with Chart.tsx"},
			expected: 1,
			contains: "Extract duplicated code",
		},
		{
			name:     "multiple rule matches",
			issues:   []string{"Large file", "poor naming in helpers"},
			expected: 2,
		},
		{
			name:     "unmatched issue yields nothing",
			issues:   []string{"something exotic"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			practices := BestPractices(tt.issues)
			assert.Len(t, practices, tt.expected)
			if tt.contains != "" {
				assert.Contains(t, strings.Join(practices, "\n"), tt.contains)
			}
		})
	}
}

func TestBestPracticesOrder(t *testing.T) {
	// Advice follows the rule table order, not issue order.
	issues := []string{"bad naming everywhere", "large file detected"}
	practices := BestPractices(issues)
	assert.Equal(t, []string{
		"Split this file into smaller, more focused modules",
		"Apply consistent naming conventions throughout the file",
	}, practices)
}

func TestRecommendations(t *testing.T) {
	snap := snapshot("2026-08-02", 2)
	snap.Results.Recommendations = []string{"Address declining files", "Split large modules"}
	assert.Equal(t, snap.Results.Recommendations, Recommendations(snap))
}

func TestFixPrompt(t *testing.T) {
	t.Run("with issues", func(t *testing.T) {
		view := schema.FileView{
			FileMetrics: schema.FileMetrics{
				Filepath: "src/components/Chart.tsx",
				Issues:   []string{"Large file: 900 lines", "High complexity"},
			},
			Score: 42,
		}
		prompt := FixPrompt(view)

		assert.Contains(t, prompt, "`src/components/Chart.tsx`")
		assert.Contains(t, prompt, "42/100")
		assert.Contains(t, prompt, "- Large file: 900 lines")
		assert.Contains(t, prompt, "Suggested best practices:")
		assert.Contains(t, prompt, "Split this file")
		assert.Contains(t, prompt, "preserve existing behavior")
	})

	t.Run("without issues", func(t *testing.T) {
		view := schema.FileView{
			FileMetrics: schema.FileMetrics{Filepath: "src/ok.ts"},
			Score:       95,
		}
		prompt := FixPrompt(view)

		assert.Contains(t, prompt, "No specific issues were identified")
		assert.NotContains(t, prompt, "Suggested best practices:")
	})

	t.Run("deterministic output", func(t *testing.T) {
		view := schema.FileView{
			FileMetrics: schema.FileMetrics{Filepath: "src/a.ts", Issues: []string{"complex logic"}},
			Score:       60,
		}
		assert.Equal(t, FixPrompt(view), FixPrompt(view))
	})
}
