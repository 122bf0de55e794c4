package core

import (
	"fmt"
	"strings"

	"github.com/ElleNealAI/code-health-report/schema"
)

// practiceRule maps an issue keyword to a suggested best practice.
type practiceRule struct {
	keywords []string
	advice   string
}

// practiceRules is checked in order; each rule contributes its advice at most
// once per file regardless of how many issues match.
var practiceRules = []practiceRule{
	{[]string{"large file"}, "Split this file into smaller, more focused modules"},
	{[]string{"complex"}, "Break complex logic into smaller, single-purpose functions"},
	{[]string{"duplicat"}, "Extract duplicated code into shared functions or components"},
	{[]string{"function length", "long method", "long function"}, "Refactor long functions into smaller units with clear responsibilities"},
	{[]string{"comment"}, "Add clarifying comments to non-obvious logic"},
	{[]string{"naming"}, "Apply consistent naming conventions throughout the file"},
}

// Recommendations returns the engine-supplied recommendation strings for one
// snapshot, untransformed.
func Recommendations(snap schema.Snapshot) []string {
	return snap.Results.Recommendations
}

// BestPractices derives suggested best practices from free-text issue
// strings by case-insensitive substring match. Order follows the rule table
// and duplicates are collapsed.
func BestPractices(issues []string) []string {
	var practices []string
	for _, rule := range practiceRules {
		matched := false
		for _, issue := range issues {
			lowered := strings.ToLower(issue)
			for _, kw := range rule.keywords {
				if strings.Contains(lowered, kw) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if matched {
			practices = append(practices, rule.advice)
		}
	}
	return practices
}

// FixPrompt renders the deterministic fix-prompt text for a single file:
// the filepath, its bulleted issue list, and keyword-derived best practices.
// The output is plain prose meant for a clipboard or an AI assistant, not a
// machine-readable format.
func FixPrompt(view schema.FileView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please improve the code health of `%s` (current score: %d/100).\n", view.Filepath, view.Score)

	if len(view.Issues) > 0 {
		b.WriteString("\nIdentified issues:\n")
		for _, issue := range view.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	} else {
		b.WriteString("\nNo specific issues were identified for this file.\n")
	}

	if practices := BestPractices(view.Issues); len(practices) > 0 {
		b.WriteString("\nSuggested best practices:\n")
		for _, p := range practices {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	b.WriteString("\nPlease preserve existing behavior while addressing these issues.\n")
	return b.String()
}
