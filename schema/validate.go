package schema

import "fmt"

// Sub-score field names in canonical order, aligned with FileMetrics.SubScores.
var subScoreFields = [6]string{
	"size_score",
	"complexity_score",
	"duplication_score",
	"function_length_score",
	"comment_density_score",
	"naming_convention_score",
}

// QualityIssue flags a suspect record found while validating an engine
// response. Issues are surfaced as warnings, never silently zero-filled away.
type QualityIssue struct {
	Component string `json:"component"`
	Filepath  string `json:"filepath"`
	Problem   string `json:"problem"`
}

func (q QualityIssue) String() string {
	return fmt.Sprintf("%s/%s: %s", q.Component, q.Filepath, q.Problem)
}

// FileQuality returns one problem string per suspect sub-score.
// A zero sub-score is accepted as-is (the engine legitimately emits 0 for a
// failed metric); only values outside [0,100] are flagged.
func FileQuality(f FileMetrics) []string {
	var problems []string
	for i, v := range f.SubScores() {
		if v < 0 || v > 100 {
			problems = append(problems, fmt.Sprintf("%s out of range (%d)", subScoreFields[i], v))
		}
	}
	if f.Filepath == "" {
		problems = append(problems, "missing filepath")
	}
	return problems
}

// ValidateReport scans a decoded engine response and collects all quality
// issues. The report is returned to the caller untouched; callers decide
// whether to warn or reject.
func ValidateReport(r *HealthReport) []QualityIssue {
	var issues []QualityIssue
	if r == nil {
		return issues
	}
	if r.OverallScore < 0 || r.OverallScore > 100 {
		issues = append(issues, QualityIssue{
			Problem: fmt.Sprintf("overall_score out of range (%d)", r.OverallScore),
		})
	}
	for _, comp := range r.Components {
		if comp.Score < 0 || comp.Score > 100 {
			issues = append(issues, QualityIssue{
				Component: comp.Name,
				Problem:   fmt.Sprintf("component score out of range (%d)", comp.Score),
			})
		}
		for _, f := range comp.Files {
			for _, p := range FileQuality(f) {
				issues = append(issues, QualityIssue{
					Component: comp.Name,
					Filepath:  f.Filepath,
					Problem:   p,
				})
			}
		}
	}
	return issues
}
