// Package schema has models, constants and validation for all parts of healthreport.
package schema

import "time"

// Snapshot is one completed analysis run as delivered by the analysis engine.
// The engine returns history entries oldest to newest and this ordering is
// preserved everywhere downstream.
type Snapshot struct {
	Timestamp float64      `json:"timestamp"` // Epoch seconds, fractional
	Date      string       `json:"date"`      // ISO-8601 date string from the engine
	Results   HealthReport `json:"results"`
}

// Time converts the epoch timestamp into a time.Time.
func (s Snapshot) Time() time.Time {
	sec := int64(s.Timestamp)
	nsec := int64((s.Timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

// HealthReport is the result envelope of a single analysis run.
type HealthReport struct {
	OverallScore    int               `json:"overall_score"` // 0-100, higher is better
	Components      []ComponentResult `json:"components"`
	Recommendations []string          `json:"recommendations"`
}

// ComponentResult is a named grouping of files supplied by the engine,
// e.g. "Pages" or "APIs". Its score is supplied, not derived here.
type ComponentResult struct {
	Name   string        `json:"name"`
	Score  int           `json:"score"` // 0-100, higher is better
	Files  []FileMetrics `json:"files"`
	Issues []string      `json:"issues"`
}

// FileMetrics holds the six raw sub-scores for a single file.
// Each sub-score is an integer in [0,100]; higher is better. The filepath is
// unique within a component but may recur across components and snapshots,
// and is the join key for all trend computation.
type FileMetrics struct {
	Filepath              string   `json:"filepath"`
	SizeScore             int      `json:"size_score"`
	ComplexityScore       int      `json:"complexity_score"`
	DuplicationScore      int      `json:"duplication_score"`
	FunctionLengthScore   int      `json:"function_length_score"`
	CommentDensityScore   int      `json:"comment_density_score"`
	NamingConventionScore int      `json:"naming_convention_score"`
	Issues                []string `json:"issues"`
}

// SubScores returns the six sub-scores in their canonical order.
func (f FileMetrics) SubScores() [6]int {
	return [6]int{
		f.SizeScore,
		f.ComplexityScore,
		f.DuplicationScore,
		f.FunctionLengthScore,
		f.CommentDensityScore,
		f.NamingConventionScore,
	}
}

// FileView is the derived, render-ready view of one file in one snapshot.
// It is computed fresh on every aggregation pass and never persisted.
type FileView struct {
	FileMetrics

	Score         int      `json:"score"`          // round(mean of the six sub-scores)
	PreviousScore int      `json:"previous_score"` // Score in the nearest earlier snapshot; Score if none
	ScoreChange   int      `json:"score_change"`   // Score - PreviousScore
	Category      Category `json:"category"`       // Derived from Filepath alone
	Component     string   `json:"component"`      // Name of the owning ComponentResult
	Quality       []string `json:"quality,omitempty"`
}

// FileObservation is one file's view tagged with the snapshot it came from.
// Used when flattening a whole history into row-oriented exports.
type FileObservation struct {
	Timestamp float64 `json:"timestamp"`
	Date      string  `json:"date"`
	FileView
}

// BucketSummary holds per-category aggregate numbers.
type BucketSummary struct {
	AvgScore         int `json:"avg_score"`
	AvgPreviousScore int `json:"avg_previous_score"`
	AvgChange        int `json:"avg_change"`
	FileCount        int `json:"file_count"`
}

// Trend describes how a file's composite score moved between its first and
// last observation across the whole supplied history. This is distinct from
// FileView.ScoreChange, which only looks one snapshot back.
type Trend struct {
	Filepath  string         `json:"filepath"`
	Direction TrendDirection `json:"direction"`
	Magnitude int            `json:"magnitude"` // last - first
	First     int            `json:"first"`
	Last      int            `json:"last"`
	Points    []TrendPoint   `json:"points"`
}

// TrendPoint is one observation of a file's composite score.
type TrendPoint struct {
	Timestamp float64 `json:"timestamp"`
	Date      string  `json:"date"`
	Score     int     `json:"score"`
}

// OverallPoint is one snapshot's overall and per-category scores, used for
// history tables and charts.
type OverallPoint struct {
	Timestamp float64          `json:"timestamp"`
	Date      string           `json:"date"`
	Overall   int              `json:"overall"`
	Buckets   map[Category]int `json:"buckets"`
}

// GroupedReport is the full aggregation output for one target snapshot.
type GroupedReport struct {
	Date            string                     `json:"date"`
	OverallScore    int                        `json:"overall_score"`
	Buckets         map[Category][]FileView    `json:"buckets"`
	Summaries       map[Category]BucketSummary `json:"summaries"`
	Recommendations []string                   `json:"recommendations"`
}
