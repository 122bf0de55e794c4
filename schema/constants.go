package schema

// Custom string types for type safety.
type (
	// Category is a fixed label assigned to a file by path-pattern matching.
	Category string

	// TrendDirection represents the direction of a whole-history trend.
	TrendDirection string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the snapshot store.
	DatabaseBackend string
)

// All categories supported.
const (
	PagesCategory      Category = "Pages"
	ComponentsCategory Category = "Components"
	UIFilesCategory    Category = "UI Files"
	APIFilesCategory   Category = "API Files"
	OtherCategory      Category = "Other" // catch-all
)

// CategoryOrder is the fixed ordering used for grouped output.
var CategoryOrder = []Category{
	PagesCategory,
	ComponentsCategory,
	UIFilesCategory,
	APIFilesCategory,
	OtherCategory,
}

// All trend directions supported.
const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All snapshot store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// ValidCacheBackends lists all valid snapshot store backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Score thresholds for status labels and colors. A score at or above
// GoodScoreMin renders green, at or above FairScoreMin yellow, below red.
const (
	GoodScoreMin = 80
	FairScoreMin = 50
)

// ScoreLabel maps a composite score to a human-readable status label.
func ScoreLabel(score int) string {
	switch {
	case score >= GoodScoreMin:
		return "good"
	case score >= FairScoreMin:
		return "fair"
	default:
		return "poor"
	}
}
