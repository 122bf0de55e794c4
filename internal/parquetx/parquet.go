// Package parquetx exports snapshot history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquetx

import (
	"fmt"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/ElleNealAI/code-health-report/schema"
)

// SnapshotRow represents one analysis run in the exported snapshots file.
type SnapshotRow struct {
	// Timestamp is the engine's seconds-since-epoch run time
	Timestamp float64 `parquet:"timestamp,snappy"`

	// Date is the engine's ISO-8601 run time
	Date string `parquet:"date,snappy"`

	// OverallScore is the engine's repository-wide composite
	OverallScore int32 `parquet:"overall_score,snappy"`

	// FileCount is the number of files observed in this run
	FileCount int32 `parquet:"file_count,snappy"`

	// Recommendations contains the engine's advice strings, pipe-joined (nullable)
	Recommendations *string `parquet:"recommendations,optional,snappy"`
}

// FileRow represents one file observation in the exported files file.
type FileRow struct {
	// Timestamp references the parent snapshot
	Timestamp float64 `parquet:"timestamp,snappy"`

	// Date references the parent snapshot
	Date string `parquet:"date,snappy"`

	// FilePath is the path reported by the engine
	FilePath string `parquet:"file_path,snappy"`

	// Category is the path-derived dashboard bucket
	Category string `parquet:"category,snappy"`

	// Component is the engine component that reported the file
	Component string `parquet:"component,snappy"`

	// Score is the per-file composite
	Score int32 `parquet:"score,snappy"`

	// PreviousScore is the composite from the nearest earlier snapshot
	PreviousScore int32 `parquet:"previous_score,snappy"`

	// ScoreChange is Score minus PreviousScore
	ScoreChange int32 `parquet:"score_change,snappy"`

	SizeScore             int32 `parquet:"size_score,snappy"`
	ComplexityScore       int32 `parquet:"complexity_score,snappy"`
	DuplicationScore      int32 `parquet:"duplication_score,snappy"`
	FunctionLengthScore   int32 `parquet:"function_length_score,snappy"`
	CommentDensityScore   int32 `parquet:"comment_density_score,snappy"`
	NamingConventionScore int32 `parquet:"naming_convention_score,snappy"`

	// Issues contains the engine's issue strings, pipe-joined (nullable)
	Issues *string `parquet:"issues,optional,snappy"`
}

// WriteHistory writes the snapshot history to two Parquet files derived from
// outputPath: one row per snapshot and one row per file observation. A path
// like "export.parquet" yields "export_snapshots.parquet" and
// "export_files.parquet".
func WriteHistory(history []schema.Snapshot, files []schema.FileObservation, outputPath string) error {
	base := strings.TrimSuffix(outputPath, ".parquet")

	snapshotsPath := base + "_snapshots.parquet"
	if err := writeParquet(snapshotsPath, convertSnapshots(history)); err != nil {
		return err
	}
	fmt.Printf("Wrote %d snapshot(s) to %s\n", len(history), snapshotsPath)

	filesPath := base + "_files.parquet"
	if err := writeParquet(filesPath, convertFiles(files)); err != nil {
		return err
	}
	fmt.Printf("Wrote %d file observation(s) to %s\n", len(files), filesPath)

	return nil
}

// writeParquet writes rows to a Parquet file using struct schema inference.
func writeParquet[T any](outputPath string, rows []T) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

func convertSnapshots(history []schema.Snapshot) []SnapshotRow {
	rows := make([]SnapshotRow, len(history))
	for i, snap := range history {
		fileCount := 0
		for _, comp := range snap.Results.Components {
			fileCount += len(comp.Files)
		}
		rows[i] = SnapshotRow{
			Timestamp:       snap.Timestamp,
			Date:            snap.Date,
			OverallScore:    int32(snap.Results.OverallScore),
			FileCount:       int32(fileCount),
			Recommendations: joined(snap.Results.Recommendations),
		}
	}
	return rows
}

func convertFiles(files []schema.FileObservation) []FileRow {
	rows := make([]FileRow, len(files))
	for i, obs := range files {
		rows[i] = FileRow{
			Timestamp:             obs.Timestamp,
			Date:                  obs.Date,
			FilePath:              obs.Filepath,
			Category:              string(obs.Category),
			Component:             obs.Component,
			Score:                 int32(obs.Score),
			PreviousScore:         int32(obs.PreviousScore),
			ScoreChange:           int32(obs.ScoreChange),
			SizeScore:             int32(obs.SizeScore),
			ComplexityScore:       int32(obs.ComplexityScore),
			DuplicationScore:      int32(obs.DuplicationScore),
			FunctionLengthScore:   int32(obs.FunctionLengthScore),
			CommentDensityScore:   int32(obs.CommentDensityScore),
			NamingConventionScore: int32(obs.NamingConventionScore),
			Issues:                joined(obs.Issues),
		}
	}
	return rows
}

// joined pipe-joins a string slice, returning nil for an empty slice so the
// column stays null instead of empty.
func joined(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	s := strings.Join(items, "|")
	return &s
}
