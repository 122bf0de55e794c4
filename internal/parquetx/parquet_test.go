package parquetx

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElleNealAI/code-health-report/schema"
)

func TestSnapshotRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(SnapshotRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"timestamp",
		"date",
		"overall_score",
		"file_count",
		"recommendations",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestFileRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(FileRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"timestamp",
		"date",
		"file_path",
		"category",
		"component",
		"score",
		"previous_score",
		"score_change",
		"size_score",
		"complexity_score",
		"duplication_score",
		"function_length_score",
		"comment_density_score",
		"naming_convention_score",
		"issues",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func sampleHistory() []schema.Snapshot {
	return []schema.Snapshot{
		{
			Timestamp: 1785578400.5,
			Date:      "2026-08-01T10:00:00",
			Results: schema.HealthReport{
				OverallScore: 70,
				Components: []schema.ComponentResult{{
					Name:  "frontend",
					Score: 70,
					Files: []schema.FileMetrics{
						{Filepath: "src/pages/Home.tsx", SizeScore: 70, ComplexityScore: 70, DuplicationScore: 70, FunctionLengthScore: 70, CommentDensityScore: 70, NamingConventionScore: 70},
					},
				}},
			},
		},
		{
			Timestamp: 1785664800.5,
			Date:      "2026-08-02T10:00:00",
			Results: schema.HealthReport{
				OverallScore: 75,
				Components: []schema.ComponentResult{{
					Name:  "frontend",
					Score: 75,
					Files: []schema.FileMetrics{
						{Filepath: "src/pages/Home.tsx", SizeScore: 80, ComplexityScore: 80, DuplicationScore: 80, FunctionLengthScore: 80, CommentDensityScore: 80, NamingConventionScore: 80, Issues: []string{"File is too large", "Complex logic"}},
					},
				}},
				Recommendations: []string{"Split large files", "Reduce complexity"},
			},
		},
	}
}

func sampleObservations() []schema.FileObservation {
	view := schema.FileView{
		FileMetrics: schema.FileMetrics{
			Filepath:  "src/pages/Home.tsx",
			SizeScore: 80, ComplexityScore: 80, DuplicationScore: 80,
			FunctionLengthScore: 80, CommentDensityScore: 80, NamingConventionScore: 80,
			Issues: []string{"File is too large", "Complex logic"},
		},
		Score:         80,
		PreviousScore: 70,
		ScoreChange:   10,
		Category:      schema.PagesCategory,
		Component:     "frontend",
	}
	return []schema.FileObservation{
		{Timestamp: 1785664800.5, Date: "2026-08-02T10:00:00", FileView: view},
	}
}

func TestWriteHistory(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "export.parquet")

	err := WriteHistory(sampleHistory(), sampleObservations(), outputPath)
	require.NoError(t, err, "Writing Parquet files should not produce error")

	snapshotsPath := filepath.Join(tmpDir, "export_snapshots.parquet")
	filesPath := filepath.Join(tmpDir, "export_files.parquet")

	for _, p := range []string{snapshotsPath, filesPath} {
		info, err := os.Stat(p)
		require.NoError(t, err, "Output file %s should exist", p)
		assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")
	}

	// Read back the snapshots file and verify data integrity
	file, err := os.Open(snapshotsPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[SnapshotRow](file)
	defer reader.Close()

	readData := make([]SnapshotRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, 2, n, "Should read all records")

	assert.InDelta(t, 1785578400.5, readData[0].Timestamp, 0.001)
	assert.Equal(t, int32(70), readData[0].OverallScore)
	assert.Equal(t, int32(1), readData[0].FileCount)
	assert.Nil(t, readData[0].Recommendations, "Recommendations should be nil when absent")

	require.NotNil(t, readData[1].Recommendations)
	assert.Equal(t, "Split large files|Reduce complexity", *readData[1].Recommendations)
}

func TestWriteHistoryFileRows(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "export.parquet")

	err := WriteHistory(sampleHistory(), sampleObservations(), outputPath)
	require.NoError(t, err)

	file, err := os.Open(filepath.Join(tmpDir, "export_files.parquet"))
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[FileRow](file)
	defer reader.Close()

	readData := make([]FileRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, 1, n, "Should read all records")

	row := readData[0]
	assert.Equal(t, "src/pages/Home.tsx", row.FilePath)
	assert.Equal(t, "Pages", row.Category)
	assert.Equal(t, "frontend", row.Component)
	assert.Equal(t, int32(80), row.Score)
	assert.Equal(t, int32(70), row.PreviousScore)
	assert.Equal(t, int32(10), row.ScoreChange)
	require.NotNil(t, row.Issues)
	assert.Equal(t, "File is too large|Complex logic", *row.Issues)
}

func TestWriteHistory_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty.parquet")

	err := WriteHistory(nil, nil, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	for _, name := range []string{"empty_snapshots.parquet", "empty_files.parquet"} {
		info, err := os.Stat(filepath.Join(tmpDir, name))
		require.NoError(t, err, "Output file %s should exist", name)
		assert.Greater(t, info.Size(), int64(0), "Parquet footer should still be written")
	}
}
