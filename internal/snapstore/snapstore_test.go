package snapstore

import (
	"path/filepath"
	"testing"

	"github.com/ElleNealAI/code-health-report/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStore opens a store backed by a throwaway SQLite file.
func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	s, err := New(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.(*Store)
}

// sampleSnapshots returns two ordered snapshots for persistence tests.
func sampleSnapshots() []schema.Snapshot {
	return []schema.Snapshot{
		{
			Timestamp: 1785578400.5,
			Date:      "2026-08-01T10:00:00",
			Results: schema.HealthReport{
				OverallScore: 70,
				Components: []schema.ComponentResult{
					{Name: "frontend", Score: 70, Files: []schema.FileMetrics{
						{Filepath: "src/pages/A.tsx", SizeScore: 70, ComplexityScore: 70, DuplicationScore: 70,
							FunctionLengthScore: 70, CommentDensityScore: 70, NamingConventionScore: 70},
					}},
				},
				Recommendations: []string{"Split large files"},
			},
		},
		{
			Timestamp: 1785664800.5,
			Date:      "2026-08-02T10:00:00",
			Results:   schema.HealthReport{OverallScore: 72},
		},
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)
	snaps := sampleSnapshots()

	require.NoError(t, s.Save(snaps))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Ordered oldest first
	assert.Equal(t, "2026-08-01T10:00:00", loaded[0].Date)
	assert.InDelta(t, 1785578400.5, loaded[0].Timestamp, 0.001)
	assert.Equal(t, 70, loaded[0].Results.OverallScore)
	require.Len(t, loaded[0].Results.Components, 1)
	assert.Equal(t, "src/pages/A.tsx", loaded[0].Results.Components[0].Files[0].Filepath)
	assert.Equal(t, []string{"Split large files"}, loaded[0].Results.Recommendations)
}

func TestSQLiteSaveIsIdempotent(t *testing.T) {
	s := newSQLiteStore(t)
	snaps := sampleSnapshots()

	require.NoError(t, s.Save(snaps))
	require.NoError(t, s.Save(snaps)) // overlapping save is a no-op

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestSQLiteUpsertReplacesByTimestamp(t *testing.T) {
	s := newSQLiteStore(t)
	snaps := sampleSnapshots()
	require.NoError(t, s.Save(snaps[:1]))

	updated := snaps[0]
	updated.Results.OverallScore = 99
	require.NoError(t, s.Save([]schema.Snapshot{updated}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 99, loaded[0].Results.OverallScore)
}

func TestSQLiteStatus(t *testing.T) {
	s := newSQLiteStore(t)

	status, err := s.Status()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalSnapshots)

	require.NoError(t, s.Save(sampleSnapshots()))

	status, err = s.Status()
	require.NoError(t, err)
	assert.EqualValues(t, 2, status.TotalSnapshots)
	assert.Equal(t, 2026, status.LastEntryTime.Year())
	assert.True(t, status.OldestEntryTime.Before(status.LastEntryTime))
	assert.Positive(t, status.TableSizeBytes, "size estimate should reflect stored pages")
}

func TestSQLiteClear(t *testing.T) {
	s := newSQLiteStore(t)
	require.NoError(t, s.Save(sampleSnapshots()))
	require.NoError(t, s.Clear())

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestNoneBackendIsNoOp(t *testing.T) {
	s, err := New(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Save(sampleSnapshots()))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	status, err := s.Status()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, s.Clear())
}

func TestUnsupportedBackend(t *testing.T) {
	_, err := New(schema.DatabaseBackend("redis"), "")
	assert.ErrorContains(t, err, "unsupported backend")
}
