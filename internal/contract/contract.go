// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/ElleNealAI/code-health-report/schema"
)

// HealthClient defines the operations the external analysis engine exposes.
// This allows the aggregation logic to be tested without a running engine.
type HealthClient interface {
	// Analyze triggers a fresh scan on the engine and returns the resulting
	// report envelope.
	Analyze(ctx context.Context) (*schema.HealthReport, error)

	// History returns all stored analysis snapshots, ordered oldest to newest.
	History(ctx context.Context) ([]schema.Snapshot, error)
}

// SnapshotStore defines the interface for the local snapshot cache.
// The engine keeps only its most recent runs, so fetched history is mirrored
// locally to keep older observations available for trend computation.
type SnapshotStore interface {
	// Save upserts a batch of snapshots, keyed by timestamp.
	Save(snapshots []schema.Snapshot) error

	// Load returns all stored snapshots, ordered oldest to newest.
	Load() ([]schema.Snapshot, error)

	// Status returns status information about the store.
	Status() (schema.StoreStatus, error)

	// Clear removes all stored snapshots.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
