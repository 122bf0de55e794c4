package contract

import (
	"context"

	"github.com/ElleNealAI/code-health-report/schema"
	"github.com/stretchr/testify/mock"
)

// MockHealthClient is a mock implementation of HealthClient for testing.
type MockHealthClient struct {
	mock.Mock
}

var _ HealthClient = &MockHealthClient{} // Compile-time check

// Analyze implements the HealthClient interface.
func (m *MockHealthClient) Analyze(ctx context.Context) (*schema.HealthReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*schema.HealthReport)
	return report, args.Error(1)
}

// History implements the HealthClient interface.
func (m *MockHealthClient) History(ctx context.Context) ([]schema.Snapshot, error) {
	args := m.Called(ctx)
	snapshots, _ := args.Get(0).([]schema.Snapshot)
	return snapshots, args.Error(1)
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Save implements the SnapshotStore interface.
func (m *MockSnapshotStore) Save(snapshots []schema.Snapshot) error {
	args := m.Called(snapshots)
	return args.Error(0)
}

// Load implements the SnapshotStore interface.
func (m *MockSnapshotStore) Load() ([]schema.Snapshot, error) {
	args := m.Called()
	snapshots, _ := args.Get(0).([]schema.Snapshot)
	return snapshots, args.Error(1)
}

// Status implements the SnapshotStore interface.
func (m *MockSnapshotStore) Status() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Clear implements the SnapshotStore interface.
func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
