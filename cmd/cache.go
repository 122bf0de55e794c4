package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ElleNealAI/code-health-report/internal/contract"
	"github.com/ElleNealAI/code-health-report/internal/snapstore"
	"github.com/ElleNealAI/code-health-report/schema"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// openStore initializes the snapshot store from the minimal cache config.
func openStore() (contract.SnapshotStore, error) {
	return snapstore.New(cfg.CacheBackend, cfg.CacheDBConnect)
}

// cacheCmd focused on snapshot cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by report commands. This avoids engine validation
// for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local snapshot cache.",
	Long: `Manage the local cache of analysis snapshots.

The engine only retains its most recent runs, so the local cache is what
preserves long-range history for trend analysis.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached snapshots
  migrate - Run schema migrations on the cache database

Examples:
  # Check cache status
  healthreport cache status

  # Clear the cache
  healthreport cache clear`,
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot cache statistics and connection details.",
	Long: `Show detailed information about the local snapshot cache.

Displays:
- Backend type and connection status
- Total number of cached snapshots
- Last and oldest snapshot timestamps
- Cache database size

Examples:
  # Check cache status
  healthreport cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		s, err := openStore()
		if err != nil {
			contract.LogFatal("Failed to open snapshot cache", err)
		}
		defer func() { _ = s.Close() }()

		status, err := s.Status()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		snapstore.PrintStoreStatus(status)
	},
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached snapshots.",
	Long: `Delete all cached snapshots from the configured backend.

Use this when:
- The engine's history was reset
- The cache may be stale or corrupted
- Starting a fresh observation window

Examples:
  # Clear SQLite cache (default)
  healthreport cache clear

  # Clear MySQL cache (set connection string via env variable)
  HEALTHREPORT_CACHE_BACKEND=mysql HEALTHREPORT_CACHE_DB_CONNECT="..." healthreport cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		s, err := openStore()
		if err != nil {
			contract.LogFatal("Failed to open snapshot cache", err)
		}
		defer func() { _ = s.Close() }()

		if err := s.Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheMigrateCmd runs schema migrations on the cache database.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the snapshot cache database.",
	Long: `Apply schema migrations to the snapshot cache database.

By default migrates to the latest version. Use --target-version to migrate to
a specific version, or 0 to roll back all migrations.

Examples:
  # Migrate to the latest schema
  healthreport cache migrate

  # Roll back everything
  healthreport cache migrate --target-version 0`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapstore.Migrate(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
