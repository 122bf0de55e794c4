package snapstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/ElleNealAI/code-health-report/schema"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the snapshot store schema to targetVersion. A negative
// target means latest, zero rolls everything back, and a positive value pins
// that exact version. A dirty schema version aborts before any step runs.
func Migrate(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported when the cache backend is disabled")
	}

	db, err := openMigrationDB(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := newMigrator(db, backend)
	if err != nil {
		return err
	}

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema is dirty at version %d; fix manually or force a version", currentVersion)
	}

	return applyMigration(m, currentVersion, targetVersion)
}

// openMigrationDB opens a plain connection for the migration run, resolving
// the default SQLite path when no connection string is given.
func openMigrationDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		return db, nil
	case schema.MySQLBackend:
		db, err := sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w", err)
		}
		return db, nil
	case schema.PostgreSQLBackend:
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// newMigrator builds a migrate instance over the embedded migration files.
func newMigrator(db *sql.DB, backend schema.DatabaseBackend) (*migrate.Migrate, error) {
	var driver database.Driver
	var err error
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case schema.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	case schema.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s migrate driver: %w", backend, err)
	}

	migrationFS, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to access migrations directory: %w", err)
	}
	sourceDriver, err := iofs.New(migrationFS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "healthreport", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// applyMigration runs the up/down/pinned step and reports the outcome.
func applyMigration(m *migrate.Migrate, currentVersion uint, targetVersion int) error {
	var err error
	var label string
	switch {
	case targetVersion < 0:
		err, label = m.Up(), "latest"
	case targetVersion == 0:
		err, label = m.Down(), "0"
	default:
		err, label = m.Migrate(uint(targetVersion)), fmt.Sprint(targetVersion)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("Schema already at version %s; nothing to do.\n", label)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to migrate to version %s: %w", label, err)
	}

	newVersion, _, _ := m.Version()
	fmt.Printf("Migrated schema from version %d to version %d\n", currentVersion, newVersion)
	return nil
}
