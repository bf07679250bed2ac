package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/kelvinmfon2025/book-api/internal/logger"
)

func newMigrate(sourceURL, databaseURL string) (*migrate.Migrate, error) {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if err := errors.Join(srcErr, dbErr); err != nil {
		logger.Warn("Failed to close migrations", slog.String("error", err.Error()))
	}
}

// MigrateUp applies every pending migration. It is a no-op when the schema
// is current.
func MigrateUp(sourceURL, databaseURL string) error {
	m, err := newMigrate(sourceURL, databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("Database schema is up to date",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)
	return nil
}

// MigrateDown rolls back the given number of migrations. A steps value of
// zero or less rolls back everything.
func MigrateDown(sourceURL, databaseURL string, steps int) error {
	m, err := newMigrate(sourceURL, databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// MigrationVersion reports the applied schema version. ok is false when no
// migration has been applied.
func MigrationVersion(sourceURL, databaseURL string) (version uint, dirty bool, ok bool, err error) {
	m, err := newMigrate(sourceURL, databaseURL)
	if err != nil {
		return 0, false, false, err
	}
	defer closeMigrate(m)

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, true, nil
}
