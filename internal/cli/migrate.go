package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kelvinmfon2025/book-api/internal/infrastructure/database"
)

func newMigrateCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}
	cmd.PersistentFlags().StringVar(&source, "source", "", "Migrations source URL (default: MIGRATIONS_PATH)")

	sourceURL := func() string {
		if source != "" {
			return source
		}
		return cfg.MigrationsPath
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.MigrateUp(sourceURL(), cfg.DatabaseURL()); err != nil {
				return err
			}
			return reportVersion(sourceURL())
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Long: `Roll back applied migrations.

Without --steps every migration is rolled back, dropping all library tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative")
			}
			if err := database.MigrateDown(sourceURL(), cfg.DatabaseURL(), steps); err != nil {
				return err
			}
			return reportVersion(sourceURL())
		},
	}
	down.Flags().IntVar(&steps, "steps", 0, "Number of migrations to roll back (0 = all)")

	version := &cobra.Command{
		Use:   "version",
		Short: "Show the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportVersion(sourceURL())
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func reportVersion(source string) error {
	v, dirty, applied, err := database.MigrationVersion(source, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	switch {
	case !applied:
		ok("No migrations applied")
	case dirty:
		warn("Schema version %d is dirty; fix the failed migration and force the version", v)
	default:
		ok("Schema at version %d", v)
	}
	return nil
}
