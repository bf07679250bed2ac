// Package cli implements libraryctl, the administrative command line for the
// lending service.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/kelvinmfon2025/book-api/internal/config"
	"github.com/kelvinmfon2025/book-api/internal/infrastructure/database"
	"github.com/kelvinmfon2025/book-api/internal/logger"
)

var (
	cfg *config.Config

	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "libraryctl",
	Short: "Administer the library lending service",
	Long: `libraryctl runs maintenance tasks against the lending database.

Configuration is read from the same environment variables as the server.
Use --config to layer a YAML file underneath them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		color.NoColor = color.NoColor || flagNoColor

		if flagConfig != "" {
			if err := os.Setenv(config.ConfigFileEnv, flagConfig); err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Configure(cfg.LogLevel)
		return nil
	},
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file (overrides "+config.ConfigFileEnv+")")

	rootCmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newOverdueCmd(),
		newSweepCmd(),
	)
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := database.NewPostgres(ctx, database.PoolConfigFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return pool, nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
