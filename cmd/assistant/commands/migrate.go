// cmd/assistant/commands/migrate.go
package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var migrationsPath string

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate <up|down|version|force> [version]",
		Short: "Manage the PostgreSQL schema",
		Long: `Applies the SQL migrations in ./migrations to the configured database.

Examples:
  assistant migrate up
  assistant migrate version
  assistant migrate force 1`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"up", "down", "version", "force"},
		RunE:      runMigrate,
	}

	cmd.Flags().StringVar(&migrationsPath, "path", "migrations", "Path to migrations directory")
	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), cfg.Database.Postgres.URL())
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	defer m.Close()

	switch args[0] {
	case "up":
		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to run (database is up to date)", nil)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations completed", nil)

	case "down":
		err = m.Down()
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to rollback migrations: %w", err)
		}
		log.Info("Rollback completed", nil)

	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d (dirty: %v)\n", v, dirty)

	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version number")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version number: %w", err)
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
		log.Info("Forced version", map[string]interface{}{"version": v})

	default:
		return fmt.Errorf("unknown migrate command %q (use: up, down, version, force)", args[0])
	}
	return nil
}
