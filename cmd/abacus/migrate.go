package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/linoMlv/abacus/internal/config"
	"github.com/linoMlv/abacus/internal/storage/sqlite"
)

// NewMigrateCmd creates the migrate subcommand. Opening the store runs the
// schema migrations, so this just opens and closes it.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			store, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			defer store.Close()

			slog.Info("database schema up to date", "database", cfg.DBPath)
			return nil
		},
	}
}
