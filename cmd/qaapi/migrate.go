package main

import (
	"context"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/qa_api/internal/db"
	"github.com/Skotchmaster/qa_api/internal/logging"
	"github.com/Skotchmaster/qa_api/internal/repo"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and seed the statuses table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _ := loadConfig(cmd)
			logger := logging.New(cfg.EffectiveLogLevel()).With("service", cfg.ServiceName)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			gdb, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				logger.Error("db_open_failed", "error", err)
				return err
			}
			defer func() { _ = db.Close(gdb) }()

			if err := db.Migrate(ctx, gdb); err != nil {
				logger.Error("migrate_failed", "error", err)
				return err
			}
			if err := (&repo.GormRepo{DB: gdb}).SeedStatuses(ctx, logger); err != nil {
				return err
			}
			logger.Info("migration complete")
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, newFlags())
	return cmd
}
