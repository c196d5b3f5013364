package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/inhouse-backend/internal/infrastructure/config"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/logging"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/security"
)

func migrateCmd() *cobra.Command {
	var skipSeed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the schema and load demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := logging.NewSlogLogger(cfg.Logging.Level)

			db, err := gormdb.NewDatabaseConnection(&cfg.Database, logger)
			if err != nil {
				return err
			}
			defer gormdb.Close(db)

			if err := gormdb.Migrate(db, logger); err != nil {
				return err
			}
			if skipSeed {
				return nil
			}

			seeded, err := gormdb.Seed(context.Background(), db, security.NewBcryptHasher(bcrypt.DefaultCost), logger)
			if err != nil {
				return err
			}
			logger.Info("migration finished", "seeded", seeded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "only apply the schema")
	return cmd
}
