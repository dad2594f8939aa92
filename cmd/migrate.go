package main

import (
	"github.com/spf13/cobra"

	"langy/internal/repository"
)

func (a *app) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, closeDB, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			if err := repository.Migrate(db); err != nil {
				a.logger.Error("Migration failed", "error", err)
				return err
			}
			a.logger.Info("Migration completed", "driver", a.cfg.Database.Driver)
			return nil
		},
	}
}
