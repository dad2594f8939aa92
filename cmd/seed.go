package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/repository"
	"langy/internal/seed"
)

type seedOptions struct {
	file string
	demo bool
}

func (a *app) newSeedCmd() *cobra.Command {
	var opts seedOptions
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert categories and optionally the demo user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSeed(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.file, "file", "", "category seed file (TOML); built-in categories when omitted")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "also create the demo user")
	return cmd
}

func (a *app) runSeed(cmd *cobra.Command, opts seedOptions) error {
	cfg, logger := a.cfg, a.logger
	ctx := middleware.WithLogger(context.Background(), logger)

	if opts.demo {
		if err := seed.Allowed(cfg, os.Getenv(config.EnvPrefix+"_ENABLE_SEEDING")); err != nil {
			logger.Error("Refusing to seed", "env", cfg.App.Env, "error", err)
			return err
		}
	}

	file, err := config.LoadSeedFile(opts.file)
	if err != nil {
		return err
	}

	db, closeDB, err := a.openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	seeder := seed.NewSeeder(db, repository.NewGormUserRepository(), repository.NewGormCategoryRepository())

	n, err := seeder.Categories(ctx, file.Categories)
	if err != nil {
		logger.Error("Failed to seed categories", "error", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories\n", n)

	if opts.demo {
		user, err := seeder.DemoUser(ctx)
		if err != nil {
			logger.Error("Failed to seed demo user", "error", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "demo user: %s (%s)\n", user.Email, user.UserID)
	}
	return nil
}
