package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"langy/internal/middleware"
	"langy/internal/repository"
	"langy/internal/service"
)

type importOptions struct {
	user string
	file string
}

func (a *app) newImportCmd() *cobra.Command {
	var opts importOptions
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import words from a CSV or XLSX file for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runImport(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.user, "user", "", "user ID (UUID)")
	cmd.Flags().StringVar(&opts.file, "file", "", "path to a .csv or .xlsx file")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) runImport(cmd *cobra.Command, opts importOptions) error {
	logger := a.logger
	ctx := middleware.WithLogger(context.Background(), logger)

	userID, err := uuid.Parse(opts.user)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	db, closeDB, err := a.openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	vocabularyService := service.NewVocabularyService(db,
		repository.NewGormUserRepository(),
		repository.NewGormVocabularyRepository(),
		repository.NewGormCategoryRepository(),
		a.cfg,
	)

	result, err := vocabularyService.ImportWords(ctx, userID, f, filepath.Base(opts.file))
	if err != nil {
		logger.Error("Import failed", "error", err)
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
