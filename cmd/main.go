package main

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"langy/internal/config"
	"langy/internal/repository"
)

// app はサブコマンド間で共有する設定とロガーを保持します。PersistentPreRunE で埋まる。
type app struct {
	configDir string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	rootCmd := newRootCmd(&app{})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "langy",
		Short:         "Language learning API server",
		SilenceUsage:  true,
		SilenceErrors: false,
		// サブコマンド無しは serve と同じ
		RunE: a.runServe,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configDir, "config", "configs", "directory containing config.yaml")

	rootCmd.AddCommand(a.newServeCmd())
	rootCmd.AddCommand(a.newMigrateCmd())
	rootCmd.AddCommand(a.newSeedCmd())
	rootCmd.AddCommand(a.newImportCmd())

	return rootCmd
}

// setup は設定を読み込み、それに基づいて slog のデフォルトロガーを初期化します
func (a *app) setup() error {
	log.Println("Log Config Loading...")

	cfg, err := config.LoadConfig(a.configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cfg)
	slog.SetDefault(a.logger)

	log.Println("Log Config Loaded...")
	return nil
}

// openDB は設定に従って DB に接続します
func (a *app) openDB() (*gorm.DB, func(), error) {
	db, err := repository.NewDB(a.cfg.Database, a.cfg.IsDev(), a.logger)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			a.logger.Error("Error closing database connection", "error", err)
		}
	}
	return db, closeDB, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	logLevel := new(slog.LevelVar)
	unknownLevel := false
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		unknownLevel = true
	}

	var handler slog.Handler
	if cfg.IsDev() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	l := slog.New(handler)
	if unknownLevel {
		l.Warn("Unknown log level specified in config, defaulting to INFO", "level", cfg.Log.Level)
	}
	return l
}
