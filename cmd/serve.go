package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"langy/internal/ai"
	"langy/internal/handlers"
	"langy/internal/middleware"
	"langy/internal/repository"
	"langy/internal/scheduler"
	"langy/internal/service"
	"langy/internal/translate"
)

const shutdownTimeout = 5 * time.Second

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger := a.cfg, a.logger
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = middleware.WithLogger(ctx, logger)

	logger.Info("Application starting...")

	db, closeDB, err := a.openDB()
	if err != nil {
		logger.Error("Error initializing database", "error", err)
		return err
	}
	defer func() {
		closeDB()
		logger.Info("Database connection closed.")
	}()

	// 外部プロバイダ (未設定なら Unavailable 実装で起動し、呼び出し時にエラーを返す)
	var generator ai.Generator = ai.UnavailableGenerator{}
	if cfg.Gemini.APIKey != "" {
		g, err := ai.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Warn("Gemini client unavailable, AI features disabled", "error", err)
		} else {
			generator = g
		}
	} else {
		logger.Warn("gemini.api_key not set, AI features disabled")
	}

	var translator translate.Translator = translate.UnavailableTranslator{}
	if cfg.Translate.APIKey != "" {
		gt, err := translate.NewGoogleTranslator(ctx, cfg.Translate.APIKey)
		if err != nil {
			logger.Warn("Translation client unavailable", "error", err)
		} else {
			translator = gt
			defer gt.Close()
		}
	} else {
		logger.Warn("translate.api_key not set, translation disabled")
	}

	mailer, err := service.NewMailer(ctx, cfg, logger)
	if err != nil {
		logger.Error("Error initializing mailer", "error", err)
		return err
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	wordRepo := repository.NewGormVocabularyRepository()
	categoryRepo := repository.NewGormCategoryRepository()
	quizRepo := repository.NewGormQuizRepository()
	practiceRepo := repository.NewGormPracticeLogRepository()

	tutor := ai.NewTutor(generator, logger)

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, cfg)
	vocabularyService := service.NewVocabularyService(db, userRepo, wordRepo, categoryRepo, cfg)
	translationService := service.NewTranslationService(db, translator, userRepo, wordRepo, practiceRepo, cfg)
	quizService := service.NewQuizService(db, tutor, userRepo, wordRepo, quizRepo, practiceRepo, cfg)
	statsService := service.NewStatsService(db, userRepo, wordRepo, practiceRepo)
	tutorService := service.NewTutorService(db, tutor, practiceRepo)

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst)

	router := handlers.NewRouter(handlers.RouterDeps{
		DB:          db,
		Config:      cfg,
		Logger:      logger,
		Limiter:     limiter,
		Auth:        authService,
		Vocabulary:  vocabularyService,
		Translation: translationService,
		Quiz:        quizService,
		Stats:       statsService,
		Tutor:       tutorService,
	})

	if cfg.Scheduler.Enabled {
		sched := scheduler.New(db, statsService, tokenRepo, limiter, cfg.Scheduler.StreakRefreshInterval, logger)
		if err := sched.Start(); err != nil {
			logger.Error("Error starting scheduler", "error", err)
			return err
		}
		defer sched.Stop()
	}

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 70 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		logger.Error("Could not listen on port", "port", cfg.Server.Port, "error", err)
		return err
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exiting")
	return nil
}
