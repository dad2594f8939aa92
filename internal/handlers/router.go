package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/service"
	"langy/internal/webutil"
)

// RouterDeps はルーター構築に必要な依存をまとめたものです
type RouterDeps struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  *slog.Logger
	Limiter *middleware.IPRateLimiter // nil なら設定値から作る

	Auth        service.AuthService
	Vocabulary  service.VocabularyService
	Translation service.TranslationService
	Quiz        service.QuizService
	Stats       service.StatsService
	Tutor       service.TutorService
}

// NewRouter は /api/v1 配下のルートと共通ミドルウェアを設定した chi ルーターを返します
func NewRouter(d RouterDeps) chi.Router {
	cfg := d.Config
	limiter := d.Limiter
	if limiter == nil {
		limiter = middleware.NewIPRateLimiter(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst)
	}

	authHandler := NewAuthHandler(d.Auth)
	wordHandler := NewWordHandler(d.Vocabulary, cfg)
	categoryHandler := NewCategoryHandler(d.Vocabulary)
	translateHandler := NewTranslateHandler(d.Translation)
	quizHandler := NewQuizHandler(d.Quiz, cfg)
	statsHandler := NewStatsHandler(d.Stats)
	tutorHandler := NewTutorHandler(d.Tutor)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
			r.Get("/auth/verify", authHandler.VerifyAccount)
			r.Post("/auth/forgot-password", authHandler.RequestPasswordReset)
			r.Post("/auth/reset-password", authHandler.ResetPassword)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				d.Logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(cfg.JWT.SecretKey))
			} else {
				d.Logger.Warn("Authentication disabled, using X-User-ID header")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Get("/auth/me", authHandler.GetMe)
			r.Put("/auth/profile", authHandler.UpdateProfile)
			r.Post("/auth/change-password", authHandler.ChangePassword)
			r.Post("/auth/complete-onboarding", authHandler.CompleteOnboarding)
			r.Post("/profile/setup", authHandler.SetupProfile)

			r.Get("/categories", categoryHandler.GetCategories)

			r.Route("/words", func(r chi.Router) {
				r.Get("/", wordHandler.GetWords)
				r.Post("/", wordHandler.PostWord)
				r.Post("/import", wordHandler.ImportWords)
				r.Patch("/{word_id}", wordHandler.PatchWord)
				r.Delete("/{word_id}", wordHandler.DeleteWord)
			})

			r.Post("/translate", translateHandler.Translate)

			r.Route("/quiz", func(r chi.Router) {
				r.Post("/generate", quizHandler.Generate)
				r.Post("/submit", quizHandler.Submit)
				r.Get("/results", quizHandler.Results)
			})

			r.Get("/stats", statsHandler.GetStats)

			r.Post("/contextual-sentence", tutorHandler.ContextualSentence)
			r.Post("/feedback", tutorHandler.Feedback)
		})
	})

	r.Get("/health", healthHandler(d.DB))

	return r
}

// healthHandler はDBへの疎通を確認します
func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := middleware.GetLogger(ctx)

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			logger.Error("Health check failed", "error", err)
			webutil.RespondWithJSON(w, http.StatusServiceUnavailable, model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "UNHEALTHY", Message: "Database is unreachable."},
			}, logger)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}
