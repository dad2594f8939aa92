//go:build integration

package handlers_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"langy/internal/ai"
	"langy/internal/config"
	"langy/internal/handlers"
	"langy/internal/model"
	"langy/internal/repository"
	"langy/internal/service"
	"langy/internal/translate"
)

var (
	integrationDB     *gorm.DB
	integrationLogger *slog.Logger
)

const integrationContainerName = "test_postgres_langy_api"

// TestMain は PostgreSQL コンテナを起動し、マイグレーション後にテストを実行します
func TestMain(m *testing.M) {
	integrationLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       integrationContainerName,
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=langy",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	// devcontainer からは host.docker.internal 経由で接続する
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	dbCfg := config.DatabaseConfig{
		Driver: "postgres",
		URL: fmt.Sprintf("postgres://user:secret@%s:%s/langy?sslmode=disable",
			host, resource.GetPort("5432/tcp")),
	}

	if err := pool.Retry(func() error {
		var errRetry error
		integrationDB, errRetry = repository.NewDB(dbCfg, false, integrationLogger)
		if errRetry != nil {
			integrationLogger.Warn("Retry: DB connection attempt failed", "error", errRetry)
		}
		return errRetry
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err := repository.Migrate(integrationDB); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

// stubGenerator は固定のクイズを返す生成器です
type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, string) (string, error) {
	return `Here you go:
[{"type":"multiple_choice","question":"What does 'gato' mean?","correctAnswer":"cat","options":["cat","dog","bird","fish"],"word":"gato"}]`, nil
}

func newIntegrationServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := testConfig()
	cfg.Auth.Enabled = true
	cfg.JWT.AccessTokenTTL = time.Hour

	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	wordRepo := repository.NewGormVocabularyRepository()
	categoryRepo := repository.NewGormCategoryRepository()
	quizRepo := repository.NewGormQuizRepository()
	practiceRepo := repository.NewGormPracticeLogRepository()
	tutor := ai.NewTutor(stubGenerator{}, integrationLogger)

	router := handlers.NewRouter(handlers.RouterDeps{
		DB:          integrationDB,
		Config:      cfg,
		Logger:      integrationLogger,
		Auth:        service.NewAuthService(integrationDB, userRepo, tokenRepo, &service.LogMailer{}, cfg),
		Vocabulary:  service.NewVocabularyService(integrationDB, userRepo, wordRepo, categoryRepo, cfg),
		Translation: service.NewTranslationService(integrationDB, translate.UnavailableTranslator{}, userRepo, wordRepo, practiceRepo, cfg),
		Quiz:        service.NewQuizService(integrationDB, tutor, userRepo, wordRepo, quizRepo, practiceRepo, cfg),
		Stats:       service.NewStatsService(integrationDB, userRepo, wordRepo, practiceRepo),
		Tutor:       service.NewTutorService(integrationDB, tutor, practiceRepo),
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestAPI_LearningFlow(t *testing.T) {
	server := newIntegrationServer(t)
	email := fmt.Sprintf("flow-%s@example.com", uuid.NewString()[:8])

	// 登録とログイン
	sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/register",
		Body:   model.RegisterRequest{Name: "Flow", Email: email, Password: "secret123", TargetLanguage: "es"},
	}, httpResponseExpectations{ExpectedCode: http.StatusCreated})

	_, body := sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/login",
		Body:   model.LoginRequest{Email: email, Password: "secret123"},
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	var login model.LoginResponse
	decodeBody(t, body, &login)
	require.NotEmpty(t, login.AccessToken)
	auth := map[string]string{"Authorization": "Bearer " + login.AccessToken}

	// 単語登録
	_, body = sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodPost,
		Path:    "/api/v1/words",
		Body:    model.CreateWordRequest{Original: "gato", Translation: "cat", TargetLanguage: "es"},
		Headers: auth,
	}, httpResponseExpectations{ExpectedCode: http.StatusCreated})
	var word model.VocabularyEntry
	decodeBody(t, body, &word)

	sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodPost,
		Path:    "/api/v1/words",
		Body:    model.CreateWordRequest{Original: "gato", Translation: "cat", TargetLanguage: "es"},
		Headers: auth,
	}, httpResponseExpectations{ExpectedCode: http.StatusConflict, ExpectedErrorCode: "DUPLICATE_WORD"})

	// クイズ生成と回答
	_, body = sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodPost,
		Path:    "/api/v1/quiz/generate",
		Body:    model.GenerateQuizRequest{Count: 1},
		Headers: auth,
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	var generated model.GenerateQuizResponse
	decodeBody(t, body, &generated)
	require.Len(t, generated.Quizzes, 1)

	correct := true
	_, body = sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodPost,
		Path:    "/api/v1/quiz/submit",
		Body:    model.SubmitQuizRequest{QuizID: generated.Quizzes[0].QuizID, WordID: word.WordID, IsCorrect: &correct},
		Headers: auth,
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	var submitted model.SubmitQuizResponse
	decodeBody(t, body, &submitted)
	assert.Equal(t, 15, submitted.XPGained)
	assert.Equal(t, 15, submitted.Word.XPPoints)

	// 履歴と統計
	_, body = sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodGet,
		Path:    "/api/v1/quiz/results",
		Headers: auth,
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	var history model.QuizHistoryResponse
	decodeBody(t, body, &history)
	require.Len(t, history.Sessions, 1)
	assert.Equal(t, 100, history.Sessions[0].Accuracy)

	_, body = sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodGet,
		Path:    "/api/v1/stats",
		Headers: auth,
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	var stats model.StatsResponse
	decodeBody(t, body, &stats)
	assert.Equal(t, 1, stats.TotalWords)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, 1, stats.WeeklyStats.TotalSessions)
}
