package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langy/internal/config"
	"langy/internal/handlers"
	"langy/internal/model"
	"langy/internal/service/mocks"
	"langy/internal/testutil"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode      int
	ExpectedErrorCode string
}

// testApp はモックのサービスを差し込んだルーターとテストサーバーです
type testApp struct {
	server      *httptest.Server
	cfg         *config.Config
	auth        *mocks.AuthService
	vocabulary  *mocks.VocabularyService
	translation *mocks.TranslationService
	quiz        *mocks.QuizService
	stats       *mocks.StatsService
	tutor       *mocks.TutorService
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:         "Langy",
			Env:          "dev",
			HistoryLimit: 50,
			QuizSize:     5,
			WordsLimit:   50,
		},
		Auth:      config.AuthConfig{Enabled: false},
		JWT:       config.JWTConfig{SecretKey: "test-secret"},
		RateLimit: config.RateLimitConfig{AuthRPS: 100, AuthBurst: 100},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		},
	}
}

// newTestApp はテストごとのルーターを組み立てます。mutate で設定を上書きできる
func newTestApp(t *testing.T, mutate ...func(*config.Config)) *testApp {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	app := &testApp{
		cfg:         cfg,
		auth:        mocks.NewAuthService(t),
		vocabulary:  mocks.NewVocabularyService(t),
		translation: mocks.NewTranslationService(t),
		quiz:        mocks.NewQuizService(t),
		stats:       mocks.NewStatsService(t),
		tutor:       mocks.NewTutorService(t),
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		DB:          testutil.NewTestDB(t),
		Config:      cfg,
		Logger:      testutil.DiscardLogger(),
		Auth:        app.auth,
		Vocabulary:  app.vocabulary,
		Translation: app.translation,
		Quiz:        app.quiz,
		Stats:       app.stats,
		Tutor:       app.tutor,
	})
	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

// userHeader は開発用認証の X-User-ID ヘッダーを返します
func userHeader(userID uuid.UUID) map[string]string {
	return map[string]string{"X-User-ID": userID.String()}
}

// sendRequest はHTTPリクエストを送信し、基本的なレスポンス情報を返します。
// ステータスコードとエラーコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch")

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	if expectations.ExpectedErrorCode != "" {
		verifyErrorResponse(t, respBodyBytes, expectations.ExpectedErrorCode)
	}
	return resp.StatusCode, respBodyBytes
}

// verifyErrorResponse はエラーレスポンスのコードを検証します。
func verifyErrorResponse(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &errResp), "Error response body not valid JSON: %s", string(bodyBytes))
	assert.Equal(t, expectedCode, errResp.Error.Code, "Unexpected error code. body=%s", string(bodyBytes))
}

// decodeBody はレスポンスボディを dst にデコードします
func decodeBody(t *testing.T, bodyBytes []byte, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(bodyBytes, dst), "Failed to unmarshal response: %s", string(bodyBytes))
}
