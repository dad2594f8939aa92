package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langy/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub string, secret string, exp time.Time) string {
	t.Helper()
	claims := model.JWTCustomClaims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

// userIDEcho はコンテキストのユーザーIDをそのまま返すハンドラ
var userIDEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, err := GetUserIDFromContext(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(id.String()))
})

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	handler := JWTAuthMiddleware(testSecret)(userIDEcho)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"正常系: 有効なトークン", "Bearer " + signToken(t, userID.String(), testSecret, time.Now().Add(time.Hour)), http.StatusOK, userID.String()},
		{"異常系: ヘッダーなし", "", http.StatusUnauthorized, ""},
		{"異常系: Bearerでない", "Token abc", http.StatusUnauthorized, ""},
		{"異常系: 署名不一致", "Bearer " + signToken(t, userID.String(), "other", time.Now().Add(time.Hour)), http.StatusUnauthorized, ""},
		{"異常系: 期限切れ", "Bearer " + signToken(t, userID.String(), testSecret, time.Now().Add(-time.Hour)), http.StatusUnauthorized, ""},
		{"異常系: subがUUIDでない", "Bearer " + signToken(t, "not-a-uuid", testSecret, time.Now().Add(time.Hour)), http.StatusUnauthorized, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()
	handler := DevUserContextMiddleware(userIDEcho)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", userID.String())
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, userID.String(), rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "bad")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserIDFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestLoggingMiddleware_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ハンドラ内ではリクエストスコープのロガーが取れる
		assert.NotSame(t, slog.Default(), GetLogger(r.Context()))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"access_token":"abc.def"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"a@b.c","password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer secret-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	out := buf.String()
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "a@b.c")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "secret-token")
	assert.NotContains(t, out, "abc.def")
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = ip + ":1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	// 別IPは独立
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2"))

	assert.Equal(t, 0, limiter.Cleanup())
}

func TestClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		withRealIP bool
		want       string
	}{
		{name: "正常系: RemoteAddr のホスト部", remoteAddr: "10.0.0.1:1234", want: "10.0.0.1"},
		{name: "正常系: ポートなしはそのまま", remoteAddr: "10.0.0.1", want: "10.0.0.1"},
		{name: "正常系: RealIP 無しではヘッダを見ない", remoteAddr: "10.0.0.1:1234", forwarded: "203.0.113.7", want: "10.0.0.1"},
		{name: "正常系: RealIP 経由ならヘッダのIP", remoteAddr: "10.0.0.1:1234", forwarded: "203.0.113.7", withRealIP: true, want: "203.0.113.7"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = ClientIP(r)
			})
			if tc.withRealIP {
				handler = chimiddleware.RealIP(handler)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tc.want, got)
		})
	}
}
