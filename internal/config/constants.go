// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "Langy"
	AppVersion = "1.0.0"
	EnvPrefix  = "LANGY"
)

// デフォルト設定値
const (
	DefaultServerPort            = ":8080"
	DefaultLogLevel              = "info"
	DefaultDatabaseDriver        = "postgres"
	DefaultHistoryLimit          = 50
	DefaultQuizSize              = 5
	DefaultWordsLimit            = 50
	DefaultAuthEnabled           = true
	DefaultAccessTokenTTL        = 7 * 24 * time.Hour
	DefaultSourceLanguage        = "en"
	DefaultGeminiModel           = "gemini-2.5-flash-lite"
	DefaultStreakRefreshInterval = time.Hour
)

// クエリの limit 上限
const (
	MaxWordsLimit   = 500
	MaxHistoryLimit = 200
)
