// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab-mastery"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort             = ":8080"
	DefaultDatabaseDriver         = "postgres"
	DefaultMaxOpenConns           = 100
	DefaultLogLevel               = "info"
	DefaultAuthEnabled            = true
	DefaultMaxSessionDurationSec  = int64(4 * 60 * 60) // 4時間
	DefaultReviewLimit            = 20
	DefaultRecomputeRetryInterval = time.Minute
)
