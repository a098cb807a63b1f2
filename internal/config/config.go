// internal/config/config.go
package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // postgres | sqlite
	URL          string `mapstructure:"url"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// PracticeConfig は練習・進捗まわりの設定
type PracticeConfig struct {
	MaxSessionDurationSec  int64         `mapstructure:"max_session_duration_sec"` // クライアント申告の所要時間の上限
	ReviewLimit            int           `mapstructure:"review_limit"`
	RecomputeRetryInterval time.Duration `mapstructure:"recompute_retry_interval"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Practice PracticeConfig `mapstructure:"practice"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば先に読み込む (既存の環境変数は上書きしない)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_DATABASE_URL のように接頭辞をつけて上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyFallbacks(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", "") // 環境変数だけで指定できるようキーを登録しておく
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("practice.max_session_duration_sec", DefaultMaxSessionDurationSec)
	v.SetDefault("practice.review_limit", DefaultReviewLimit)
	v.SetDefault("practice.recompute_retry_interval", DefaultRecomputeRetryInterval)
}

// applyFallbacks は不正な値 (0 以下など) を既定値に戻します
func applyFallbacks(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Practice.MaxSessionDurationSec <= 0 {
		log.Printf("Max session duration not set or invalid, using default '%d'", DefaultMaxSessionDurationSec)
		cfg.Practice.MaxSessionDurationSec = DefaultMaxSessionDurationSec
	}
	if cfg.Practice.ReviewLimit <= 0 {
		log.Printf("Review limit not set or invalid, using default '%d'", DefaultReviewLimit)
		cfg.Practice.ReviewLimit = DefaultReviewLimit
	}
	if cfg.Practice.RecomputeRetryInterval <= 0 {
		cfg.Practice.RecomputeRetryInterval = DefaultRecomputeRetryInterval
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
}
