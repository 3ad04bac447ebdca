package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config は環境変数から読み込むアプリケーション設定。
type Config struct {
	Port string
	Env  string

	JWTSecret string
	// TokenTTL が0の場合、トークンに有効期限を付けない
	TokenTTL time.Duration

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AutoMigrate bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ImageStore string
	UploadDir  string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	TelegramBotToken    string
	TelegramAdminChatID int64

	AdminSetupKey string
}

const (
	ImageStoreDisk = "disk"
	ImageStoreS3   = "s3"
)

// Load は環境変数からConfigを組み立てる。
// JWT_SECRETが無い場合は起動時のエラーとして扱う。
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", getEnv("AWS_LWA_PORT", "8080")),
		Env:                 os.Getenv("ENV"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		ImageStore:          getEnv("IMAGE_STORE", ImageStoreDisk),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:            os.Getenv("S3_BUCKET"),
		S3Region:            getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:          os.Getenv("S3_ENDPOINT"),
		S3AccessKey:         os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:         os.Getenv("S3_SECRET_KEY"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAdminChatID: int64(getEnvInt("TELEGRAM_ADMIN_CHAT_ID", 0)),
		AdminSetupKey:       os.Getenv("ADMIN_SETUP_KEY"),
	}
	loadDatabase(cfg)

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	switch cfg.ImageStore {
	case ImageStoreDisk:
	case ImageStoreS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when IMAGE_STORE=s3")
		}
	default:
		return nil, fmt.Errorf("unknown IMAGE_STORE %q", cfg.ImageStore)
	}

	return cfg, nil
}

// LoadDatabase はDB接続に必要な設定だけを読み込む（マイグレーション用）。
// 永続化先の無いインメモリDBを対象にしないよう、DB_NAMEを必須とする。
func LoadDatabase() (*Config, error) {
	cfg := &Config{Env: os.Getenv("ENV")}
	loadDatabase(cfg)
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	return cfg, nil
}

func loadDatabase(cfg *Config) {
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.AutoMigrate = os.Getenv("AUTO_MIGRATE") == "true"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
