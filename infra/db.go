package infra

import (
	"fmt"
	"gin-fooddelivery/config"
	"gin-fooddelivery/models"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewGormLogger はWarn以上のみ出力するgorm用ロガーを返す。
// 存在チェックで想定されるrecord not foundは出力しない。
func NewGormLogger(w io.Writer) logger.Interface {
	return logger.New(log.New(w, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: NewGormLogger(os.Stdout)}
}

// SetupDB はDB接続を開く。接続に失敗した場合は呼び出し側で起動を中止する。
func SetupDB(cfg *config.Config) (*gorm.DB, error) {
	// DB_NAMEが設定されている場合はPostgreSQLを使用
	if cfg.DBName != "" {
		// 本番環境ではsslmode=require、それ以外はsslmode=disable
		sslmode := "disable"
		if cfg.Env == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("connect postgres (host=%s, dbname=%s): %w", cfg.DBHost, cfg.DBName, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("postgres handle: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		log.Printf("Setup postgres database: %s", cfg.DBName)
		return db, nil
	}

	// デフォルトはSQLiteのインメモリ（開発・テスト用）
	db, err := OpenInMemory()
	if err != nil {
		return nil, err
	}
	log.Println("Setup sqlite database (in-memory)")
	return db, nil
}

// OpenInMemory は名前付きのインメモリSQLiteを開き、マイグレーションまで行う。
// 呼び出しごとに別のDBになる。
func OpenInMemory() (*gorm.DB, error) {
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite はSQLiteを開く。インメモリDBが接続ごとに分かれないよう接続数を1に制限する。
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Food{}, &models.Order{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// CloseDB はシャットダウン時に接続プールを解放する。
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
