package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("AWS_LWA_PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("IMAGE_STORE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.TokenTTL)
	assert.Equal(t, ImageStoreDisk, cfg.ImageStore)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestLoad_TokenTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("IMAGE_STORE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)

	t.Setenv("TOKEN_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_S3NeedsBucket(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("IMAGE_STORE", "s3")
	t.Setenv("S3_BUCKET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("S3_BUCKET", "images")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "images", cfg.S3Bucket)
}

func TestLoadDatabase(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_NAME", "")

	_, err := LoadDatabase()
	assert.Error(t, err)

	t.Setenv("DB_NAME", "fooddelivery")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "fooddelivery", cfg.DBName)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
}

func TestLoad_ReadsDatabaseSettings(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("IMAGE_STORE", "")
	t.Setenv("DB_NAME", "fooddelivery")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fooddelivery", cfg.DBName)
	assert.True(t, cfg.AutoMigrate)
}
