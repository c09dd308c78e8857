package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file::memory:")
	t.Setenv("PORT", "9090")
	t.Setenv("FEED_CACHE_TTL", "45s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "like.queue", cfg.RabbitMQ.Queue)
	assert.Equal(t, 24*time.Hour, cfg.GetAccessTokenExpiry())
	assert.Equal(t, 45*time.Second, cfg.GetFeedCacheTTL())
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoad_ReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	yml := `
app:
  port: "7070"
database:
  driver: sqlite
  dsn: forum.db
  maxOpenConns: 3
jwt:
  secret: from-file
  accessTokenTTL: 2h
rabbitmq:
  queue: answers.likes
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, "forum.db", cfg.Database.Dsn)
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "answers.likes", cfg.RabbitMQ.Queue)
}

func TestLoad_RequiresSecretAndDSN(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DSN", "file::memory:")
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DSN", "")
	_, err = Load(t.TempDir())
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DSN", "x")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "unsupported database driver")
}
