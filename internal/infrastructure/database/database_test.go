package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

func TestNewDatabase_SQLiteLifecycle(t *testing.T) {
	db, err := NewDatabase(Options{
		Driver:       "sqlite",
		DSN:          "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     logger.Silent,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate())
	assert.True(t, db.DB.Migrator().HasTable(&entity.Like{}))
	assert.True(t, db.DB.Migrator().HasIndex(&entity.Like{}, "idx_like_user_answer"))

	require.NoError(t, db.Close())
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := NewDatabase(Options{Driver: "oracle", DSN: "x"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
