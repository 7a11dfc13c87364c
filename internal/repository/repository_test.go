package repository

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pracademy/internal/model"
)

// newTestDB opens a throwaway SQLite database with the full schema. The
// repository layer only emits dialect-portable statements, so these
// tests exercise the same SQL shapes MySQL receives.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Tutorial{},
		&model.AppGalleryItem{},
		&model.UserProgress{},
		&model.Setting{},
	))
	return db
}
