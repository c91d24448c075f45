// Package testutil opens throwaway databases for tests.
package testutil

import (
	"fmt"
	"regexp"
	"testing"

	"shop/internal/adapters/out/postgres/customerorderrepo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// OpenSQLite returns a migrated in-memory SQLite database private to tb.
// The pool is limited to one connection so every statement sees the same memory database.
func OpenSQLite(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", unsafeNameChars.ReplaceAllString(tb.Name(), "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(tb, err)

	sqlDB, err := db.DB()
	require.NoError(tb, err)
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(tb, db.AutoMigrate(&customerorderrepo.CustomerOrderDTO{}))
	return db
}
