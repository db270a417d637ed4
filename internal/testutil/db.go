// Package testutil provides a seeded in-memory database for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yutsuc/fsnd-trivia-api/internal/config"
	"github.com/yutsuc/fsnd-trivia-api/internal/database"
)

// SeededQuestions is the number of questions in the fixture.
const SeededQuestions = 19

// NewDB opens a private in-memory SQLite database with the schema migrated.
// The pool is pinned to a single connection so every query sees the same
// database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.Database{
		Driver:       config.DriverSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// NewSeededDB is NewDB plus the reference fixture.
func NewSeededDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewDB(t)
	require.NoError(t, database.Seed(context.Background(), db))
	return db
}
