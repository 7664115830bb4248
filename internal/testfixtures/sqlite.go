package testfixtures

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
)

// NewSQLiteDB opens a migrated in-memory database for a single test.
//
// The pool is pinned to one connection: every ":memory:" connection is a
// separate database, and one connection also serializes concurrent
// transactions the way row locks do on Postgres.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := dbpkg.GormConfig()
	cfg.PrepareStmt = false

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
