package testutil

import (
	"database/sql"
	"testing"

	"github.com/quietharbor/haven/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database that is closed
// automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps the test database in a real UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
