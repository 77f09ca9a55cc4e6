package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/studentsync/internal/app"
	"github.com/thenoetrevino/studentsync/internal/database"
	"github.com/thenoetrevino/studentsync/internal/testutil"
)

// SetupCLITest creates a seeded in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T, opts ...app.Option) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupSeededDB(t)
	return db, app.New(database.NewRepository(db), opts...)
}

// CreateTestRecord wraps testutil.CreateTestRecord for CLI tests
func CreateTestRecord(t *testing.T, db *sql.DB, collection string, values map[string]string) int {
	t.Helper()
	return testutil.CreateTestRecord(t, db, collection, values)
}
