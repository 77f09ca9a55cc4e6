// Package testutil provides shared setup for tests outside the database package
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/studentsync/internal/database"
	"github.com/thenoetrevino/studentsync/internal/models"
)

// SetupTestDB creates an in-memory database with every collection table
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupSeededDB creates an in-memory database holding the sample rows
func SetupSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	db := SetupTestDB(t)
	if _, err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return db
}

// CreateTestRecord inserts a record and returns its id
func CreateTestRecord(t *testing.T, db *sql.DB, collection string, values map[string]string) int {
	t.Helper()

	schema, err := models.LookupSchema(collection)
	if err != nil {
		t.Fatalf("Unknown collection %q: %v", collection, err)
	}

	// keep declaration order so the insert is deterministic
	var fields []models.Field
	for _, name := range schema.FieldNames() {
		if v, ok := values[name]; ok {
			fields = append(fields, models.Field{Name: name, Value: v})
		}
	}

	id, err := database.NewRepository(db).Insert(context.Background(), collection, fields)
	if err != nil {
		t.Fatalf("Failed to insert %s record: %v", collection, err)
	}
	return id
}
