package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/studentsync/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations.
// No sample data is seeded so every collection starts empty.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "studentsync-test.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() {
		_ = newDB.Close()
	})

	return newDB
}

// ============================================================================
// RECORD HELPERS
// ============================================================================

func announcement(title, content string) []models.Field {
	return []models.Field{
		{Name: "title", Value: title},
		{Name: "content", Value: content},
	}
}

func result(studentID, department, semester, course, grade string) []models.Field {
	return []models.Field{
		{Name: "student_id", Value: studentID},
		{Name: "department", Value: department},
		{Name: "semester", Value: semester},
		{Name: "course", Value: course},
		{Name: "grade", Value: grade},
	}
}

// mustInsert inserts a record and fails the test on error
func mustInsert(t *testing.T, repo *Repository, collection string, fields []models.Field) int {
	t.Helper()
	id, err := repo.Insert(context.Background(), collection, fields)
	if err != nil {
		t.Fatalf("Failed to insert into %s: %v", collection, err)
	}
	return id
}

// mustCount counts records and fails the test on error
func mustCount(t *testing.T, repo *Repository, collection string, filter models.Filter) int {
	t.Helper()
	count, err := repo.Count(context.Background(), collection, filter)
	if err != nil {
		t.Fatalf("Failed to count %s: %v", collection, err)
	}
	return count
}
