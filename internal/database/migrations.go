package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/thenoetrevino/studentsync/internal/models"
)

// runMigrations creates the table of every registered collection if it is missing
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, schema := range models.Schemas() {
		if err := createIfMissing(ctx, db, schema); err != nil {
			return fmt.Errorf("create %s: %w", schema.Name, err)
		}
	}
	return nil
}

// createIfMissing creates the table for a collection.
// AUTOINCREMENT keeps ids strictly increasing and never reused.
func createIfMissing(ctx context.Context, db *sql.DB, schema *models.Schema) error {
	columns := make([]string, 0, len(schema.Fields)+1)
	columns = append(columns, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	for _, f := range schema.Fields {
		columns = append(columns, f.Name+" TEXT")
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		schema.Name, strings.Join(columns, ", "),
	))
	if err != nil {
		return err
	}

	if len(schema.FilterFields) > 0 {
		_, err = db.ExecContext(ctx, fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%s_filter ON %s(%s)",
			schema.Name, schema.Name, strings.Join(schema.FilterFields, ", "),
		))
	}
	return err
}
