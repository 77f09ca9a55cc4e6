package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/studentsync/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// checkFields rejects any field the schema does not define.
// Identifiers in generated SQL only ever come from the schema registry.
func checkFields(schema *models.Schema, fields []models.Field) error {
	for _, f := range fields {
		if _, ok := schema.Field(f.Name); !ok {
			return fmt.Errorf("%w: %s has no field %q", models.ErrUnknownField, schema.Name, f.Name)
		}
	}
	return nil
}

// buildInsert returns "INSERT INTO t (a, b) VALUES (?, ?)" and its arguments
func buildInsert(schema *models.Schema, fields []models.Field) (string, []any, error) {
	if err := checkFields(schema, fields); err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", schema.Name), nil, nil
	}

	names := make([]string, len(fields))
	marks := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		marks[i] = "?"
		args[i] = f.Value
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		schema.Name, strings.Join(names, ", "), strings.Join(marks, ", "))
	return query, args, nil
}

// buildUpdate returns "UPDATE t SET a = ?, b = ? WHERE id = ?" and its arguments
func buildUpdate(schema *models.Schema, id int, fields []models.Field) (string, []any, error) {
	if err := checkFields(schema, fields); err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", models.ErrUnknownField)
	}

	sets := make([]string, len(fields))
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		sets[i] = f.Name + " = ?"
		args = append(args, f.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", schema.Name, strings.Join(sets, ", "))
	return query, args, nil
}

// whereClause returns " WHERE a = ? AND b = ?" for a filter, or "" when it is empty
func whereClause(schema *models.Schema, filter models.Filter) (string, []any, error) {
	if filter.IsEmpty() {
		return "", nil, nil
	}
	if err := schema.ValidateFilter(filter); err != nil {
		return "", nil, err
	}

	terms := make([]string, len(filter))
	args := make([]any, len(filter))
	for i, term := range filter {
		terms[i] = term.Name + " = ?"
		args[i] = term.Value
	}
	return " WHERE " + strings.Join(terms, " AND "), args, nil
}

// selectColumns returns "id, a, b" for a schema
func selectColumns(schema *models.Schema) string {
	return "id, " + strings.Join(schema.FieldNames(), ", ")
}

// scanRecord scans one row selected with selectColumns
func scanRecord(schema *models.Schema, scan func(dest ...any) error) (*models.Record, error) {
	values := make([]sql.NullString, len(schema.Fields))
	dest := make([]any, 0, len(schema.Fields)+1)

	record := &models.Record{Collection: schema.Name}
	dest = append(dest, &record.ID)
	for i := range values {
		dest = append(dest, &values[i])
	}

	if err := scan(dest...); err != nil {
		return nil, err
	}

	record.Fields = make([]models.Field, len(schema.Fields))
	for i, f := range schema.Fields {
		record.Fields[i] = models.Field{Name: f.Name, Value: NullStringToString(values[i])}
	}
	return record, nil
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
