package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/studentsync/internal/models"
)

// RecordRepo handles record persistence for every registered collection
type RecordRepo struct {
	db *sql.DB
}

// Insert appends a record and returns its new identifier
func (r *RecordRepo) Insert(ctx context.Context, collection string, fields []models.Field) (int, error) {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return 0, err
	}

	query, args, err := buildInsert(schema, fields)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}

	slog.Debug("record inserted", "collection", collection, "id", id)
	return int(id), nil
}

// Update overwrites the given fields of the record with the given id.
// It returns models.ErrNotFound when no record has that id.
func (r *RecordRepo) Update(ctx context.Context, collection string, id int, fields []models.Field) error {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return err
	}

	query, args, err := buildUpdate(schema, id, fields)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", collection, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s id %d", models.ErrNotFound, collection, id)
	}

	slog.Debug("record updated", "collection", collection, "id", id)
	return nil
}

// SelectAll returns the records matching filter in creation order
func (r *RecordRepo) SelectAll(ctx context.Context, collection string, filter models.Filter) ([]*models.Record, error) {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return nil, err
	}

	where, args, err := whereClause(schema, filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id", selectColumns(schema), schema.Name, where)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", collection, err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		record, err := scanRecord(schema, rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the number of records matching filter
func (r *RecordRepo) Count(ctx context.Context, collection string, filter models.Filter) (int, error) {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return 0, err
	}

	where, args, err := whereClause(schema, filter)
	if err != nil {
		return 0, err
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", schema.Name, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return count, nil
}

// GetByID returns the record whose stored identifier equals id
func (r *RecordRepo) GetByID(ctx context.Context, collection string, id int) (*models.Record, error) {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", selectColumns(schema), schema.Name)
	record, err := scanRecord(schema, r.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s id %d", models.ErrNotFound, collection, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", collection, id, err)
	}
	return record, nil
}

// First returns the earliest stored record of a collection
func (r *RecordRepo) First(ctx context.Context, collection string) (*models.Record, error) {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id LIMIT 1", selectColumns(schema), schema.Name)
	record, err := scanRecord(schema, r.db.QueryRowContext(ctx, query).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s is empty", models.ErrNotFound, collection)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first %s: %w", collection, err)
	}
	return record, nil
}
