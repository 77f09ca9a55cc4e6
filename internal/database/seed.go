package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/studentsync/internal/models"
)

type seedRow struct {
	collection string
	fields     []models.Field
}

var seedRows = []seedRow{
	{models.CollectionAnnouncements, []models.Field{
		{Name: "title", Value: "Exam Schedule"},
		{Name: "content", Value: "Midterms: Dec 10-15"},
	}},
	{models.CollectionLostAndFound, []models.Field{
		{Name: "item", Value: "Laptop"},
		{Name: "status", Value: "Reported, Awaiting Claim"},
	}},
	{models.CollectionResults, []models.Field{
		{Name: "student_id", Value: "S001"},
		{Name: "department", Value: "CS"},
		{Name: "semester", Value: "Fall 2025"},
		{Name: "course", Value: "OOP"},
		{Name: "grade", Value: "A"},
	}},
	{models.CollectionTimetable, []models.Field{
		{Name: "course", Value: "OOP"},
		{Name: "day", Value: "Monday"},
		{Name: "time", Value: "10 AM"},
	}},
	{models.CollectionCampusMap, []models.Field{
		{Name: "building", Value: "Library"},
		{Name: "location", Value: "Building A, North Wing"},
	}},
	{models.CollectionFAQ, []models.Field{
		{Name: "question", Value: "How to enroll?"},
		{Name: "answer", Value: "Visit registrar’s office or online portal"},
	}},
	{models.CollectionTransportTracker, []models.Field{
		{Name: "route", Value: "Campus-City"},
		{Name: "schedule", Value: "8 AM - 6 PM"},
		{Name: "live_location", Value: "Near Library"},
		{Name: "student_id", Value: "S001"},
	}},
}

// Seed inserts one sample row into every collection when announcements is empty.
// It returns whether rows were inserted. Running it again is a no-op.
func Seed(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+models.CollectionAnnouncements).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count announcements: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		for _, row := range seedRows {
			schema, err := models.LookupSchema(row.collection)
			if err != nil {
				return err
			}
			query, args, err := buildInsert(schema, row.fields)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("seed %s: %w", row.collection, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	slog.Info("seeded sample data", "collections", len(seedRows))
	return true, nil
}
