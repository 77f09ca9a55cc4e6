package database

import (
	"context"

	"github.com/thenoetrevino/studentsync/internal/models"
)

// RecordReader defines read operations for records.
type RecordReader interface {
	SelectAll(ctx context.Context, collection string, filter models.Filter) ([]*models.Record, error)
	Count(ctx context.Context, collection string, filter models.Filter) (int, error)
	GetByID(ctx context.Context, collection string, id int) (*models.Record, error)
	First(ctx context.Context, collection string) (*models.Record, error)
}

// RecordWriter defines write operations for records.
// There is deliberately no delete: collections are append-only.
type RecordWriter interface {
	Insert(ctx context.Context, collection string, fields []models.Field) (int, error)
	Update(ctx context.Context, collection string, id int, fields []models.Field) error
}

// RecordRepository combines all record-related operations.
type RecordRepository interface {
	RecordReader
	RecordWriter
}
