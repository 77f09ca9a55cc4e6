// Package selector maps zero-based display positions to durable record ids.
//
// A listing is taken fresh on every call and never cached. Two strategies are
// supported: ModeMaterialized resolves a position to the id at that rank of the
// listing, while ModeArithmetic computes id = position + 1 regardless of any
// filter, which picks the wrong record once a filter hides earlier rows.
package selector

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/thenoetrevino/studentsync/internal/models"
)

// Mode selects how positions are resolved to ids
type Mode string

const (
	ModeMaterialized Mode = "materialized"
	ModeArithmetic   Mode = "arithmetic"
)

// ParseMode converts a config or flag value into a Mode.
// The empty string yields ModeMaterialized.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeMaterialized:
		return ModeMaterialized, nil
	case ModeArithmetic:
		return ModeArithmetic, nil
	default:
		return "", fmt.Errorf("invalid selector mode %q (want %s or %s)", s, ModeMaterialized, ModeArithmetic)
	}
}

// Source is the part of the storage collaborator the selector reads from
type Source interface {
	Count(ctx context.Context, collection string, filter models.Filter) (int, error)
	SelectAll(ctx context.Context, collection string, filter models.Filter) ([]*models.Record, error)
	GetByID(ctx context.Context, collection string, id int) (*models.Record, error)
}

// Selector lists positions of one collection
type Selector struct {
	source Source
	mode   Mode
}

// New creates a selector reading from source
func New(source Source, mode Mode) *Selector {
	if mode == "" {
		mode = ModeMaterialized
	}
	return &Selector{source: source, mode: mode}
}

// Mode returns the resolution strategy in use
func (s *Selector) Mode() Mode {
	return s.mode
}

// Listing is a snapshot of the choosable positions for one collection and filter
type Listing struct {
	collection string
	filter     models.Filter
	mode       Mode
	count      int

	// ids holds the record id at each rank; only populated in ModeMaterialized
	ids []int
}

// ListPositions takes a snapshot of the positions [0, count) for the collection.
// With a filter, count is the number of records matching it.
func (s *Selector) ListPositions(ctx context.Context, collection string, filter models.Filter) (*Listing, error) {
	l := &Listing{collection: collection, filter: filter, mode: s.mode}

	if s.mode == ModeArithmetic {
		count, err := s.source.Count(ctx, collection, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", collection, err)
		}
		l.count = count
		return l, nil
	}

	records, err := s.source.SelectAll(ctx, collection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	l.ids = make([]int, len(records))
	for i, r := range records {
		l.ids[i] = r.ID
	}
	l.count = len(records)
	return l, nil
}

// Collection returns the listed collection name
func (l *Listing) Collection() string {
	return l.collection
}

// Filter returns the filter the listing was taken with
func (l *Listing) Filter() models.Filter {
	return l.filter
}

// Len returns the number of positions
func (l *Listing) Len() int {
	return l.count
}

// Positions yields 0, 1, ..., Len()-1. The sequence can be ranged over any number of times.
func (l *Listing) Positions() iter.Seq[int] {
	return func(yield func(int) bool) {
		for p := 0; p < l.count; p++ {
			if !yield(p) {
				return
			}
		}
	}
}

// Resolve translates a position into a record id.
// In ModeArithmetic it returns position+1 and never fails.
func (l *Listing) Resolve(position int) (int, error) {
	if l.mode == ModeArithmetic {
		return position + 1, nil
	}
	if position < 0 || position >= len(l.ids) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", models.ErrPositionOutOfRange, position, len(l.ids))
	}
	return l.ids[position], nil
}

// Position returns the position shown for a record
func (l *Listing) Position(r *models.Record) int {
	if l.mode == ModeArithmetic {
		return r.ID - 1
	}
	for i, id := range l.ids {
		if id == r.ID {
			return i
		}
	}
	// not in this listing; fall back to the unfiltered rank
	return r.ID - 1
}

// DisplayLabel renders "[position] field: value, field: value"
func (l *Listing) DisplayLabel(r *models.Record) string {
	return Label(l.Position(r), r)
}

// Label renders a record with an explicit position
func Label(position int, r *models.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] ", position)
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}
	return b.String()
}

// Fetch returns the record whose stored id equals id, or models.ErrNotFound
func (s *Selector) Fetch(ctx context.Context, collection string, id int) (*models.Record, error) {
	return s.source.GetByID(ctx, collection, id)
}
