package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/studentsync/internal/database"
	"github.com/thenoetrevino/studentsync/internal/models"
	"github.com/thenoetrevino/studentsync/internal/selector"
)

// Service defines the operations every collection tab offers
type Service interface {
	// Read operations
	Schemas() []*models.Schema
	Rows(ctx context.Context, collection string, filter models.Filter) ([]Row, error)
	Summary(ctx context.Context, collection string, filter models.Filter) (string, error)
	Positions(ctx context.Context, collection string, filter models.Filter) (*selector.Listing, error)
	Select(ctx context.Context, req SelectRequest) (*models.Record, error)

	// Write operations. Records are never deleted.
	Add(ctx context.Context, req AddRequest) (*Outcome, error)
	Edit(ctx context.Context, req EditRequest) (*Outcome, error)

	SelectorMode() selector.Mode
}

// SelectRequest identifies a record by its display position
type SelectRequest struct {
	Collection string
	Filter     models.Filter
	Position   int
}

// AddRequest encapsulates data for appending a record.
// Values holds the user-entered fields keyed by field name; filter fields are
// taken from Filter and remaining fields from their schema default.
type AddRequest struct {
	Collection string
	Filter     models.Filter
	Values     map[string]string
}

// EditRequest encapsulates data for overwriting the record at a display position
type EditRequest struct {
	Collection string
	Filter     models.Filter
	Position   int
	Values     map[string]string
}

// Row is one record of a listing together with its display position
type Row struct {
	Position int               `json:"position"`
	ID       int               `json:"id"`
	Fields   map[string]string `json:"fields"`
}

// service implements Service over a DataStore and a selector
type service struct {
	repo     database.DataStore
	selector *selector.Selector
}

// NewService creates a new record service
func NewService(repo database.DataStore, mode selector.Mode) Service {
	return &service{
		repo:     repo,
		selector: selector.New(repo, mode),
	}
}

func (s *service) Schemas() []*models.Schema {
	return models.Schemas()
}

func (s *service) SelectorMode() selector.Mode {
	return s.selector.Mode()
}

// Rows lists the records of a collection with the position each is displayed at
func (s *service) Rows(ctx context.Context, collection string, filter models.Filter) ([]Row, error) {
	listing, records, err := s.load(ctx, collection, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{Position: listing.Position(r), ID: r.ID, Fields: r.Values()}
	}
	return rows, nil
}

// Summary renders a collection as the multi-line text shown above its form
func (s *service) Summary(ctx context.Context, collection string, filter models.Filter) (string, error) {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return "", err
	}
	listing, records, err := s.load(ctx, collection, filter)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, r := range records {
		writeSummaryRow(&b, schema, listing.Position(r), r)
	}
	return b.String(), nil
}

// Positions returns the choice list of a selectable collection
func (s *service) Positions(ctx context.Context, collection string, filter models.Filter) (*selector.Listing, error) {
	schema, err := models.LookupSchema(collection)
	if err != nil {
		return nil, err
	}
	if !schema.Selectable {
		return nil, fmt.Errorf("%w: %s", models.ErrNotSelectable, collection)
	}
	return s.selector.ListPositions(ctx, collection, filter)
}

// Select resolves a position and fetches the record to prefill the form
func (s *service) Select(ctx context.Context, req SelectRequest) (*models.Record, error) {
	id, err := s.resolve(ctx, req.Collection, req.Filter, req.Position)
	if err != nil {
		return nil, err
	}
	return s.selector.Fetch(ctx, req.Collection, id)
}

// Add appends a record. Values are stored as entered, empty ones included.
func (s *service) Add(ctx context.Context, req AddRequest) (*Outcome, error) {
	schema, err := models.LookupSchema(req.Collection)
	if err != nil {
		return nil, err
	}

	fields, err := s.assemble(schema, req.Filter, req.Values, true)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, req.Collection, fields)
	if err != nil {
		return nil, err
	}

	slog.Info("record added", "collection", req.Collection, "id", id)
	return &Outcome{
		Action: ActionAdded,
		Schema: schema,
		Record: &models.Record{ID: id, Collection: req.Collection, Fields: fields},
	}, nil
}

// Edit overwrites the record at a display position
func (s *service) Edit(ctx context.Context, req EditRequest) (*Outcome, error) {
	schema, err := models.LookupSchema(req.Collection)
	if err != nil {
		return nil, err
	}
	if !schema.Selectable {
		return nil, fmt.Errorf("%w: %s", models.ErrNotSelectable, req.Collection)
	}
	if len(req.Values) == 0 {
		return nil, ErrNoValues
	}

	fields, err := s.assemble(schema, req.Filter, req.Values, false)
	if err != nil {
		return nil, err
	}

	id, err := s.resolve(ctx, req.Collection, req.Filter, req.Position)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, req.Collection, id, fields); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByID(ctx, req.Collection, id)
	if err != nil {
		return nil, err
	}

	slog.Info("record edited", "collection", req.Collection, "id", id, "position", req.Position)
	return &Outcome{Action: ActionEdited, Schema: schema, Record: record}, nil
}

func (s *service) resolve(ctx context.Context, collection string, filter models.Filter, position int) (int, error) {
	listing, err := s.Positions(ctx, collection, filter)
	if err != nil {
		return 0, err
	}
	return listing.Resolve(position)
}

// load takes a fresh listing and the records it covers
func (s *service) load(ctx context.Context, collection string, filter models.Filter) (*selector.Listing, []*models.Record, error) {
	listing, err := s.selector.ListPositions(ctx, collection, filter)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.repo.SelectAll(ctx, collection, filter)
	if err != nil {
		return nil, nil, err
	}
	return listing, records, nil
}

// assemble builds the stored fields in schema order.
// On add, fields the user does not enter come from the filter or their default.
// On edit, only entered fields and filter fields are written.
func (s *service) assemble(schema *models.Schema, filter models.Filter, values map[string]string, fill bool) ([]models.Field, error) {
	for name := range values {
		if def, ok := schema.Field(name); !ok || !def.Input {
			return nil, fmt.Errorf("%w: %s does not accept %q", models.ErrUnknownField, schema.Name, name)
		}
	}
	if err := schema.ValidateFilter(filter); err != nil {
		return nil, err
	}

	var fields []models.Field
	for _, def := range schema.Fields {
		if schema.IsFilterField(def.Name) {
			v, ok := filter.Value(def.Name)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingFilter, def.Name)
			}
			fields = append(fields, models.Field{Name: def.Name, Value: v})
			continue
		}

		if v, ok := values[def.Name]; ok {
			fields = append(fields, models.Field{Name: def.Name, Value: v})
		} else if fill {
			fields = append(fields, models.Field{Name: def.Name, Value: def.Default})
		}
	}
	return fields, nil
}
