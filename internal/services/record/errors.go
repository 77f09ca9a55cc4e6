package record

import "errors"

// Record-service errors
var (
	// ErrMissingFilter is returned when a filtered collection is mutated without
	// a value for one of its filter fields
	ErrMissingFilter = errors.New("missing filter value")

	// ErrNoValues is returned when an edit supplies no field values
	ErrNoValues = errors.New("no field values supplied")
)
