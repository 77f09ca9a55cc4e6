package models

import "strings"

// Field is a single named text value of a record
type Field struct {
	Name  string
	Value string
}

// Record is one stored row of a collection.
// ID is assigned by storage at insert time and never changes.
type Record struct {
	ID         int
	Collection string
	Fields     []Field
}

// Get returns the value of the named field, or "" if the record has no such field
func (r *Record) Get(name string) string {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Values returns the field values keyed by field name
func (r *Record) Values() map[string]string {
	values := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		values[f.Name] = f.Value
	}
	return values
}

// Filter narrows a listing to records whose fields equal the given values.
// A nil or empty Filter matches every record.
type Filter []Field

// IsEmpty reports whether the filter matches every record
func (f Filter) IsEmpty() bool {
	return len(f) == 0
}

// Matches reports whether the record satisfies every term of the filter
func (f Filter) Matches(r *Record) bool {
	for _, term := range f {
		if r.Get(term.Name) != term.Value {
			return false
		}
	}
	return true
}

// Value returns the filter value for the named field
func (f Filter) Value(name string) (string, bool) {
	for _, term := range f {
		if term.Name == name {
			return term.Value, true
		}
	}
	return "", false
}

// String renders the filter as "department=CS, semester=Fall 2025"
func (f Filter) String() string {
	parts := make([]string, 0, len(f))
	for _, term := range f {
		parts = append(parts, term.Name+"="+term.Value)
	}
	return strings.Join(parts, ", ")
}
