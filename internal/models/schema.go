package models

import "fmt"

// Collection names, which double as table names
const (
	CollectionAnnouncements    = "announcements"
	CollectionLostAndFound     = "lost_and_found"
	CollectionResults          = "results"
	CollectionTimetable        = "timetable"
	CollectionCampusMap        = "campus_map"
	CollectionFAQ              = "faq"
	CollectionTransportTracker = "transport_tracker"
)

// Layout controls how a collection's summary text is laid out
type Layout int

const (
	// LayoutInline puts every field of a record on one line
	LayoutInline Layout = iota
	// LayoutBlock puts every field on its own line with a blank line between records
	LayoutBlock
	// LayoutStacked puts every field on its own line with no separator between records
	LayoutStacked
)

// FieldDef describes one column of a collection
type FieldDef struct {
	Name  string // column name
	Label string // label used in summary text, e.g. "Student ID"

	// Default is stored when the field is not collected from the user
	Default string

	// Input reports whether the user types this value into the form.
	// Fields that are neither input nor filter fields take Default.
	Input bool
}

// Schema describes a collection: its table, fields and how it is presented
type Schema struct {
	Name  string
	Title string

	Fields []FieldDef

	// FilterFields names the fields a listing may be scoped by (results: department, semester)
	FilterFields []string

	// Selectable collections offer a position choice list and can be edited
	Selectable bool

	// ShowPosition prefixes summary rows with "[position] "
	ShowPosition bool

	Layout Layout

	// AddedMessage and EditedMessage are the status texts for successful mutations
	AddedMessage  string
	EditedMessage string
}

// Field returns the definition of the named field
func (s *Schema) Field(name string) (FieldDef, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// FieldNames returns the column names in declaration order
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// InputFields returns the fields the user fills in, in declaration order
func (s *Schema) InputFields() []FieldDef {
	var fields []FieldDef
	for _, f := range s.Fields {
		if f.Input {
			fields = append(fields, f)
		}
	}
	return fields
}

// IsFilterField reports whether name is one of the schema's filter fields
func (s *Schema) IsFilterField(name string) bool {
	for _, f := range s.FilterFields {
		if f == name {
			return true
		}
	}
	return false
}

// ValidateFilter checks that every filter term names a filter field of this schema
func (s *Schema) ValidateFilter(filter Filter) error {
	for _, term := range filter {
		if !s.IsFilterField(term.Name) {
			return fmt.Errorf("%w: %q is not a filter of %s", ErrUnknownField, term.Name, s.Name)
		}
	}
	return nil
}

var schemas = []*Schema{
	{
		Name:  CollectionAnnouncements,
		Title: "Announcements",
		Fields: []FieldDef{
			{Name: "title", Label: "Title", Input: true},
			{Name: "content", Label: "Content", Input: true},
		},
		Selectable:    true,
		ShowPosition:  true,
		Layout:        LayoutBlock,
		AddedMessage:  "Announcement added",
		EditedMessage: "Announcement edited",
	},
	{
		Name:  CollectionLostAndFound,
		Title: "Lost & Found",
		Fields: []FieldDef{
			{Name: "item", Label: "Item", Input: true},
			{Name: "status", Label: "Status", Default: "Reported"},
		},
		Layout:       LayoutInline,
		AddedMessage: "Item reported",
	},
	{
		Name:  CollectionResults,
		Title: "Results",
		Fields: []FieldDef{
			{Name: "student_id", Label: "Student ID", Input: true},
			{Name: "department", Label: "Department"},
			{Name: "semester", Label: "Semester"},
			{Name: "course", Label: "Course", Input: true},
			{Name: "grade", Label: "Grade", Input: true},
		},
		FilterFields:  []string{"department", "semester"},
		Selectable:    true,
		ShowPosition:  true,
		Layout:        LayoutInline,
		AddedMessage:  "Result added",
		EditedMessage: "Result edited",
	},
	{
		Name:  CollectionTimetable,
		Title: "Timetable",
		Fields: []FieldDef{
			{Name: "course", Label: "Course", Input: true},
			{Name: "day", Label: "Day", Input: true},
			{Name: "time", Label: "Time", Input: true},
		},
		Selectable:    true,
		ShowPosition:  true,
		Layout:        LayoutInline,
		AddedMessage:  "Timetable entry added",
		EditedMessage: "Timetable entry edited",
	},
	{
		Name:  CollectionCampusMap,
		Title: "Campus Map",
		Fields: []FieldDef{
			{Name: "building", Label: "Building", Input: true},
			{Name: "location", Label: "Location", Input: true},
		},
		Layout:       LayoutInline,
		AddedMessage: "Map entry added",
	},
	{
		Name:  CollectionFAQ,
		Title: "FAQ",
		Fields: []FieldDef{
			{Name: "question", Label: "Q", Input: true},
			{Name: "answer", Label: "A", Input: true},
		},
		Layout:       LayoutStacked,
		AddedMessage: "FAQ added",
	},
	{
		Name:  CollectionTransportTracker,
		Title: "Transport Tracker",
		Fields: []FieldDef{
			{Name: "route", Label: "Route", Input: true},
			{Name: "schedule", Label: "Schedule", Input: true},
			{Name: "live_location", Label: "Live", Input: true},
			{Name: "student_id", Label: "Student ID", Input: true},
		},
		Layout:       LayoutInline,
		AddedMessage: "Transport entry added",
	},
}

// Schemas returns every collection schema in tab order
func Schemas() []*Schema {
	out := make([]*Schema, len(schemas))
	copy(out, schemas)
	return out
}

// LookupSchema returns the schema for a collection name
func LookupSchema(name string) (*Schema, error) {
	for _, s := range schemas {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
}
