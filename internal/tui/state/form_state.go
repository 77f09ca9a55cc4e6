package state

import "github.com/thenoetrevino/studentsync/internal/tui/forms"

// FormState tracks the add or edit form currently open.
type FormState struct {
	Form       *forms.Form
	Collection string

	// Editing is false for add forms
	Editing bool

	// Position is the display position being edited
	Position int
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Open installs a new form.
func (s *FormState) Open(form *forms.Form, collection string, editing bool, position int) {
	s.Form = form
	s.Collection = collection
	s.Editing = editing
	s.Position = position
}

// Close discards the current form.
func (s *FormState) Close() {
	*s = FormState{}
}

// Active reports whether a form is open.
func (s *FormState) Active() bool {
	return s.Form != nil
}
