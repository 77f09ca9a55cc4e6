package record

import "github.com/thenoetrevino/studentsync/internal/models"

// Action is the kind of mutation an Outcome reports
type Action string

const (
	ActionAdded  Action = "added"
	ActionEdited Action = "edited"
)

// Outcome is the typed result of a successful Add or Edit
type Outcome struct {
	Action Action
	Schema *models.Schema
	Record *models.Record
}

// Message returns the status line for the outcome, e.g. "Result edited"
func (o *Outcome) Message() string {
	if o.Action == ActionEdited {
		return o.Schema.EditedMessage
	}
	return o.Schema.AddedMessage
}
