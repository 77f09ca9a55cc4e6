// Package record holds the cli commands that read and write collection records
// e.g., studentsync list results --department CS
package record

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/studentsync/internal/models"
	recordservice "github.com/thenoetrevino/studentsync/internal/services/record"
)

// Commands returns every record command, registered directly on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		CollectionsCmd(),
		ListCmd(),
		PositionsCmd(),
		ShowCmd(),
		AddCmd(),
		EditCmd(),
		DashboardCmd(),
	}
}

// recordOutput is the JSON shape of a single record
type recordOutput struct {
	Collection string            `json:"collection"`
	Position   *int              `json:"position,omitempty"`
	ID         int               `json:"id"`
	Fields     map[string]string `json:"fields"`
}

func (r recordOutput) GetID() int {
	return r.ID
}

func newRecordOutput(r *models.Record) recordOutput {
	return recordOutput{Collection: r.Collection, ID: r.ID, Fields: r.Values()}
}

// outcomeOutput is the JSON shape of an add or edit
type outcomeOutput struct {
	Action  recordservice.Action `json:"action"`
	Message string               `json:"message"`
	Record  recordOutput         `json:"record"`
}

func (o outcomeOutput) GetID() int {
	return o.Record.ID
}

func newOutcomeOutput(o *recordservice.Outcome) outcomeOutput {
	return outcomeOutput{
		Action:  o.Action,
		Message: o.Message(),
		Record:  newRecordOutput(o.Record),
	}
}
