package record

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/studentsync/internal/models"
)

// writeSummaryRow appends one record in its collection's layout.
// Filter fields are implied by the active filter and left out.
func writeSummaryRow(b *strings.Builder, schema *models.Schema, position int, r *models.Record) {
	if schema.ShowPosition {
		fmt.Fprintf(b, "[%d] ", position)
	}

	sep := ", "
	if schema.Layout != models.LayoutInline {
		sep = "\n"
	}

	first := true
	for _, def := range schema.Fields {
		if schema.IsFilterField(def.Name) {
			continue
		}
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(def.Label)
		b.WriteString(": ")
		b.WriteString(r.Get(def.Name))
	}

	b.WriteString("\n")
	if schema.Layout == models.LayoutBlock {
		b.WriteString("\n")
	}
}
