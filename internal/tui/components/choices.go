package components

import (
	"iter"
	"strconv"

	"charm.land/lipgloss/v2"
)

// RenderChoices renders the selectable display positions of a collection
// on one line, highlighting selected. Returns a placeholder when there are none.
func RenderChoices(positions iter.Seq[int], selected int) string {
	var rendered []string
	for p := range positions {
		label := strconv.Itoa(p)
		if p == selected {
			rendered = append(rendered, SelectedChoiceStyle.Render(label))
		} else {
			rendered = append(rendered, ChoiceStyle.Render(label))
		}
	}

	if len(rendered) == 0 {
		return ChoiceStyle.Italic(true).Render("No records")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
