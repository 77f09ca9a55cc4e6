package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/studentsync/internal/tui/theme"
)

type StatusBarProps struct {
	Width int

	// Status is the rendered status message, shown on the left
	Status string

	// Help is the key hint shown on the right
	Help string
}

// RenderStatusBar renders the status message on the left and the key hint on the right
func RenderStatusBar(props StatusBarProps) string {
	help := props.Help
	if help == "" {
		help = "press ? for about"
	}
	rightRendered := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(help)

	gapWidth := props.Width - lipgloss.Width(props.Status) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, props.Status, strings.Repeat(" ", gapWidth), rightRendered)
}
