package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/studentsync/internal/tui/state"
)

// RenderInline renders a compact single-line notification for the status bar
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders the current status message
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(SeverityOf(n.Level), n.Message)
}

// SeverityOf maps a notification level to its display severity
func SeverityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}
