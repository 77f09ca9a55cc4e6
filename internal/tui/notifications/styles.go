package notifications

import "github.com/thenoetrevino/studentsync/internal/tui/theme"

type style struct {
	icon       string
	foreground string
	background string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{
			icon:       "⚠",
			foreground: theme.WarningFg,
			background: theme.WarningBg,
		}
	case Error:
		return style{
			icon:       "✕",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	default:
		return style{
			icon:       "●",
			foreground: theme.InfoFg,
			background: theme.InfoBg,
		}
	}
}
