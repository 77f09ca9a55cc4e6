// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/studentsync/internal/config/colors"
	"github.com/thenoetrevino/studentsync/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// TitleStyle defines the appearance of headings
	TitleStyle lipgloss.Style

	// SummaryBoxStyle frames the collection summary
	SummaryBoxStyle lipgloss.Style

	// AddFormBoxStyle defines the base style for add forms (green border)
	AddFormBoxStyle lipgloss.Style

	// EditFormBoxStyle defines the base style for edit forms (blue border)
	EditFormBoxStyle lipgloss.Style

	// AboutBoxStyle defines the base style for the about screen
	AboutBoxStyle lipgloss.Style

	// ChoiceStyle and SelectedChoiceStyle render position choices
	ChoiceStyle         lipgloss.Style
	SelectedChoiceStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.TabBorder)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SummaryBoxStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(1, 2)

	AddFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Add)).
		Padding(1, 2)

	EditFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	AboutBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	ChoiceStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	SelectedChoiceStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBarBg)).
		Foreground(lipgloss.Color(theme.StatusBarText))
}
