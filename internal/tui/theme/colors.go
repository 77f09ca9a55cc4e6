package theme

import "github.com/thenoetrevino/studentsync/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Subtle        string
	Normal        string
	Title         string
	Add           string
	Edit          string
	TabBorder     string
	SelectedBg    string
	StatusBarBg   string
	StatusBarText string
	InfoFg        string
	InfoBg        string
	WarningFg     string
	WarningBg     string
	ErrorFg       string
	ErrorBg       string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Add = colors.Add
	Edit = colors.Edit
	TabBorder = colors.TabBorder
	SelectedBg = colors.SelectedBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
