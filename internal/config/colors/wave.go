package colors

// Kanagawa Wave palette
const (
	sumiInk6     = "#54546D"
	waveBlue1    = "#223249"
	oniViolet    = "#957FB8"
	springGreen  = "#98BB6C"
	crystalBlue  = "#7E9CD8"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
	dragonBlue   = "#658594"
	winterBlue   = "#252535"
	roninYellow  = "#FF9E3B"
	winterYellow = "#49443C"
	samuraiRed   = "#E82424"
	winterRed    = "#43242B"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: oniViolet,

		// Semantic colors
		Add:  springGreen,
		Edit: crystalBlue,

		// UI element colors
		TabBorder:  sumiInk6,
		SelectedBg: waveBlue1,

		// Text colors
		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		// Notification colors
		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		// Status bar
		StatusBarBg:   oniViolet,
		StatusBarText: fujiWhite,
	}
}
