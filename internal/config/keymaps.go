package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Records
	AddRecord  string `yaml:"add_record"`
	EditRecord string `yaml:"edit_record"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	NextTab      string `yaml:"next_tab"`
	PrevTab      string `yaml:"prev_tab"`
	NextPosition string `yaml:"next_position"`
	PrevPosition string `yaml:"prev_position"`

	// Results filter
	CycleDepartment string `yaml:"cycle_department"`
	CycleSemester   string `yaml:"cycle_semester"`

	// Other
	Dashboard string `yaml:"dashboard"`
	SaveData  string `yaml:"save_data"`
	ShowAbout string `yaml:"show_about"`
	Quit      string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Records
		AddRecord:  "a",
		EditRecord: "e",

		SaveForm: "ctrl+s",

		// Navigation
		NextTab:      "l",
		PrevTab:      "h",
		NextPosition: "j",
		PrevPosition: "k",

		CycleDepartment: "D",
		CycleSemester:   "S",

		// Other
		Dashboard: "g",
		SaveData:  "s",
		ShowAbout: "?",
		Quit:      "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&k.AddRecord, defaults.AddRecord},
		{&k.EditRecord, defaults.EditRecord},
		{&k.SaveForm, defaults.SaveForm},
		{&k.NextTab, defaults.NextTab},
		{&k.PrevTab, defaults.PrevTab},
		{&k.NextPosition, defaults.NextPosition},
		{&k.PrevPosition, defaults.PrevPosition},
		{&k.CycleDepartment, defaults.CycleDepartment},
		{&k.CycleSemester, defaults.CycleSemester},
		{&k.Dashboard, defaults.Dashboard},
		{&k.SaveData, defaults.SaveData},
		{&k.ShowAbout, defaults.ShowAbout},
		{&k.Quit, defaults.Quit},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}
}
