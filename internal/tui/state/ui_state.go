package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	FormMode               // Filling in an add or edit form
	AboutMode              // Displaying the about screen
)

// UIState manages the user interface state.
// This includes tab and position selection, the Results filter choices,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedTab is the index of the active tab
	selectedTab int

	// tabCount bounds tab navigation
	tabCount int

	// positions holds the highlighted display position per collection
	positions map[string]int

	// departmentIdx and semesterIdx index the Results filter choices
	departmentIdx int
	semesterIdx   int

	width  int
	height int

	mode Mode
}

// NewUIState creates a UIState with tabCount tabs and the first one active.
func NewUIState(tabCount int) *UIState {
	return &UIState{
		tabCount:  tabCount,
		positions: make(map[string]int),
		mode:      NormalMode,
	}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// SelectedTab returns the index of the active tab.
func (s *UIState) SelectedTab() int {
	return s.selectedTab
}

// SetSelectedTab activates a tab, ignoring out-of-range indexes.
func (s *UIState) SetSelectedTab(idx int) {
	if idx >= 0 && idx < s.tabCount {
		s.selectedTab = idx
	}
}

// NextTab activates the next tab, wrapping to the first.
func (s *UIState) NextTab() {
	if s.tabCount > 0 {
		s.selectedTab = (s.selectedTab + 1) % s.tabCount
	}
}

// PrevTab activates the previous tab, wrapping to the last.
func (s *UIState) PrevTab() {
	if s.tabCount > 0 {
		s.selectedTab = (s.selectedTab - 1 + s.tabCount) % s.tabCount
	}
}

// Position returns the highlighted position of a collection.
func (s *UIState) Position(collection string) int {
	return s.positions[collection]
}

// SetPosition highlights a position of a collection.
func (s *UIState) SetPosition(collection string, position int) {
	s.positions[collection] = position
}

// ClampPosition keeps the highlighted position inside [0, count).
func (s *UIState) ClampPosition(collection string, count int) {
	p := s.positions[collection]
	switch {
	case count == 0:
		p = 0
	case p >= count:
		p = count - 1
	case p < 0:
		p = 0
	}
	s.positions[collection] = p
}

// DepartmentIndex returns the selected department index.
func (s *UIState) DepartmentIndex() int {
	return s.departmentIdx
}

// SemesterIndex returns the selected semester index.
func (s *UIState) SemesterIndex() int {
	return s.semesterIdx
}

// CycleDepartment advances to the next of n departments.
func (s *UIState) CycleDepartment(n int) {
	if n > 0 {
		s.departmentIdx = (s.departmentIdx + 1) % n
	}
}

// CycleSemester advances to the next of n semesters.
func (s *UIState) CycleSemester(n int) {
	if n > 0 {
		s.semesterIdx = (s.semesterIdx + 1) % n
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetWindowSize records the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}
