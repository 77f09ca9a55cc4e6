package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentsync/internal/app"
	"github.com/thenoetrevino/studentsync/internal/config"
	"github.com/thenoetrevino/studentsync/internal/database"
	"github.com/thenoetrevino/studentsync/internal/models"
	"github.com/thenoetrevino/studentsync/internal/tui/state"
)

// Tab indexes in display order
const (
	tabDashboard = iota
	tabAnnouncements
	tabLostAndFound
	tabResults
	tabTimetable
)

func setupTestModel(t *testing.T) (Model, *database.Repository) {
	t.Helper()
	ctx := context.Background()

	db, err := database.InitDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := database.Seed(ctx, db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	repo := database.NewRepository(db)
	m := InitialModel(ctx, app.New(repo), config.Default())
	return m, repo
}

func sendKey(m Model, msg tea.KeyPressMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		r := []rune(k)[0]
		m = sendKey(m, tea.KeyPressMsg(tea.Key{Code: r, Text: k}))
	}
	return m
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m = sendKey(m, tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
	}
	return m
}

func special(m Model, code rune) Model {
	return sendKey(m, tea.KeyPressMsg(tea.Key{Code: code}))
}

func ctrlS(m Model) Model {
	return sendKey(m, tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl}))
}

func gotoTab(m Model, idx int) Model {
	for m.UiState.SelectedTab() != idx {
		m = press(m, "l")
	}
	return m
}

func TestInitialModel_ShowsDashboard(t *testing.T) {
	m, _ := setupTestModel(t)

	if m.UiState.SelectedTab() != tabDashboard {
		t.Errorf("Expected dashboard tab, got %d", m.UiState.SelectedTab())
	}
	if got := m.NotificationState.Current().Message; got != "Ready" {
		t.Errorf("Expected status Ready, got %q", got)
	}
	want := "Latest Announcement: Exam Schedule\nMidterms: Dec 10-15\n\nTransport Update: Campus-City is at Near Library"
	if m.dashboard != want {
		t.Errorf("Expected dashboard %q, got %q", want, m.dashboard)
	}
	if len(m.tabs) != 8 {
		t.Errorf("Expected dashboard plus 7 collection tabs, got %d", len(m.tabs))
	}
}

func TestUpdate_TabNavigationReloadsSummary(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(m, "l")
	if m.currentSchema().Name != models.CollectionAnnouncements {
		t.Fatalf("Expected announcements tab, got %s", m.currentTab().Title)
	}
	if m.summary != "[0] Title: Exam Schedule\nContent: Midterms: Dec 10-15\n\n" {
		t.Errorf("Unexpected summary %q", m.summary)
	}
	if m.listing == nil || m.listing.Len() != 1 {
		t.Error("Expected a one-entry choice list")
	}

	m = press(m, "h", "h")
	if m.UiState.SelectedTab() != len(m.tabs)-1 {
		t.Errorf("Expected PrevTab to wrap to the last tab, got %d", m.UiState.SelectedTab())
	}
	if m.listing != nil {
		t.Error("Transport tracker should have no choice list")
	}

	m = press(m, "g")
	if m.UiState.SelectedTab() != tabDashboard {
		t.Errorf("Expected dashboard key to jump to tab 0, got %d", m.UiState.SelectedTab())
	}
}

func TestUpdate_AddAnnouncement(t *testing.T) {
	m, repo := setupTestModel(t)
	m = gotoTab(m, tabAnnouncements)

	m = press(m, "a")
	if m.UiState.Mode() != state.FormMode || m.FormState.Editing {
		t.Fatalf("Expected add form, mode=%v editing=%v", m.UiState.Mode(), m.FormState.Editing)
	}

	m = typeString(m, "Holiday")
	m = special(m, tea.KeyTab)
	m = typeString(m, "Closed Friday")
	m = special(m, tea.KeyEnter)

	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected normal mode after submit, got %v", m.UiState.Mode())
	}
	if got := m.NotificationState.Current().Message; got != "Announcement added" {
		t.Errorf("Expected status %q, got %q", "Announcement added", got)
	}
	if !strings.Contains(m.summary, "[1] Title: Holiday\nContent: Closed Friday\n\n") {
		t.Errorf("Expected new record in summary, got %q", m.summary)
	}

	r, err := repo.GetByID(context.Background(), models.CollectionAnnouncements, 2)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if r.Get("title") != "Holiday" {
		t.Errorf("Expected stored title Holiday, got %q", r.Get("title"))
	}
}

func TestUpdate_EditPrefillsAndSaves(t *testing.T) {
	m, repo := setupTestModel(t)
	m = gotoTab(m, tabTimetable)

	m = press(m, "e")
	if m.UiState.Mode() != state.FormMode || !m.FormState.Editing {
		t.Fatalf("Expected edit form, got mode %v", m.UiState.Mode())
	}
	if got := m.FormState.Form.Values()["course"]; got != "OOP" {
		t.Errorf("Expected prefilled course OOP, got %q", got)
	}

	m = typeString(m, "2")
	m = ctrlS(m)

	if got := m.NotificationState.Current().Message; got != "Timetable entry edited" {
		t.Errorf("Expected status %q, got %q", "Timetable entry edited", got)
	}
	r, err := repo.GetByID(context.Background(), models.CollectionTimetable, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if r.Get("course") != "OOP2" || r.Get("day") != "Monday" {
		t.Errorf("Unexpected record after edit: %+v", r.Values())
	}
}

func TestUpdate_EscapeAbortsForm(t *testing.T) {
	m, repo := setupTestModel(t)
	m = gotoTab(m, tabAnnouncements)

	m = press(m, "a")
	m = typeString(m, "Draft")
	m = special(m, tea.KeyEscape)

	if m.UiState.Mode() != state.NormalMode || m.FormState.Active() {
		t.Error("Expected escape to close the form")
	}
	if got := m.NotificationState.Current().Message; got != "Ready" {
		t.Errorf("Expected status unchanged, got %q", got)
	}
	n, err := repo.Count(context.Background(), models.CollectionAnnouncements, nil)
	if err != nil || n != 1 {
		t.Errorf("Expected 1 announcement, got %d (err %v)", n, err)
	}
}

func TestUpdate_EditNotSelectable(t *testing.T) {
	m, _ := setupTestModel(t)
	m = gotoTab(m, tabLostAndFound)

	m = press(m, "e")

	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected to stay in normal mode, got %v", m.UiState.Mode())
	}
	current := m.NotificationState.Current()
	if current.Level != state.LevelError || !strings.HasPrefix(current.Message, "Error: ") {
		t.Errorf("Expected error status, got %+v", current)
	}
}

func TestUpdate_ResultsFilterCycling(t *testing.T) {
	m, repo := setupTestModel(t)
	m = gotoTab(m, tabResults)

	if !strings.Contains(m.summary, "[0] Student ID: S001, Course: OOP, Grade: A") {
		t.Fatalf("Expected CS Fall 2025 result, got %q", m.summary)
	}

	m = press(m, "D")
	if m.department() != "EE" {
		t.Fatalf("Expected department EE, got %q", m.department())
	}
	if m.summary != "" || m.listing.Len() != 0 {
		t.Errorf("Expected empty EE listing, got %q", m.summary)
	}

	// nothing to edit at position 0
	m = press(m, "e")
	if m.NotificationState.Current().Level != state.LevelError {
		t.Errorf("Expected error when editing an empty listing, got %+v", m.NotificationState.Current())
	}

	m = press(m, "a")
	m = typeString(m, "S002")
	m = special(m, tea.KeyTab)
	m = typeString(m, "Circuits")
	m = special(m, tea.KeyTab)
	m = typeString(m, "B")
	m = ctrlS(m)

	if got := m.NotificationState.Current().Message; got != "Result added" {
		t.Errorf("Expected status %q, got %q", "Result added", got)
	}
	if m.summary != "[0] Student ID: S002, Course: Circuits, Grade: B\n" {
		t.Errorf("Unexpected EE summary %q", m.summary)
	}

	r, err := repo.GetByID(context.Background(), models.CollectionResults, 2)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if r.Get("department") != "EE" || r.Get("semester") != "Fall 2025" {
		t.Errorf("Expected filter values stored, got %+v", r.Values())
	}

	m = press(m, "S")
	if m.semester() != "Spring 2026" {
		t.Errorf("Expected semester Spring 2026, got %q", m.semester())
	}
}

func TestUpdate_PositionMovementIsClamped(t *testing.T) {
	m, _ := setupTestModel(t)
	m = gotoTab(m, tabAnnouncements)

	m = press(m, "j", "j", "j")
	if got := m.selectedPosition(); got != 0 {
		t.Errorf("Expected position clamped to 0, got %d", got)
	}
	m = press(m, "k")
	if got := m.selectedPosition(); got != 0 {
		t.Errorf("Expected position to stay 0, got %d", got)
	}
}

func TestUpdate_SaveAndAbout(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(m, "s")
	if got := m.NotificationState.Current().Message; got != "Data saved" {
		t.Errorf("Expected status %q, got %q", "Data saved", got)
	}

	m = press(m, "?")
	if m.UiState.Mode() != state.AboutMode {
		t.Fatalf("Expected about mode, got %v", m.UiState.Mode())
	}
	m = press(m, "x")
	if m.UiState.Mode() != state.NormalMode {
		t.Errorf("Expected any key to close about, got %v", m.UiState.Mode())
	}
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := setupTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: 'q', Text: "q"}))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestView(t *testing.T) {
	m, _ := setupTestModel(t)

	if v := m.View(); v.Content != "Loading..." {
		t.Errorf("Expected loading view before resize, got %q", v.Content)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(Model)

	v := m.View()
	if !v.AltScreen {
		t.Error("Expected alt screen")
	}
	for _, want := range []string{"Dashboard", "Announcements", "Ready"} {
		if !strings.Contains(v.Content, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	m = press(gotoTab(m, tabAnnouncements), "a")
	if !strings.Contains(m.View().Content, "New Announcements record") {
		t.Error("Expected form title in view")
	}
}
