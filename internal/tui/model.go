package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentsync/internal/app"
	"github.com/thenoetrevino/studentsync/internal/config"
	"github.com/thenoetrevino/studentsync/internal/models"
	"github.com/thenoetrevino/studentsync/internal/selector"
	"github.com/thenoetrevino/studentsync/internal/tui/state"
)

// dashboardTitle names the first tab, which shows no collection
const dashboardTitle = "Dashboard"

// tab is one entry of the tab bar. Schema is nil for the dashboard.
type tab struct {
	Title  string
	Schema *models.Schema
}

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	config *config.Config

	tabs []tab

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState

	// content of the active tab, reloaded by refresh
	summary   string
	listing   *selector.Listing
	dashboard string
}

// InitialModel creates the TUI model and loads the first tab
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	tabs := []tab{{Title: dashboardTitle}}
	for _, schema := range a.RecordService.Schemas() {
		tabs = append(tabs, tab{Title: schema.Title, Schema: schema})
	}

	m := Model{
		ctx:               ctx,
		app:               a,
		config:            cfg,
		tabs:              tabs,
		UiState:           state.NewUIState(len(tabs)),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
	}
	m.refresh()
	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// currentTab returns the active tab
func (m Model) currentTab() tab {
	return m.tabs[m.UiState.SelectedTab()]
}

// currentSchema returns the schema of the active tab, nil on the dashboard
func (m Model) currentSchema() *models.Schema {
	return m.currentTab().Schema
}

// filter returns the listing filter of the active tab.
// Only collections with filter fields are scoped, by the selected department and semester.
func (m Model) filter() models.Filter {
	schema := m.currentSchema()
	if schema == nil || len(schema.FilterFields) == 0 {
		return nil
	}
	return models.Filter{
		{Name: "department", Value: m.department()},
		{Name: "semester", Value: m.semester()},
	}
}

func (m Model) department() string {
	if len(m.app.Departments) == 0 {
		return ""
	}
	return m.app.Departments[m.UiState.DepartmentIndex()%len(m.app.Departments)]
}

func (m Model) semester() string {
	if len(m.app.Semesters) == 0 {
		return ""
	}
	return m.app.Semesters[m.UiState.SemesterIndex()%len(m.app.Semesters)]
}

// refresh reloads the active tab from storage
func (m *Model) refresh() {
	m.summary = ""
	m.listing = nil
	m.dashboard = ""

	schema := m.currentSchema()
	if schema == nil {
		snapshot, err := m.app.DashboardService.Latest(m.ctx)
		if err != nil {
			slog.Error("failed to load dashboard", "error", err)
			m.NotificationState.Error(err)
			return
		}
		m.dashboard = snapshot.String()
		return
	}

	filter := m.filter()
	summary, err := m.app.RecordService.Summary(m.ctx, schema.Name, filter)
	if err != nil {
		slog.Error("failed to load summary", "collection", schema.Name, "error", err)
		m.NotificationState.Error(err)
		return
	}
	m.summary = summary

	if !schema.Selectable {
		return
	}
	listing, err := m.app.RecordService.Positions(m.ctx, schema.Name, filter)
	if err != nil {
		slog.Error("failed to list positions", "collection", schema.Name, "error", err)
		m.NotificationState.Error(err)
		return
	}
	m.listing = listing
	m.UiState.ClampPosition(schema.Name, listing.Len())
}

// selectedPosition returns the highlighted position of the active tab
func (m Model) selectedPosition() int {
	schema := m.currentSchema()
	if schema == nil {
		return 0
	}
	return m.UiState.Position(schema.Name)
}
