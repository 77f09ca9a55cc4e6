package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/studentsync/internal/models"
	recordservice "github.com/thenoetrevino/studentsync/internal/services/record"
	"github.com/thenoetrevino/studentsync/internal/tui/forms"
	"github.com/thenoetrevino/studentsync/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWindowSize(msg.Width, msg.Height)
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.FormMode:
		return m.updateForm(msg)
	case state.AboutMode:
		if _, ok := msg.(tea.KeyPressMsg); ok {
			m.UiState.SetMode(state.NormalMode)
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		return m.handleNormalMode(msg)
	}
	return m, nil
}

// handleNormalMode dispatches key presses while browsing tabs
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch key := msg.String(); key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit

	case km.NextTab, "right":
		m.UiState.NextTab()
		m.refresh()

	case km.PrevTab, "left":
		m.UiState.PrevTab()
		m.refresh()

	case km.Dashboard:
		m.UiState.SetSelectedTab(0)
		m.refresh()

	case km.NextPosition, "down":
		m.movePosition(1)

	case km.PrevPosition, "up":
		m.movePosition(-1)

	case km.CycleDepartment:
		if m.currentSchema() != nil && len(m.currentSchema().FilterFields) > 0 {
			m.UiState.CycleDepartment(len(m.app.Departments))
			m.refresh()
		}

	case km.CycleSemester:
		if m.currentSchema() != nil && len(m.currentSchema().FilterFields) > 0 {
			m.UiState.CycleSemester(len(m.app.Semesters))
			m.refresh()
		}

	case km.AddRecord:
		return m.openAddForm()

	case km.EditRecord:
		return m.openEditForm()

	case km.SaveData:
		// every add and edit is committed as it happens
		m.NotificationState.Info("Data saved")

	case km.ShowAbout:
		m.UiState.SetMode(state.AboutMode)
	}

	return m, nil
}

// movePosition moves the highlighted position within the choice list
func (m *Model) movePosition(delta int) {
	schema := m.currentSchema()
	if schema == nil || m.listing == nil {
		return
	}
	m.UiState.SetPosition(schema.Name, m.UiState.Position(schema.Name)+delta)
	m.UiState.ClampPosition(schema.Name, m.listing.Len())
}

// openAddForm opens an empty form for the input fields of the active tab
func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	schema := m.currentSchema()
	if schema == nil {
		return m, nil
	}

	form := m.newForm(schema, "New "+schema.Title+" record", nil)
	m.FormState.Open(form, schema.Name, false, 0)
	m.UiState.SetMode(state.FormMode)
	return m, form.Init()
}

// openEditForm opens a form prefilled with the record at the highlighted position
func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	schema := m.currentSchema()
	if schema == nil {
		return m, nil
	}
	if !schema.Selectable {
		m.NotificationState.Error(fmt.Errorf("%w: %s", models.ErrNotSelectable, schema.Name))
		return m, nil
	}

	position := m.selectedPosition()
	record, err := m.app.RecordService.Select(m.ctx, recordservice.SelectRequest{
		Collection: schema.Name,
		Filter:     m.filter(),
		Position:   position,
	})
	if err != nil {
		slog.Info("select failed", "collection", schema.Name, "position", position, "error", err)
		m.NotificationState.Error(err)
		return m, nil
	}

	form := m.newForm(schema, fmt.Sprintf("Edit %s record %d", schema.Title, position), record)
	m.FormState.Open(form, schema.Name, true, position)
	m.UiState.SetMode(state.FormMode)
	return m, form.Init()
}

// newForm builds one text input per input field, prefilled from record when non-nil
func (m Model) newForm(schema *models.Schema, title string, record *models.Record) *forms.Form {
	var fields []forms.Field
	for _, f := range schema.InputFields() {
		value := ""
		if record != nil {
			value = record.Get(f.Name)
		}
		fields = append(fields, forms.NewTextInput(f.Name, f.Label, f.Label, value))
	}
	return forms.NewForm(title, m.config.KeyMappings.SaveForm, fields...)
}

// updateForm forwards messages to the open form and submits it once completed
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.FormState.Active() {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	form, cmd := m.FormState.Form.Update(msg)

	switch form.State() {
	case forms.StateCompleted:
		m.submitForm(form.Values())
		m.FormState.Close()
		m.UiState.SetMode(state.NormalMode)
		m.refresh()
		return m, nil

	case forms.StateAborted:
		m.FormState.Close()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	return m, cmd
}

// submitForm runs the add or edit and reports the outcome in the status bar
func (m *Model) submitForm(values map[string]string) {
	fs := m.FormState
	filter := m.filter()

	var (
		outcome *recordservice.Outcome
		err     error
	)
	if fs.Editing {
		outcome, err = m.app.RecordService.Edit(m.ctx, recordservice.EditRequest{
			Collection: fs.Collection,
			Filter:     filter,
			Position:   fs.Position,
			Values:     values,
		})
	} else {
		outcome, err = m.app.RecordService.Add(m.ctx, recordservice.AddRequest{
			Collection: fs.Collection,
			Filter:     filter,
			Values:     values,
		})
	}

	if err != nil {
		slog.Error("form submission failed", "collection", fs.Collection, "editing", fs.Editing, "error", err)
		m.NotificationState.Error(err)
		return
	}
	m.NotificationState.Info(outcome.Message())
}
