package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/studentsync/internal/tui/components"
	"github.com/thenoetrevino/studentsync/internal/tui/notifications"
	"github.com/thenoetrevino/studentsync/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.UiState.Mode() {
	case state.FormMode:
		if m.FormState.Active() {
			view.Content = m.viewForm()
			return view
		}
	case state.AboutMode:
		view.Content = m.viewAbout()
		return view
	}

	view.Content = m.viewTabs()
	return view
}

// viewTabs renders the tab bar, the active tab's content and the status bar
func (m Model) viewTabs() string {
	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		titles[i] = t.Title
	}
	tabBar := components.RenderTabs(titles, m.UiState.SelectedTab(), m.UiState.Width())

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:  m.UiState.Width(),
		Status: notifications.RenderInlineFromState(m.NotificationState.Current()),
	})

	bodyHeight := max(m.UiState.Height()-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 0)
	body := lipgloss.NewStyle().
		Width(m.UiState.Width()).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.viewBody())

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, body, statusBar)
}

// viewBody renders the dashboard or the summary and choice list of a collection
func (m Model) viewBody() string {
	schema := m.currentSchema()
	if schema == nil {
		text := m.dashboard
		if text == "" {
			text = "Nothing to show yet"
		}
		return components.SummaryBoxStyle.Render(
			components.TitleStyle.Render(dashboardTitle) + "\n\n" + text,
		)
	}

	var b strings.Builder
	heading := schema.Title
	if f := m.filter(); !f.IsEmpty() {
		heading = fmt.Sprintf("%s (%s, %s)", schema.Title, m.department(), m.semester())
	}
	b.WriteString(components.TitleStyle.Render(heading))
	b.WriteString("\n\n")

	if m.summary == "" {
		b.WriteString("No records")
	} else {
		b.WriteString(strings.TrimRight(m.summary, "\n"))
	}

	if m.listing != nil {
		b.WriteString("\n\n")
		b.WriteString(components.RenderChoices(m.listing.Positions(), m.selectedPosition()))
	}

	return components.SummaryBoxStyle.Render(b.String())
}

// viewForm renders the open add or edit form in a centered dialog
func (m Model) viewForm() string {
	boxStyle := components.AddFormBoxStyle
	if m.FormState.Editing {
		boxStyle = components.EditFormBoxStyle
	}

	form := m.FormState.Form
	content := components.TitleStyle.Render(form.Title()) + "\n\n" + form.View() +
		fmt.Sprintf("enter/%s: submit  esc: cancel", m.config.KeyMappings.SaveForm)

	formBox := boxStyle.Width(m.UiState.Width() / 2).Render(content)

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		formBox,
	)
}

// viewAbout renders the about screen in a centered dialog
func (m Model) viewAbout() string {
	width := max(m.UiState.Width()*2/3, 20)
	aboutBox := components.AboutBoxStyle.
		Width(width).
		Render(components.RenderAbout(components.AboutProps{Width: width - 6}))

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		aboutBox,
	)
}
