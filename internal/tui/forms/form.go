package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string

	// Value returns the entered text
	Value() string
}

// Form manages a collection of fields
type Form struct {
	title        string
	submitKey    string
	fields       []Field
	focusedIndex int
	state        FormState
}

// NewForm creates a new form with the given fields.
// submitKey completes the form from any field; enter completes it from the last field.
func NewForm(title, submitKey string, fields ...Field) *Form {
	return &Form{
		title:        title,
		submitKey:    submitKey,
		fields:       fields,
		focusedIndex: 0,
		state:        StateInProgress,
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch key := keyMsg.String(); key {
		case "esc":
			f.state = StateAborted
			return f, nil

		case "tab", "shift+tab", "down", "up":
			return f, f.handleTabNavigation(key == "shift+tab" || key == "up")

		case "enter":
			if f.focusedIndex >= len(f.fields)-1 {
				f.state = StateCompleted
				return f, nil
			}
			return f, f.handleTabNavigation(false)

		case f.submitKey:
			f.state = StateCompleted
			return f, nil
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// handleTabNavigation moves focus between fields
func (f *Form) handleTabNavigation(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	return f.fields[f.focusedIndex].Focus()
}

// View renders the form
func (f *Form) View() string {
	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(field.View())
		b.WriteString("\n\n")
	}
	return b.String()
}

// Title returns the form heading
func (f *Form) Title() string {
	return f.title
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Focused returns the index of the focused field
func (f *Form) Focused() int {
	return f.focusedIndex
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

// Values returns every field's text keyed by field key
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.Key()] = field.Value()
	}
	return values
}
