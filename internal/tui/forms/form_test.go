package forms

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code, Text: text})
}

func typeText(f *Form, s string) *Form {
	for _, r := range s {
		f, _ = f.Update(keyPress(r, string(r)))
	}
	return f
}

func newTestForm() *Form {
	f := NewForm("New Timetable entry", "ctrl+s",
		NewTextInput("course", "Course", "", ""),
		NewTextInput("day", "Day", "", "Monday"),
	)
	f.Init()
	return f
}

func TestForm_TypingAndValues(t *testing.T) {
	f := newTestForm()

	f = typeText(f, "OOP")
	values := f.Values()

	if values["course"] != "OOP" {
		t.Errorf("course = %q, want OOP", values["course"])
	}
	if values["day"] != "Monday" {
		t.Errorf("day = %q, want prefilled Monday", values["day"])
	}
	if f.State() != StateInProgress {
		t.Errorf("State = %v, want in progress", f.State())
	}
}

func TestForm_TabNavigation(t *testing.T) {
	f := newTestForm()

	f, _ = f.Update(keyPress(tea.KeyTab, ""))
	if f.Focused() != 1 {
		t.Fatalf("Focused after tab = %d, want 1", f.Focused())
	}
	if !f.Get("day").Focused() || f.Get("course").Focused() {
		t.Error("Expected focus to move from course to day")
	}

	f, _ = f.Update(keyPress(tea.KeyTab, ""))
	if f.Focused() != 0 {
		t.Errorf("Focused after wrapping = %d, want 0", f.Focused())
	}
}

func TestForm_EnterSubmitsOnLastField(t *testing.T) {
	f := newTestForm()

	f, _ = f.Update(keyPress(tea.KeyEnter, ""))
	if f.State() != StateInProgress || f.Focused() != 1 {
		t.Fatalf("Enter on first field should advance, state=%v focused=%d", f.State(), f.Focused())
	}

	f, _ = f.Update(keyPress(tea.KeyEnter, ""))
	if f.State() != StateCompleted {
		t.Errorf("Enter on last field: state = %v, want completed", f.State())
	}
}

func TestForm_SubmitKeyAndEscape(t *testing.T) {
	f := newTestForm()
	f, _ = f.Update(tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl}))
	if f.State() != StateCompleted {
		t.Errorf("ctrl+s: state = %v, want completed", f.State())
	}

	f = newTestForm()
	f, _ = f.Update(keyPress(tea.KeyEscape, ""))
	if f.State() != StateAborted {
		t.Errorf("esc: state = %v, want aborted", f.State())
	}

	// completed forms ignore further input
	f, _ = f.Update(keyPress('x', "x"))
	if f.Values()["course"] != "" {
		t.Errorf("Aborted form accepted input: %q", f.Values()["course"])
	}
}
