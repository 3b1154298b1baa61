package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestModel(t, "borrowers")
	current := m.currentLevel()
	handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("smi")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if current.Filter != "smi" {
		t.Fatalf("expected filter 'smi', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	if got := itemIDs(current.Items); got != "B001" {
		t.Fatalf("expected only B001 to match, got %s", got)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestModel(t, "loans")
	current := m.currentLevel()
	current.SetFilter("abc", 3)

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}); !handled {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}); !handled {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestHandleTextInputSpacesAndBackspace(t *testing.T) {
	m := newTestModel(t, "borrowers")
	current := m.currentLevel()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("john")})
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if current.Filter != "john s" {
		t.Fatalf("expected filter with space, got %q", current.Filter)
	}
	if got := itemIDs(current.Items); got != "B001" {
		t.Fatalf("expected untrimmed search to match B001, got %s", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if current.Filter != "john " {
		t.Fatalf("expected trailing space kept, got %q", current.Filter)
	}
	if got := itemIDs(current.Items); got != "B001" {
		t.Fatalf("expected trailing space to exclude Johnson, got %s", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if current.Filter != "" {
		t.Fatalf("expected word delete to clear filter, got %q", current.Filter)
	}
}

func TestHandleTextInputIgnoredWhileLoading(t *testing.T) {
	m := newTestModel(t, "borrowers")
	m.loading = true
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); handled {
		t.Fatalf("expected input ignored while loading")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestModel(t, "")
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "type to find a section") {
		t.Fatalf("expected sidebar placeholder, got %q", prompt)
	}

	m.selectSection("repayments")
	prompt = m.filterPrompt()
	if !strings.Contains(prompt, "type to search repayments") {
		t.Fatalf("expected list placeholder, got %q", prompt)
	}

	m.currentLevel().SetFilter("pend", 4)
	prompt = m.filterPrompt()
	if strings.Contains(prompt, "type to search") || !strings.Contains(prompt, "pend") {
		t.Fatalf("expected filter text in prompt, got %q", prompt)
	}
}

func TestHandleTextInputEditKeys(t *testing.T) {
	m := newTestModel(t, "loans")
	current := m.currentLevel()
	current.SetFilter("active john", 11)

	steps := []struct {
		key        tea.KeyMsg
		wantFilter string
		wantPos    int
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true}, "active john", 7},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, "active john", 0},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f"), Alt: true}, "active john", 7},
		{tea.KeyMsg{Type: tea.KeyCtrlE}, "active john", 11},
		{tea.KeyMsg{Type: tea.KeyCtrlU}, "", 0},
	}
	for i, step := range steps {
		if handled, _ := m.handleTextInput(step.key); !handled {
			t.Fatalf("step %d (%s): expected key handled", i, step.key)
		}
		if current.Filter != step.wantFilter || current.FilterCursorPos() != step.wantPos {
			t.Fatalf("step %d (%s): expected %q/%d, got %q/%d", i, step.key, step.wantFilter, step.wantPos, current.Filter, current.FilterCursorPos())
		}
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); handled {
		t.Fatalf("expected clearing an empty search to fall through")
	}
}
