package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/menu"
	uistate "github.com/atomicstack/loandesk/internal/ui/state"
)

func TestAddDialogOpensAndCancels(t *testing.T) {
	h := NewHarness(newTestModel(t, "borrowers"))
	before := itemIDs(h.Model().currentLevel().Items)

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	m := h.Model()
	if m.DialogState() != uistate.DialogOpen || m.mode != ModeDialog {
		t.Fatalf("expected dialog open, got %s", m.DialogState())
	}
	if m.dialog.Section != "borrowers" || m.dialog.Kind != menu.DraftAdd {
		t.Fatalf("unexpected dialog %+v", m.dialog)
	}
	if view := h.View(); !strings.Contains(view, "Add New Borrower") || !strings.Contains(view, "Full Name") {
		t.Fatalf("expected dialog in view, got:\n%s", view)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.DialogState() != uistate.DialogClosed || m.mode != ModeMenu {
		t.Fatalf("expected dialog closed after esc")
	}
	if len(m.stack) != 2 {
		t.Fatalf("esc in a dialog must not pop the level, got %d levels", len(m.stack))
	}
	if got := itemIDs(m.currentLevel().Items); got != before {
		t.Fatalf("records changed after cancel: %s", got)
	}
}

func TestAddDialogConfirmDiscardsDraft(t *testing.T) {
	h := NewHarness(newTestModel(t, "loans"))
	before := itemIDs(h.Model().currentLevel().Items)

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	m := h.Model()
	if m.DialogState() != uistate.DialogClosed {
		t.Fatalf("expected dialog closed after confirm")
	}
	if m.loading {
		t.Fatalf("expected loading cleared after the result")
	}
	if !strings.HasPrefix(m.infoMsg, "Create New Loan: draft ") || !strings.HasSuffix(m.infoMsg, "recorded, no changes applied") {
		t.Fatalf("unexpected info %q", m.infoMsg)
	}
	if got := itemIDs(m.currentLevel().Items); got != before {
		t.Fatalf("records changed after confirm: %s", got)
	}
	section, _ := m.nav.Registry().Find("loans")
	if section.View.Len() != len(m.currentLevel().Items) {
		t.Fatalf("section length changed")
	}
}

func TestAddDialogFromSidebarUsesCursorSection(t *testing.T) {
	h := NewHarness(newTestModel(t, ""))
	root := h.Model().currentLevel()
	root.Cursor = root.IndexOf("expenses")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	if h.Model().dialog.Section != "expenses" {
		t.Fatalf("expected expenses dialog, got %+v", h.Model().dialog)
	}
}

func TestSectionWithoutAddDialogReportsError(t *testing.T) {
	h := NewHarness(newTestModel(t, "charts"))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	m := h.Model()
	if m.DialogState() != uistate.DialogClosed {
		t.Fatalf("charts has no dialog to open")
	}
	if m.errMsg != "Charts has no add dialog" {
		t.Fatalf("unexpected error %q", m.errMsg)
	}
}

func TestEditDialogTargetsCursorRecord(t *testing.T) {
	h := NewHarness(newTestModel(t, "borrowers"))
	list := h.Model().currentLevel()
	list.Cursor = list.IndexOf("B002")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlO})
	m := h.Model()
	if m.draftForm == nil || m.draftForm.Target() != "B002" || m.draftForm.Kind() != menu.DraftEdit {
		t.Fatalf("expected edit dialog for B002")
	}
	if view := h.View(); !strings.Contains(view, "Edit Borrower · B002") {
		t.Fatalf("expected edit title in view, got:\n%s", view)
	}
}

func TestEditOnSidebarNeedsRecord(t *testing.T) {
	h := NewHarness(newTestModel(t, ""))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlO})
	m := h.Model()
	if m.DialogState() != uistate.DialogClosed {
		t.Fatalf("expected no dialog without a record")
	}
	if m.infoMsg != "Open Borrowers and pick a record to edit" {
		t.Fatalf("unexpected info %q", m.infoMsg)
	}
}

func TestSecondDialogIsRejected(t *testing.T) {
	m := newTestModel(t, "borrowers")
	section, _ := m.nav.Registry().Find("borrowers")
	spec, _ := section.View.AddDialog()
	prompt := menu.DraftPrompt{Context: menu.Context{Section: "borrowers"}, Kind: menu.DraftAdd, Spec: spec}
	m.handleDraftPromptMsg(prompt)
	if !m.dialog.IsOpen() {
		t.Fatalf("expected first dialog open")
	}
	first := m.draftForm
	m.handleDraftPromptMsg(prompt)
	if m.draftForm != first {
		t.Fatalf("expected the open dialog to be kept")
	}
	if m.errMsg == "" {
		t.Fatalf("expected an error for the second dialog")
	}
}
