package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/listing"
)

func borrowerPrompt() DraftPrompt {
	return DraftPrompt{
		Context: Context{Section: "borrowers"},
		Kind:    DraftAdd,
		Spec: listing.DialogSpec{
			Title:  "Add New Borrower",
			Submit: "Add Borrower",
			Fields: []listing.DialogField{
				{Key: "name", Label: "Full Name"},
				{Key: "email", Label: "Email"},
				{Key: "status", Label: "Status", Options: []string{"active", "pending", "defaulted"}},
			},
		},
	}
}

func stubDraftID(t *testing.T, id string) {
	t.Helper()
	orig := newDraftID
	newDraftID = func() string { return id }
	t.Cleanup(func() { newDraftID = orig })
}

func typeRunes(f *DraftForm, s string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestDraftFormCollectsValues(t *testing.T) {
	form := NewDraftForm(borrowerPrompt())
	typeRunes(form, "Ann Banda")
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeRunes(form, "ann@x.io")
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form.Update(tea.KeyMsg{Type: tea.KeyRight})
	form.Update(tea.KeyMsg{Type: tea.KeyRight})

	values := form.Values()
	if values["name"] != "Ann Banda" || values["email"] != "ann@x.io" || values["status"] != "defaulted" {
		t.Fatalf("unexpected values %v", values)
	}
	form.Update(tea.KeyMsg{Type: tea.KeyRight})
	if form.Values()["status"] != "active" {
		t.Fatalf("choice should wrap, got %s", form.Values()["status"])
	}
	form.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if form.Values()["status"] != "defaulted" {
		t.Fatalf("choice should wrap backwards, got %s", form.Values()["status"])
	}
}

func TestDraftFormFocusWraps(t *testing.T) {
	form := NewDraftForm(borrowerPrompt())
	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if form.Focused() != 2 {
		t.Fatalf("expected focus to wrap to last field, got %d", form.Focused())
	}
	form.Update(tea.KeyMsg{Type: tea.KeyDown})
	if form.Focused() != 0 {
		t.Fatalf("expected focus to wrap to first field, got %d", form.Focused())
	}
	views := form.Fields()
	if !views[0].Focused || views[2].Input != "‹ active ›" || !views[2].Choice {
		t.Fatalf("unexpected field views %+v", views)
	}
}

func TestDraftFormEnterAdvancesThenSubmits(t *testing.T) {
	stubDraftID(t, "0123456789abcdef")
	form := NewDraftForm(borrowerPrompt())
	if _, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEnter}); done || cancel {
		t.Fatalf("enter on first field should advance")
	}
	form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done || cancel || cmd == nil {
		t.Fatalf("enter on last field should submit")
	}
	res, ok := cmd().(ActionResult)
	if !ok || res.Err != nil {
		t.Fatalf("unexpected result %#v", res)
	}
	if !strings.Contains(res.Info, "Add New Borrower") || !strings.Contains(res.Info, "01234567") {
		t.Fatalf("unexpected info %q", res.Info)
	}
}

func TestDraftFormCtrlSSubmitsAndEscCancels(t *testing.T) {
	form := NewDraftForm(borrowerPrompt())
	if _, done, _ := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS}); !done {
		t.Fatalf("ctrl+s should submit")
	}
	form = NewDraftForm(borrowerPrompt())
	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || done || !cancel {
		t.Fatalf("esc should cancel")
	}
}

func TestDraftFormPrefill(t *testing.T) {
	prompt := borrowerPrompt()
	prompt.Kind = DraftEdit
	prompt.Spec.Target = "B002"
	prompt.Spec.Fields[0].Value = "Sarah Johnson"
	prompt.Spec.Fields[2].Value = "pending"
	form := NewDraftForm(prompt)
	values := form.Values()
	if values["name"] != "Sarah Johnson" || values["status"] != "pending" {
		t.Fatalf("unexpected prefill %v", values)
	}
	form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if form.Values()["name"] != "" {
		t.Fatalf("ctrl+u should clear the focused input")
	}
	if form.Target() != "B002" || form.Kind() != DraftEdit {
		t.Fatalf("unexpected target/kind %s/%s", form.Target(), form.Kind())
	}
}

func TestSubmitDraftCommandMentionsTarget(t *testing.T) {
	spec := listing.DialogSpec{Title: "Edit Setting", Target: "two-factor"}
	res := SubmitDraftCommand(Context{Section: "settings"}, spec, "abc")().(ActionResult)
	if res.Info != "Edit Setting two-factor: draft abc recorded, no changes applied" {
		t.Fatalf("unexpected info %q", res.Info)
	}
}
