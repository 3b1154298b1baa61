package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/menu"
)

func stubCopyAction(t *testing.T, fn menu.Action) {
	t.Helper()
	orig := copyAction
	copyAction = fn
	t.Cleanup(func() { copyAction = orig })
}

func TestCopyUsesMarkedRows(t *testing.T) {
	var copied menu.Item
	stubCopyAction(t, func(ctx menu.Context, item menu.Item) tea.Cmd {
		copied = item
		return func() tea.Msg { return menu.ActionResult{Info: "copied"} }
	})
	h := NewHarness(newTestModel(t, "loans"))
	list := h.Model().currentLevel()
	list.Cursor = 0
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	list.Cursor = 2
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlY})

	want := list.Items[0].ID + "\n" + list.Items[2].ID
	if copied.ID != want {
		t.Fatalf("expected marked ids %q, got %q", want, copied.ID)
	}
	if len(list.MarkedIDs()) != 0 {
		t.Fatalf("expected marks cleared after copy")
	}
	if h.Model().infoMsg != "copied" {
		t.Fatalf("unexpected info %q", h.Model().infoMsg)
	}
}

func TestCopyFallsBackToCursorRecord(t *testing.T) {
	var copied menu.Item
	stubCopyAction(t, func(ctx menu.Context, item menu.Item) tea.Cmd {
		copied = item
		return nil
	})
	h := NewHarness(newTestModel(t, "repayments"))
	list := h.Model().currentLevel()
	list.Cursor = 1
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied.ID != list.Items[1].ID {
		t.Fatalf("expected cursor id, got %q", copied.ID)
	}
}

func TestActionResultErrorKeepsRunning(t *testing.T) {
	m := newTestModel(t, "")
	m.loading = true
	cmd := m.handleActionResultMsg(menu.ActionResult{Err: errors.New("no display")})
	if cmd != nil {
		t.Fatalf("action results must not quit")
	}
	if m.loading || m.errMsg != "no display" {
		t.Fatalf("unexpected state loading=%v err=%q", m.loading, m.errMsg)
	}
	m.handleActionResultMsg(menu.ActionResult{Info: "fine"})
	if m.errMsg != "" || m.infoMsg != "fine" {
		t.Fatalf("expected info to replace the error, got %q / %q", m.errMsg, m.infoMsg)
	}
}
