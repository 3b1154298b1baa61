package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/loandesk/internal/logging/events"
	"github.com/atomicstack/loandesk/internal/menu"
)

// handleDraftForm routes key presses to the open dialog. Other messages keep
// flowing to their handlers so backend updates are not lost.
func (m *Model) handleDraftForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.draftForm == nil {
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		return false, nil
	}
	cmd, done, cancel := m.draftForm.Update(msg)
	if cancel {
		m.closeDraftForm()
		return true, cmd
	}
	if done {
		m.pendingID = m.dialog.Section + ":" + m.dialog.Kind
		m.pendingLabel = m.draftForm.Title()
		m.closeDraftForm()
		m.loading = true
		return true, cmd
	}
	return true, cmd
}

// startDraftForm opens the dialog described by prompt. It reports false when
// another dialog is already showing.
func (m *Model) startDraftForm(prompt menu.DraftPrompt) bool {
	if !m.dialog.Open(prompt.Context.Section, prompt.Kind) {
		return false
	}
	m.draftForm = menu.NewDraftForm(prompt)
	m.mode = ModeDialog
	events.Dialog.Open(prompt.Context.Section, prompt.Kind, prompt.Spec.Target)
	return true
}

func (m *Model) closeDraftForm() {
	m.dialog.Close()
	m.draftForm = nil
	m.mode = ModeMenu
}

// cancelDraftForm drops an open dialog without submitting it.
func (m *Model) cancelDraftForm(info string) {
	if m.draftForm == nil {
		return
	}
	events.Dialog.Cancel(m.dialog.Section, m.dialog.Kind, events.DialogReasonReload)
	m.closeDraftForm()
	m.setInfo(info)
}

func (m *Model) viewDraftFormWithHeader(header string) string {
	form := m.draftForm
	title := form.Title()
	if target := form.Target(); target != "" {
		title = fmt.Sprintf("%s · %s", title, target)
	}
	lines := []string{}
	if header != "" {
		lines = append(lines, styles.Header.Render(header))
	}
	lines = append(lines, styles.DialogTitle.Render(title), "")

	fields := form.Fields()
	labelWidth := 0
	for _, field := range fields {
		if w := lipgloss.Width(field.Label); w > labelWidth {
			labelWidth = w
		}
	}
	for _, field := range fields {
		marker := "  "
		labelStyle := styles.DialogLabel
		if field.Focused {
			marker = "› "
			labelStyle = styles.DialogFocus
		}
		label := field.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(field.Label))
		input := field.Input
		if field.Choice {
			input = styles.DialogChoice.Render(input)
		}
		lines = append(lines, labelStyle.Render(marker+label)+"  "+input)
	}
	lines = append(lines, "", styles.DialogFocus.Render("[ "+form.SubmitLabel()+" ]")+"  "+styles.DialogLabel.Render("Cancel"))
	lines = append(lines, "", styles.DialogHelp.Render(form.Help()))
	if m.width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > m.width {
				lines[i] = truncateANSI(line, m.width)
			}
		}
	}
	return strings.Join(lines, "\n")
}
