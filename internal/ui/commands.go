package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/logging"
	"github.com/atomicstack/loandesk/internal/logging/events"
	"github.com/atomicstack/loandesk/internal/menu"
)

var copyAction menu.Action = menu.CopyAction

// handleActionResultMsg reports the outcome of a dialog, copy or other
// action. Actions never end the program.
func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		logging.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}
