package ui

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/backend"
	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/listing"
	"github.com/atomicstack/loandesk/internal/menu"
	uistate "github.com/atomicstack/loandesk/internal/ui/state"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmds := []tea.Cmd{m.applyBackendEvent(eventMsg.event)}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return batch(cmds)
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	res := m.dispatcher.Handle(evt)
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return nil
	}
	if res.DatasetUpdated {
		m.applyDataset(m.datasets.Dataset())
		if m.verbose {
			m.setInfo(fmt.Sprintf("Reloaded %s (v%d)", evt.Path, res.Version))
		}
	}
	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
	return nil
}

// applyDataset rebuilds every section from ds and refreshes the levels on
// the stack in place. Filters, categories and cursors are kept where the
// data still allows it.
func (m *Model) applyDataset(ds domain.Dataset) {
	m.company = ds.Company
	m.today = ds.Today
	registry := menu.BuildRegistry(ds)
	m.nav.SetRegistry(registry)
	if m.draftForm != nil {
		m.cancelDraftForm("Dialog closed: data reloaded")
	}

	keep := len(m.stack)
	for i, lvl := range m.stack {
		switch lvl.Kind {
		case uistate.KindSidebar:
			lvl.UpdateItems(registry.Items())
		case uistate.KindList:
			section, ok := registry.Find(lvl.Section)
			if !ok {
				keep = min(keep, i)
				continue
			}
			lvl.Source = sectionSource(section)
			lvl.Categories = section.View.Categories()
			if !slices.Contains(lvl.Categories, lvl.Category) {
				lvl.Category = ""
				if len(lvl.Categories) > 0 {
					lvl.Category = listing.All
				}
			}
			lvl.UpdateItems(lvl.Source("", listing.All))
		case uistate.KindDetail:
			section, ok := registry.Find(lvl.Section)
			if !ok {
				keep = min(keep, i)
				continue
			}
			fields, found := section.View.Detail(lvl.Record)
			if !found {
				keep = min(keep, i)
				m.setInfo(fmt.Sprintf("%s %s was removed", section.Label, lvl.Record))
				continue
			}
			lvl.UpdateItems(detailItems(fields))
		}
		m.syncViewport(lvl)
	}
	if keep < len(m.stack) {
		m.stack = m.stack[:max(keep, 1)]
		if parent := m.currentLevel(); parent != nil {
			parent.LastCursor = -1
			m.syncViewport(parent)
		}
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
