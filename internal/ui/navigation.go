package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/format/table"
	"github.com/atomicstack/loandesk/internal/listing"
	"github.com/atomicstack/loandesk/internal/logging/events"
	"github.com/atomicstack/loandesk/internal/menu"
	"github.com/atomicstack/loandesk/internal/ui/command"
	uistate "github.com/atomicstack/loandesk/internal/ui/state"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return tea.Quit
	}
	if len(m.stack) <= 1 {
		return tea.Quit
	}
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent != nil {
		if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
			parent.Cursor = parent.LastCursor
		} else if !parent.Focus(current.Section) {
			parent.Focus(current.Record)
		}
		parent.LastCursor = -1
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil || len(current.Items) == 0 {
		return nil
	}
	item := current.Items[current.Cursor]
	events.UI.Enter(current.ID, item.ID, current.Filter)
	switch current.Kind {
	case uistate.KindSidebar:
		beforeCursor := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, beforeCursor)
		m.selectSection(item.ID)
	case uistate.KindList:
		m.openDetail(current, item)
	default:
		m.setInfo("Press esc to go back, ctrl+o to edit")
	}
	return nil
}

// selectSection makes id the active section and shows its list above the
// sidebar. Unknown ids fall back to the default section.
func (m *Model) selectSection(id string) {
	section, known := m.nav.Select(id)
	fallback := ""
	if !known {
		fallback = section.ID
		m.errMsg = fmt.Sprintf("Unknown section %q", id)
	} else {
		m.errMsg = ""
	}
	events.UI.SectionSelect(id, fallback)
	root := m.stack[0]
	if idx := root.IndexOf(section.ID); idx >= 0 {
		root.Cursor = idx
		root.LastCursor = idx
	}
	m.stack = append(m.stack[:1], newSectionLevel(section))
	m.forceClearInfo()
	m.syncViewport(m.currentLevel())
}

func newSectionLevel(section *menu.Section) *level {
	return uistate.NewListLevel(section.ID, section.Icon+" "+section.Label, sectionSource(section), section.View.Categories())
}

func sectionSource(section *menu.Section) uistate.QueryFunc {
	view := section.View
	return func(search, category string) []menu.Item {
		return menu.RowItems(view.Rows(listing.Query{Search: search, Category: category}))
	}
}

func (m *Model) openDetail(list *level, item menu.Item) {
	section, ok := m.nav.Registry().Find(list.Section)
	if !ok {
		return
	}
	fields, ok := section.View.Detail(item.ID)
	if !ok {
		m.errMsg = fmt.Sprintf("%s %s no longer exists", section.Label, item.ID)
		return
	}
	events.UI.Detail(section.ID, item.ID)
	list.LastCursor = list.Cursor
	detail := newLevel(section.ID+":detail", item.ID, uistate.KindDetail, detailItems(fields))
	detail.Section = section.ID
	detail.Record = item.ID
	m.stack = append(m.stack, detail)
	m.errMsg = ""
	m.forceClearInfo()
	m.syncViewport(detail)
}

func detailItems(fields []listing.Field) []menu.Item {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.Label, f.Value}
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	items := make([]menu.Item, len(fields))
	for i, f := range fields {
		items[i] = menu.Item{ID: f.Label, Label: lines[i]}
	}
	return items
}

// moveCursor applies move to the current level and traces the new position
// when it changed.
func (m *Model) moveCursor(move func(*level) bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if move(current) {
		events.UI.Cursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.Scroll(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeMenu {
		return nil
	}
	if keyMsg.Type == tea.KeyTab {
		if current := m.currentLevel(); current != nil {
			current.ToggleMark()
		}
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "ctrl+n":
		return m.openAddDialog()
	case "ctrl+o":
		return m.openEditDialog()
	case "ctrl+t":
		m.cycleCategory()
	case "ctrl+y":
		return m.copyRecordIDs()
	case "up":
		m.moveCursor(func(l *level) bool { return l.Step(-1) })
	case "down":
		m.moveCursor(func(l *level) bool { return l.Step(1) })
	case "pgup":
		m.moveCursor(func(l *level) bool { return l.Page(-1, m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func(l *level) bool { return l.Page(1, m.maxVisibleItems()) })
	case "home":
		m.moveCursor(func(l *level) bool { return l.Jump(0) })
	case "end":
		m.moveCursor(func(l *level) bool { return l.Jump(-1) })
	}
	return nil
}

// levelSection returns the section a level belongs to. On the sidebar this
// is the entry under the cursor.
func (m *Model) levelSection(l *level) *menu.Section {
	if l == nil {
		return nil
	}
	registry := m.nav.Registry()
	if l.Kind == uistate.KindSidebar {
		if item, ok := l.Current(); ok {
			if section, found := registry.Find(item.ID); found {
				return section
			}
		}
		return m.nav.Section()
	}
	if section, ok := registry.Find(l.Section); ok {
		return section
	}
	return nil
}

// currentRecord returns the record the cursor points at, if any.
func (m *Model) currentRecord() (menu.Item, bool) {
	current := m.currentLevel()
	if current == nil {
		return menu.Item{}, false
	}
	switch current.Kind {
	case uistate.KindList:
		return current.Current()
	case uistate.KindDetail:
		return menu.Item{ID: current.Record, Label: current.Title}, true
	}
	return menu.Item{}, false
}

func (m *Model) openAddDialog() tea.Cmd {
	if m.loading {
		return nil
	}
	section := m.levelSection(m.currentLevel())
	if section == nil {
		return nil
	}
	return m.execute(section, command.Request{
		ID:      section.ID + ":" + menu.DraftAdd,
		Label:   section.Label,
		Handler: menu.AddAction(section),
	})
}

func (m *Model) openEditDialog() tea.Cmd {
	if m.loading {
		return nil
	}
	section := m.levelSection(m.currentLevel())
	if section == nil {
		return nil
	}
	record, ok := m.currentRecord()
	if !ok {
		m.setInfo(fmt.Sprintf("Open %s and pick a record to edit", section.Label))
		return nil
	}
	return m.execute(section, command.Request{
		ID:      section.ID + ":" + menu.DraftEdit,
		Label:   record.ID,
		Handler: menu.EditAction(section),
		Item:    record,
	})
}

func (m *Model) copyRecordIDs() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	section := m.levelSection(current)
	if section == nil || current.Kind == uistate.KindSidebar {
		return nil
	}
	item, ok := m.currentRecord()
	if ids := current.MarkedIDs(); len(ids) > 0 {
		item = menu.Item{ID: strings.Join(ids, "\n")}
		ok = true
		current.ClearMarks()
	}
	if !ok {
		return nil
	}
	return m.execute(section, command.Request{
		ID:      section.ID + ":copy",
		Label:   "copy ids",
		Handler: copyAction,
		Item:    item,
	})
}

func (m *Model) execute(section *menu.Section, req command.Request) tea.Cmd {
	m.loading = true
	m.pendingID = req.ID
	m.pendingLabel = req.Label
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(m.menuContext(section), req)
}

func (m *Model) menuContext(section *menu.Section) menu.Context {
	ctx := menu.Context{}
	if section != nil {
		ctx.Section = section.ID
	}
	if current := m.currentLevel(); current != nil && current.Kind == uistate.KindList {
		ctx.Query = current.Query()
	}
	return ctx
}

func (m *Model) cycleCategory() {
	current := m.currentLevel()
	if current == nil || current.Kind != uistate.KindList {
		return
	}
	category, ok := current.CycleCategory()
	if !ok {
		m.setInfo(fmt.Sprintf("No filter categories for %s", current.Title))
		return
	}
	events.Filter.Category(current.ID, category)
	m.syncViewport(current)
}

// applySectionOverride opens the requested section at start-up. An unknown
// name shows an error and the default section.
func (m *Model) applySectionOverride(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		if root := m.stack[0]; root != nil {
			root.Cursor = max(root.IndexOf(m.nav.Section().ID), 0)
		}
		return
	}
	m.selectSection(trimmed)
}

func (m *Model) findLevelByID(id string) *level {
	for _, lvl := range m.stack {
		if lvl.ID == id {
			return lvl
		}
	}
	return nil
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
