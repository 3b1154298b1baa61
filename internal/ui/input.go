package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/loandesk/internal/logging/events"
	uistate "github.com/atomicstack/loandesk/internal/ui/state"
)

const filterPromptMarker = "» "

// filterEdit is one editing key of the search prompt. Edits that change the
// text re-run the search; the others only move the caret.
type filterEdit struct {
	apply   func(*level) bool
	changes bool
	word    bool
	op      string
}

var filterEdits = map[string]filterEdit{
	"ctrl+u": {op: "clear", changes: true, apply: func(l *level) bool {
		if l.Filter == "" {
			return false
		}
		l.SetFilter("", 0)
		return true
	}},
	"ctrl+w":    {op: "word-backspace", changes: true, apply: (*level).DeleteFilterWordBackward},
	"backspace": {op: "backspace", changes: true, apply: (*level).DeleteFilterRuneBackward},
	"ctrl+h":    {op: "backspace", changes: true, apply: (*level).DeleteFilterRuneBackward},
	"ctrl+a":    {apply: (*level).MoveFilterCursorStart},
	"ctrl+e":    {apply: (*level).MoveFilterCursorEnd},
	"left":      {apply: (*level).MoveFilterCursorRuneBackward},
	"right":     {apply: (*level).MoveFilterCursorRuneForward},
	"alt+b":     {word: true, apply: (*level).MoveFilterCursorWordBackward},
	"alt+f":     {word: true, apply: (*level).MoveFilterCursorWordForward},
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l != nil && before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput applies key to the search prompt of the current level.
// It reports false for keys the prompt does not consume.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	if m.loading || current == nil {
		return false, nil
	}
	if edit, ok := filterEdits[msg.String()]; ok {
		return m.applyFilterEdit(current, edit), nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return m.insertFilterText(current, " "), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			// spaces arrive as tea.KeySpace; a rune batch holding one is a paste
			// that would otherwise start with a hidden control character.
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false, nil
			}
		}
		return m.insertFilterText(current, string(msg.Runes)), nil
	}
	return false, nil
}

func (m *Model) applyFilterEdit(current *level, edit filterEdit) bool {
	before := current.FilterCursorPos()
	if !edit.apply(current) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	if !edit.changes {
		if edit.word {
			events.Filter.CursorWord(current.ID, current.FilterCursor)
		} else {
			events.Filter.Cursor(current.ID, current.FilterCursor)
		}
		return true
	}
	switch edit.op {
	case "clear":
		events.Filter.Cleared(current.ID)
	case "word-backspace":
		events.Filter.WordBackspace(current.ID, current.Filter)
	default:
		events.Filter.Backspace(current.ID, current.Filter)
	}
	m.afterFilterChange(current)
	return true
}

func (m *Model) insertFilterText(current *level, text string) bool {
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	events.Filter.Append(current.ID, current.Filter)
	m.afterFilterChange(current)
	return true
}

// afterFilterChange drops stale messages and keeps the cursor row in view
// once the search text has changed the visible rows.
func (m *Model) afterFilterChange(current *level) {
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(current)
}

// filterPrompt renders the search prompt with its caret, or a placeholder
// naming what is being searched when the prompt is empty.
func (m *Model) filterPrompt() string {
	prompt := filterPromptMarker
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	current := m.currentLevel()
	if current == nil {
		return prompt
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}

	textStyle := styles.Filter
	runes := []rune(current.Filter)
	pos := min(max(current.FilterCursorPos(), 0), len(runes))
	if len(runes) == 0 {
		textStyle = styles.FilterPlaceholder
		runes = []rune(searchPlaceholder(current))
		pos = 0
	}
	m.filterCursor.TextStyle = lipgloss.Style{}
	if textStyle != nil {
		m.filterCursor.TextStyle = textStyle.Copy()
	}

	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + renderWith(textStyle, string(runes[:pos])) + m.renderFilterCursor(caret) + renderWith(textStyle, after)
}

func renderWith(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	switch {
	case m.filterCursor.Blink:
		return base.Render(char)
	case styles.Cursor != nil:
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func searchPlaceholder(l *level) string {
	switch l.Kind {
	case uistate.KindSidebar:
		return "(type to find a section)"
	case uistate.KindList:
		return "(type to search " + l.Section + ")"
	}
	return "(type to search)"
}
