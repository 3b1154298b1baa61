package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/loandesk/internal/format/table"
	"github.com/atomicstack/loandesk/internal/menu"
	uistate "github.com/atomicstack/loandesk/internal/ui/state"
)

// previewInlineLines caps the preview drawn below the sidebar when the
// terminal is too narrow for a side panel.
const previewInlineLines = 6

type previewData struct {
	label string
	lines []string
	err   string
}

// activePreview describes what the side panel shows: the section under the
// sidebar cursor, or the record under the list cursor.
func (m *Model) activePreview() *previewData {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	switch current.Kind {
	case uistate.KindSidebar:
		return sectionPreview(m.levelSection(current))
	case uistate.KindList:
		item, ok := current.Current()
		if !ok {
			return nil
		}
		return recordPreview(m.levelSection(current), item.ID)
	}
	return nil
}

func sectionPreview(section *menu.Section) *previewData {
	if section == nil {
		return nil
	}
	view := section.View
	data := &previewData{label: section.Label}
	data.lines = append(data.lines, section.Subtitle(), "")

	stats := view.Stats()
	rows := make([][]string, len(stats))
	for i, stat := range stats {
		rows[i] = []string{stat.Label, stat.Display()}
	}
	data.lines = append(data.lines, table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})...)

	data.lines = append(data.lines, "", fmt.Sprintf("%d records", view.Len()))
	if cats := view.Categories(); len(cats) > 0 {
		data.lines = append(data.lines, "Filters: "+strings.Join(cats, " · "))
	}
	if view.Len() > 0 {
		data.lines = append(data.lines, "", view.Header())
		for _, row := range view.Rows(emptyQuery) {
			data.lines = append(data.lines, row.Label)
		}
	}
	return data
}

func recordPreview(section *menu.Section, id string) *previewData {
	if section == nil {
		return nil
	}
	data := &previewData{label: section.Label + " " + id}
	fields, ok := section.View.Detail(id)
	if !ok {
		data.err = fmt.Sprintf("%s not found", id)
		return data
	}
	for _, item := range detailItems(fields) {
		data.lines = append(data.lines, item.Label)
	}
	return data
}

func previewDisplayLines(data *previewData) []string {
	if data.err != "" {
		return []string{data.err}
	}
	if len(data.lines) > previewInlineLines {
		return data.lines[:previewInlineLines]
	}
	return data.lines
}
