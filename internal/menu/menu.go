package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/listing"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
	Tone  domain.Tone
}

// Context carries the section and query an action runs against.
type Context struct {
	Section string
	Query   listing.Query
}

type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// DraftPrompt requests a create or edit dialog for a section.
type DraftPrompt struct {
	Context Context
	Kind    string
	Spec    listing.DialogSpec
}

const (
	DraftAdd  = "add"
	DraftEdit = "edit"
)

// RowItems converts rendered rows into menu items.
func RowItems(rows []listing.Row) []Item {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{ID: row.ID, Label: row.Label, Tone: row.Tone})
	}
	return items
}
