package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// AddAction requests the create dialog of section.
func AddAction(section *Section) Action {
	return func(ctx Context, _ Item) tea.Cmd {
		return func() tea.Msg {
			spec, ok := section.View.AddDialog()
			if !ok {
				return ActionResult{Err: fmt.Errorf("%s has no add dialog", section.Label)}
			}
			return DraftPrompt{Context: ctx, Kind: DraftAdd, Spec: spec}
		}
	}
}

// EditAction requests the edit dialog of section for the item's record.
func EditAction(section *Section) Action {
	return func(ctx Context, item Item) tea.Cmd {
		return func() tea.Msg {
			spec, ok := section.View.EditDialog(item.ID)
			if !ok {
				if item.ID == "" {
					return ActionResult{Err: fmt.Errorf("%s has no record selected", section.Label)}
				}
				return ActionResult{Err: fmt.Errorf("%s cannot edit %s", section.Label, item.ID)}
			}
			return DraftPrompt{Context: ctx, Kind: DraftEdit, Spec: spec}
		}
	}
}
