package menu

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/loandesk/internal/logging/events"
)

var clipboardWriteFn = clipboard.WriteAll

// CopyIDsCommand writes ids, one per line, to the system clipboard.
func CopyIDsCommand(ctx Context, ids []string) tea.Cmd {
	return func() tea.Msg {
		if len(ids) == 0 {
			return ActionResult{Err: fmt.Errorf("nothing to copy")}
		}
		if err := clipboardWriteFn(strings.Join(ids, "\n")); err != nil {
			return ActionResult{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		events.Clipboard.Copy(ctx.Section, len(ids))
		if len(ids) == 1 {
			return ActionResult{Info: fmt.Sprintf("Copied %s", ids[0])}
		}
		return ActionResult{Info: fmt.Sprintf("Copied %d ids", len(ids))}
	}
}

// CopyAction copies the item's id. Marked rows arrive joined by newlines.
func CopyAction(ctx Context, item Item) tea.Cmd {
	if item.ID == "" {
		return CopyIDsCommand(ctx, nil)
	}
	return CopyIDsCommand(ctx, strings.Split(item.ID, "\n"))
}
