// Package ui contains the Bubble Tea program that powers the loan dashboard.
// The Model type focuses on message orchestration, while dedicated helpers
// own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a create or edit dialog is open, key presses go to the draft
//     form. Everything else is routed through a typed handler registry so
//     each tea.Msg is handled by a focused function.
//   - Navigation helpers (navigation.go) manage the stack of levels: the
//     section sidebar at the root, a section's record list above it, and a
//     record's detail view on top. Filter/input helpers (input.go) keep text
//     entry isolated from the event loop.
//
// State ownership:
//   - Level state lives in internal/ui/state.Level, which tracks items,
//     search, category, selection, and viewport. List levels delegate their
//     filtering to the section's own search rules.
//   - The active section lives in state.Navigation and falls back to the
//     default section for unknown identifiers.
//   - The dataset lives in internal/state and is replaced by the dispatcher
//     when the watched data file changes.
//   - Actions (dialogs, clipboard copies) run through the internal/ui/command
//     bus so they execute asynchronously.
//
// Backend interactions:
//   - An optional backend.Watcher polls the data file; Update waits for its
//     events and hands them to applyBackendEvent, which rebuilds every
//     section and refreshes the levels on screen.
package ui
