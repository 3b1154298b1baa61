package events

import "github.com/atomicstack/loandesk/internal/logging"

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) edit(op, levelID, filter string) {
	logging.Trace("filter.edit", map[string]interface{}{"op": op, "level": levelID, "filter": filter})
}

func (f FilterTracer) Append(levelID, filter string)        { f.edit("append", levelID, filter) }
func (f FilterTracer) Backspace(levelID, filter string)     { f.edit("backspace", levelID, filter) }
func (f FilterTracer) WordBackspace(levelID, filter string) { f.edit("word-backspace", levelID, filter) }
func (f FilterTracer) Cleared(levelID string)               { f.edit("clear", levelID, "") }

func (FilterTracer) Cursor(levelID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": levelID, "cursor": pos})
}

func (FilterTracer) CursorWord(levelID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": levelID, "cursor": pos, "word": true})
}

// Category records a change of the list's category filter.
func (FilterTracer) Category(levelID, category string) {
	logging.Trace("filter.category", map[string]interface{}{"level": levelID, "category": category})
}
