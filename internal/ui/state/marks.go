package state

// Marks are the rows tagged with tab on a list, kept by record id so they
// survive filtering.

// IsMarked reports whether the row with id is marked.
func (l *Level) IsMarked(id string) bool {
	_, ok := l.Marked[id]
	return ok
}

// ToggleMark marks the row under the cursor, or unmarks it. Levels that are
// not Markable ignore it.
func (l *Level) ToggleMark() bool {
	item, ok := l.Current()
	if !l.Markable || !ok {
		return false
	}
	if l.Marked == nil {
		l.Marked = make(map[string]struct{})
	}
	if l.IsMarked(item.ID) {
		delete(l.Marked, item.ID)
	} else {
		l.Marked[item.ID] = struct{}{}
	}
	return true
}

// MarkedIDs returns the marked ids that are currently visible, in display
// order.
func (l *Level) MarkedIDs() []string {
	if len(l.Marked) == 0 {
		return nil
	}
	var ids []string
	for _, item := range l.Items {
		if l.IsMarked(item.ID) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// ClearMarks unmarks every row.
func (l *Level) ClearMarks() {
	clear(l.Marked)
}

// pruneMarks drops marks whose records left the dataset.
func (l *Level) pruneMarks() {
	if len(l.Marked) == 0 {
		return
	}
	present := make(map[string]bool, len(l.Full))
	for _, item := range l.Full {
		present[item.ID] = true
	}
	for id := range l.Marked {
		if !present[id] {
			delete(l.Marked, id)
		}
	}
}
