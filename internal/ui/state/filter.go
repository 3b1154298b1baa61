package state

import (
	"slices"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/loandesk/internal/menu"
)

// SetFilter replaces the search text and places the caret at cursor. The
// row cursor jumps to the best match while a search is active and returns to
// where it was once the search is cleared.
func (l *Level) SetFilter(query string, cursor int) {
	active := strings.TrimSpace(query) != ""
	wasActive := strings.TrimSpace(l.Filter) != ""

	l.Filter = query
	l.FilterCursor = clampTo(cursor, len([]rune(query)))

	switch {
	case active && !wasActive:
		l.LastCursor = l.Cursor
		l.Cursor = 0
	case active:
		l.Cursor = 0
	}
	l.applyFilter()

	switch {
	case active && l.Source == nil:
		if idx := BestMatchIndex(l.Items, query); idx >= 0 {
			l.Cursor = idx
		}
	case !active && wasActive:
		l.Cursor = 0
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	if l.Source != nil {
		l.Items = slices.Clone(l.Source(l.Filter, l.Category))
	} else {
		l.Items = FilterItems(l.Full, l.Filter)
	}
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clampTo(l.Cursor, n-1)
	if l.ViewportOffset >= n {
		l.ViewportOffset = 0
	}
}

func clampTo(pos, limit int) int {
	return min(max(pos, 0), limit)
}

// FilterCursorPos returns the caret position in runes, clamped to the text.
func (l *Level) FilterCursorPos() int {
	return clampTo(l.FilterCursor, len([]rune(l.Filter)))
}

// editFilter rewrites the search text around the caret. edit returns the new
// text and caret, or false when it had nothing to do.
func (l *Level) editFilter(edit func(text []rune, pos int) ([]rune, int, bool)) bool {
	text, pos, ok := edit([]rune(l.Filter), l.FilterCursorPos())
	if !ok {
		return false
	}
	l.SetFilter(string(text), pos)
	return true
}

// moveFilterCursor moves the caret to target, reporting whether it moved.
func (l *Level) moveFilterCursor(target int) bool {
	target = clampTo(target, len([]rune(l.Filter)))
	if target == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = target
	return true
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		if len(insert) == 0 {
			return nil, 0, false
		}
		return slices.Insert(runes, pos, insert...), pos + len(insert), true
	})
}

// DeleteFilterRuneBackward deletes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		if pos == 0 {
			return nil, 0, false
		}
		return slices.Delete(runes, pos-1, pos), pos - 1, true
	})
}

// DeleteFilterWordBackward deletes the word before the caret along with any
// spaces between it and the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		start := wordStart(runes, pos)
		if start == pos {
			return nil, 0, false
		}
		return slices.Delete(runes, start, pos), start, true
	})
}

func (l *Level) MoveFilterCursorStart() bool { return l.moveFilterCursor(0) }

func (l *Level) MoveFilterCursorEnd() bool { return l.moveFilterCursor(len([]rune(l.Filter))) }

func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() - 1)
}

func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(l.FilterCursorPos() + 1)
}

func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

// wordStart skips spaces then a word leftwards from pos.
func wordStart(runes []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	return pos
}

// wordEnd skips a word then spaces rightwards from pos.
func wordEnd(runes []rune, pos int) int {
	for pos < len(runes) && !unicode.IsSpace(runes[pos]) {
		pos++
	}
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	return pos
}

// FilterItems returns the items matching query. Fuzzy label matches win; when
// there are none, a case-insensitive substring of the label or id counts.
func FilterItems(items []menu.Item, query string) []menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return slices.Clone(items)
	}
	matched := make(map[int]bool)
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, itemLabels(items)) {
		matched[rank.OriginalIndex] = true
	}
	if len(matched) == 0 {
		lower := strings.ToLower(trimmed)
		for i, item := range items {
			if containsFold(item.Label, lower) || containsFold(item.ID, lower) {
				matched[i] = true
			}
		}
	}
	filtered := make([]menu.Item, 0, len(matched))
	for i, item := range items {
		if matched[i] {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func itemLabels(items []menu.Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}

func containsFold(s, lower string) bool {
	return strings.Contains(strings.ToLower(s), lower)
}

func hasPrefixFold(s, lower string) bool {
	return strings.HasPrefix(strings.ToLower(s), lower)
}

// matchTiers are tried in order by BestMatchIndex; the first item satisfying
// an earlier tier wins.
var matchTiers = []func(item menu.Item, trimmed, lower string) bool{
	func(item menu.Item, trimmed, _ string) bool {
		return strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed)
	},
	func(item menu.Item, _, lower string) bool { return hasPrefixFold(item.Label, lower) },
	func(item menu.Item, _, lower string) bool { return hasPrefixFold(item.ID, lower) },
	func(item menu.Item, _, lower string) bool { return containsFold(item.ID, lower) },
	func(item menu.Item, _, lower string) bool { return containsFold(item.Label, lower) },
}

// BestMatchIndex returns the index of the item that best matches query, 0
// when nothing matches, or -1 for an empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for _, tier := range matchTiers {
		if idx := slices.IndexFunc(items, func(item menu.Item) bool { return tier(item, trimmed, lower) }); idx >= 0 {
			return idx
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, itemLabels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := slices.MinFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}
