package state

import (
	"slices"

	"github.com/atomicstack/loandesk/internal/listing"
	"github.com/atomicstack/loandesk/internal/menu"
)

// Kind distinguishes the screens a level can render.
type Kind int

const (
	KindSidebar Kind = iota
	KindList
	KindDetail
)

// QueryFunc returns the items matching a search string and category.
type QueryFunc func(search, category string) []menu.Item

// Level encapsulates one screen of the navigation stack: its items, cursor,
// filter and viewport.
type Level struct {
	ID             string
	Title          string
	Kind           Kind
	Section        string
	Record         string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	Markable       bool
	Marked         map[string]struct{}
	LastCursor     int
	ViewportOffset int

	// Source, when set, replaces the fuzzy label filter with the section's
	// own substring search.
	Source     QueryFunc
	Categories []string
	Category   string
}

// NewLevel constructs a Level over items with the cursor on the first item.
func NewLevel(id, title string, kind Kind, items []menu.Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Kind:       kind,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// NewListLevel builds a section list whose filtering is delegated to source.
func NewListLevel(section, title string, source QueryFunc, categories []string) *Level {
	l := &Level{
		ID:         section,
		Title:      title,
		Kind:       KindList,
		Section:    section,
		LastCursor: -1,
		Markable:   true,
		Source:     source,
		Categories: append([]string(nil), categories...),
	}
	if len(l.Categories) > 0 {
		l.Category = listing.All
	}
	l.UpdateItems(source("", listing.All))
	return l
}

// Query returns the level's current search and category.
func (l *Level) Query() listing.Query {
	return listing.Query{Search: l.Filter, Category: l.Category}
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the level items while preserving selections if possible.
func (l *Level) UpdateItems(items []menu.Item) {
	prevOffset := l.ViewportOffset
	l.Full = slices.Clone(items)
	l.pruneMarks()
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// SetCategory restricts the level to category and moves the cursor to the
// first match.
func (l *Level) SetCategory(category string) {
	l.Category = category
	l.Cursor = 0
	l.ViewportOffset = 0
	l.applyFilter()
}

// CycleCategory advances to the next category option. It reports false when
// the level has no category filter.
func (l *Level) CycleCategory() (string, bool) {
	if len(l.Categories) == 0 {
		return "", false
	}
	next := listing.NextCategory(l.Categories, l.Category)
	l.SetCategory(next)
	return next, true
}
