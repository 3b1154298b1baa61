package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/loandesk/internal/menu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" || level.FilterCursor != 3 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}
	if level.Cursor != 0 || len(level.Items) != 1 || level.Items[0].ID != "two" {
		t.Fatalf("expected only 'two' under the cursor, got %d %#v", level.Cursor, level.Items)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestSetFilterClampsCaret(t *testing.T) {
	level := newTestLevel("one")
	level.SetFilter("on", 9)
	if level.FilterCursor != 2 {
		t.Fatalf("expected caret clamped to 2, got %d", level.FilterCursor)
	}
	level.SetFilter("on", -1)
	if level.FilterCursor != 0 {
		t.Fatalf("expected caret clamped to 0, got %d", level.FilterCursor)
	}
}

func TestFilterEdits(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		caret     int
		edit      func(*Level) bool
		wantOK    bool
		wantText  string
		wantCaret int
	}{
		{"insert at end", "ab", 2, func(l *Level) bool { return l.InsertFilterText("c") }, true, "abc", 3},
		{"insert in middle", "ab", 1, func(l *Level) bool { return l.InsertFilterText("z") }, true, "azb", 2},
		{"insert nothing", "ab", 1, func(l *Level) bool { return l.InsertFilterText("") }, false, "ab", 1},
		{"backspace", "azb", 2, (*Level).DeleteFilterRuneBackward, true, "ab", 1},
		{"backspace at start", "abc", 0, (*Level).DeleteFilterRuneBackward, false, "abc", 0},
		{"word backspace", "abc def", 7, (*Level).DeleteFilterWordBackward, true, "abc ", 4},
		{"word backspace over spaces", "abc  ", 5, (*Level).DeleteFilterWordBackward, true, "", 0},
		{"word backspace mid word", "abc def", 6, (*Level).DeleteFilterWordBackward, true, "abc f", 4},
		{"word backspace at start", "abc", 0, (*Level).DeleteFilterWordBackward, false, "abc", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level := newTestLevel("alpha")
			level.SetFilter(tc.text, tc.caret)
			if ok := tc.edit(level); ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if level.Filter != tc.wantText || level.FilterCursor != tc.wantCaret {
				t.Fatalf("expected %q/%d, got %q/%d", tc.wantText, tc.wantCaret, level.Filter, level.FilterCursor)
			}
		})
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	steps := []struct {
		name string
		move func(*Level) bool
		want int
	}{
		{"word back", (*Level).MoveFilterCursorWordBackward, 4},
		{"word forward", (*Level).MoveFilterCursorWordForward, 7},
		{"rune back", (*Level).MoveFilterCursorRuneBackward, 6},
		{"rune forward", (*Level).MoveFilterCursorRuneForward, 7},
		{"start", (*Level).MoveFilterCursorStart, 0},
		{"end", (*Level).MoveFilterCursorEnd, 7},
	}
	for _, step := range steps {
		if !step.move(level) {
			t.Fatalf("%s: expected the caret to move", step.name)
		}
		if level.FilterCursor != step.want {
			t.Fatalf("%s: expected caret at %d, got %d", step.name, step.want, level.FilterCursor)
		}
	}
	if level.MoveFilterCursorRuneForward() || level.MoveFilterCursorWordForward() || level.MoveFilterCursorEnd() {
		t.Fatal("expected no movement past the end")
	}
}

func TestFilterItems(t *testing.T) {
	items := []menu.Item{{ID: "1", Label: "Alpha"}, {ID: "2", Label: "Beta"}}
	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Label != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ta")
	if len(filtered) != 1 || filtered[0].Label != "Beta" {
		t.Fatalf("expected contains match for Beta, got %#v", filtered)
	}
	if got := FilterItems(items, "2"); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected id match, got %#v", got)
	}

	all := FilterItems(items, "  ")
	if len(all) != 2 || &all[0] == &items[0] {
		t.Fatal("expected a blank filter to copy every item")
	}
	filtered[0].Label = "changed"
	if items[1].Label != "Beta" {
		t.Fatal("expected original slice to remain unchanged")
	}
	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "one", Label: "First"},
		{ID: "two", Label: "Second"},
		{ID: "three", Label: "Third"},
	}
	cases := map[string]int{
		"Second": 1,
		"two":    1,
		"th":     2,
		"ird":    2,
		"zzz":    0,
		"":       0,
	}
	for query, want := range cases {
		if got := BestMatchIndex(items, query); got != want {
			t.Fatalf("query %q: expected %d, got %d", query, want, got)
		}
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	items := []menu.Item{{ID: "1", Label: "Alpha"}, {ID: "2", Label: "Beta"}}
	level := NewLevel("id", "title", KindSidebar, items)
	level.SetFilter("alp", 3)
	if level.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first item, got %d", level.Cursor)
	}
	if !reflect.DeepEqual(level.Items, []menu.Item{{ID: "1", Label: "Alpha"}}) {
		t.Fatalf("expected filtered items to contain Alpha, got %#v", level.Items)
	}
}
