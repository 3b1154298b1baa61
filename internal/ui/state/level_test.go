package state

import (
	"strings"
	"testing"

	"github.com/atomicstack/loandesk/internal/listing"
	"github.com/atomicstack/loandesk/internal/menu"
)

type loanRow struct {
	id     string
	name   string
	status string
}

var loanRows = []loanRow{
	{"L001", "John Smith", "Active"},
	{"L002", "Sarah Johnson", "Active"},
	{"L003", "Michael Brown", "Overdue"},
	{"L004", "Emily Davis", "Active"},
}

var loanSpec = listing.Spec[loanRow]{
	SearchFields: []func(loanRow) string{
		func(r loanRow) string { return r.name },
		func(r loanRow) string { return r.id },
	},
	Category: func(r loanRow) string { return r.status },
}

func loanSource(search, category string) []menu.Item {
	var items []menu.Item
	for _, r := range listing.Filter(loanRows, loanSpec, listing.Query{Search: search, Category: category}) {
		items = append(items, menu.Item{ID: r.id, Label: r.name})
	}
	return items
}

func itemIDs(items []menu.Item) string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return strings.Join(ids, ",")
}

func TestListLevelUsesSource(t *testing.T) {
	level := NewListLevel("loans", "Loans", loanSource, listing.Categories(loanRows, loanSpec))
	if level.Category != listing.All {
		t.Fatalf("expected category %q, got %q", listing.All, level.Category)
	}
	if got := itemIDs(level.Items); got != "L001,L002,L003,L004" {
		t.Fatalf("unexpected items %s", got)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected cursor on first item, got %d", level.Cursor)
	}

	level.Cursor = 3
	level.InsertFilterText("JOHN")
	if got := itemIDs(level.Items); got != "L001,L002" {
		t.Fatalf("substring search should match names, got %s", got)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected cursor reset while filtering, got %d", level.Cursor)
	}
	level.SetFilter("", 0)
	if level.Cursor != 3 {
		t.Fatalf("expected cursor restored to 3, got %d", level.Cursor)
	}
	if q := level.Query(); q.Search != "" || q.Category != listing.All {
		t.Fatalf("unexpected query %+v", q)
	}
}

func TestListLevelSearchIsNotFuzzy(t *testing.T) {
	level := NewListLevel("loans", "Loans", loanSource, nil)
	level.SetFilter("jsmth", 5)
	if len(level.Items) != 0 {
		t.Fatalf("expected no fuzzy matches, got %s", itemIDs(level.Items))
	}
}

func TestCycleCategory(t *testing.T) {
	level := NewListLevel("loans", "Loans", loanSource, listing.Categories(loanRows, loanSpec))
	next, ok := level.CycleCategory()
	if !ok || next != "active" {
		t.Fatalf("expected active, got %q", next)
	}
	if got := itemIDs(level.Items); got != "L001,L002,L004" {
		t.Fatalf("unexpected active items %s", got)
	}
	level.SetFilter("emily", 5)
	if got := itemIDs(level.Items); got != "L004" {
		t.Fatalf("search and category should combine, got %s", got)
	}
	next, _ = level.CycleCategory()
	if next != "overdue" || len(level.Items) != 0 {
		t.Fatalf("expected no overdue emily, got %q %s", next, itemIDs(level.Items))
	}
	next, _ = level.CycleCategory()
	if next != listing.All || itemIDs(level.Items) != "L004" {
		t.Fatalf("expected wrap to all, got %q %s", next, itemIDs(level.Items))
	}

	plain := NewListLevel("branches", "Branches", loanSource, nil)
	if _, ok := plain.CycleCategory(); ok {
		t.Fatalf("level without categories should not cycle")
	}
}

func TestMarksSurviveFilter(t *testing.T) {
	level := NewListLevel("loans", "Loans", loanSource, nil)
	level.ToggleMark()
	level.Cursor = 2
	level.ToggleMark()
	level.SetFilter("michael", 7)
	if got := strings.Join(level.MarkedIDs(), ","); got != "L003" {
		t.Fatalf("expected visible mark L003, got %s", got)
	}
	level.SetFilter("", 0)
	if got := strings.Join(level.MarkedIDs(), ","); got != "L001,L003" {
		t.Fatalf("expected both marks, got %s", got)
	}
	if item, ok := level.Current(); !ok || item.ID != "L003" {
		t.Fatalf("unexpected current item %+v", item)
	}
}
