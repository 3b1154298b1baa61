package listing

import (
	"github.com/atomicstack/loandesk/internal/domain"
	"github.com/atomicstack/loandesk/internal/format/table"
)

// Column renders one table column of a record.
type Column[T any] struct {
	Title string
	Align table.Alignment
	Cell  func(T) string
}

// Attr is one labelled line of a record's detail view.
type Attr[T any] struct {
	Label string
	Value func(T) string
}

// Row is a rendered, column-aligned record.
type Row struct {
	ID    string
	Label string
	Tone  domain.Tone
}

// Field is a rendered label/value pair.
type Field struct {
	Label string
	Value string
}

// Presenter is the type-erased face of a View used by the shell.
type Presenter interface {
	Len() int
	Stats() []Stat
	Categories() []string
	Header() string
	Rows(q Query) []Row
	Detail(id string) ([]Field, bool)
	AddDialog() (DialogSpec, bool)
	EditDialog(id string) (DialogSpec, bool)
}

// View binds a record list to its search, summary and presentation rules.
type View[T any] struct {
	Records   []T
	ID        func(T) string
	Spec      Spec[T]
	Summaries []Summary[T]
	Columns   []Column[T]
	Details   []Attr[T]
	Tone      func(T) domain.Tone

	// Add is the create dialog. A nil Add means the section has none.
	Add *DialogSpec
	// Edit is the edit dialog, prefilled from the record by Prefill.
	Edit    *DialogSpec
	Prefill func(T) map[string]string
}

var _ Presenter = (*View[domain.Loan])(nil)

func (v *View[T]) Len() int { return len(v.Records) }

func (v *View[T]) Stats() []Stat {
	return Summarize(v.Records, v.Summaries)
}

func (v *View[T]) Categories() []string {
	return Categories(v.Records, v.Spec)
}

// Filter exposes the typed filter for callers holding a concrete view.
func (v *View[T]) Filter(q Query) []T {
	return Filter(v.Records, v.Spec, q)
}

// Header returns the column titles aligned to the full list.
func (v *View[T]) Header() string {
	header, _ := v.layout()
	return header
}

// Rows renders the records matching q. Column widths are computed over the
// full list so they do not shift while the user types.
func (v *View[T]) Rows(q Query) []Row {
	_, lines := v.layout()
	rows := make([]Row, 0, len(v.Records))
	for i, record := range v.Records {
		if !Matches(record, v.Spec, q) {
			continue
		}
		row := Row{ID: v.ID(record), Label: lines[i]}
		if v.Tone != nil {
			row.Tone = v.Tone(record)
		}
		rows = append(rows, row)
	}
	return rows
}

func (v *View[T]) layout() (string, []string) {
	titles := make([]string, len(v.Columns))
	aligns := make([]table.Alignment, len(v.Columns))
	for i, col := range v.Columns {
		titles[i] = col.Title
		aligns[i] = col.Align
	}
	cells := make([][]string, len(v.Records))
	for r, record := range v.Records {
		row := make([]string, len(v.Columns))
		for c, col := range v.Columns {
			row[c] = col.Cell(record)
		}
		cells[r] = row
	}
	return table.WithHeader(titles, cells, aligns)
}

func (v *View[T]) find(id string) (T, bool) {
	for _, record := range v.Records {
		if v.ID(record) == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// Detail lists every detail attribute of the record with the given id.
func (v *View[T]) Detail(id string) ([]Field, bool) {
	record, ok := v.find(id)
	if !ok {
		return nil, false
	}
	fields := make([]Field, 0, len(v.Details))
	for _, attr := range v.Details {
		fields = append(fields, Field{Label: attr.Label, Value: attr.Value(record)})
	}
	return fields, true
}

func (v *View[T]) AddDialog() (DialogSpec, bool) {
	if v.Add == nil {
		return DialogSpec{}, false
	}
	return v.Add.clone(nil), true
}

func (v *View[T]) EditDialog(id string) (DialogSpec, bool) {
	if v.Edit == nil {
		return DialogSpec{}, false
	}
	record, ok := v.find(id)
	if !ok {
		return DialogSpec{}, false
	}
	var values map[string]string
	if v.Prefill != nil {
		values = v.Prefill(record)
	}
	spec := v.Edit.clone(values)
	spec.Target = id
	return spec, true
}
