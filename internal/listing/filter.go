// Package listing implements the filterable list and summary pattern shared by
// every dashboard section.
//
// Records are never mutated: Filter returns a new slice in source order and
// Summarize always reduces over the full, unfiltered list.
package listing

import "strings"

// All disables the categorical filter.
const All = "all"

// Query is the transient search and category state of one section.
type Query struct {
	Search   string
	Category string
}

// Spec describes which record fields are searched and which field, if any,
// acts as the category.
type Spec[T any] struct {
	SearchFields []func(T) string
	Category     func(T) string
}

// CategoryKey normalises a category label the way the filter options are
// keyed: lower case with spaces replaced by dashes ("Real Estate" becomes
// "real-estate").
func CategoryKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
}

// Active reports whether q restricts by category.
func (q Query) Active() bool {
	return q.Category != "" && q.Category != All
}

// Matches reports whether record passes both the search and category filters.
func Matches[T any](record T, spec Spec[T], q Query) bool {
	if q.Active() && spec.Category != nil {
		if CategoryKey(spec.Category(record)) != CategoryKey(q.Category) {
			return false
		}
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	for _, field := range spec.SearchFields {
		if strings.Contains(strings.ToLower(field(record)), needle) {
			return true
		}
	}
	return false
}

// Filter returns the records matching q, preserving source order. An empty
// query returns a copy of the full list.
func Filter[T any](records []T, spec Spec[T], q Query) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if Matches(record, spec, q) {
			out = append(out, record)
		}
	}
	return out
}

// Categories lists the distinct category keys of records in first-seen order,
// preceded by All. It returns nil when spec has no category.
func Categories[T any](records []T, spec Spec[T]) []string {
	if spec.Category == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(records))
	out := []string{All}
	for _, record := range records {
		key := CategoryKey(spec.Category(record))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// NextCategory returns the category after current in options, wrapping
// around. Unknown values restart at the first option.
func NextCategory(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		current = All
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
