package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/loandesk/internal/listing"
)

// DefaultSection is shown when no section, or an unknown one, is requested.
const DefaultSection = "borrowers"

// Section is one navigable dashboard view.
type Section struct {
	ID    string
	Label string
	Icon  string
	View  listing.Presenter
}

// Subtitle is the line shown under the section title.
func (s *Section) Subtitle() string {
	return fmt.Sprintf("Manage your %s", strings.ToLower(s.Label))
}

// Registry exposes lookup utilities for section definitions. Order is the
// sidebar order.
type Registry struct {
	sections []*Section
	byID     map[string]*Section
	fallback string
}

// NewRegistry builds a registry from sections. The first section is the
// fallback unless one with DefaultSection's id is present.
func NewRegistry(sections ...*Section) *Registry {
	r := &Registry{byID: make(map[string]*Section, len(sections))}
	for _, s := range sections {
		if s == nil {
			continue
		}
		if _, dup := r.byID[s.ID]; dup {
			continue
		}
		r.sections = append(r.sections, s)
		r.byID[s.ID] = s
	}
	if _, ok := r.byID[DefaultSection]; ok {
		r.fallback = DefaultSection
	} else if len(r.sections) > 0 {
		r.fallback = r.sections[0].ID
	}
	return r
}

// Sections returns the sections in sidebar order.
func (r *Registry) Sections() []*Section {
	return append([]*Section(nil), r.sections...)
}

// Find locates a section by id.
func (r *Registry) Find(id string) (*Section, bool) {
	s, ok := r.byID[normalizeID(id)]
	return s, ok
}

// Default returns the fallback section.
func (r *Registry) Default() *Section {
	return r.byID[r.fallback]
}

// Resolve returns the section for id, falling back to the default section
// when id is not registered.
func (r *Registry) Resolve(id string) *Section {
	if s, ok := r.Find(id); ok {
		return s
	}
	return r.Default()
}

// Items returns the sidebar entries.
func (r *Registry) Items() []Item {
	items := make([]Item, 0, len(r.sections))
	for _, s := range r.sections {
		items = append(items, Item{ID: s.ID, Label: s.Icon + " " + s.Label})
	}
	return items
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
