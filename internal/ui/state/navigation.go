package state

import "github.com/atomicstack/loandesk/internal/menu"

// Navigation owns the active section identifier.
type Navigation struct {
	registry *menu.Registry
	active   string
}

// NewNavigation starts on initial, or on the registry default when initial
// is empty or unknown.
func NewNavigation(registry *menu.Registry, initial string) *Navigation {
	n := &Navigation{registry: registry}
	n.activate(initial)
	return n
}

// activate stores the registered identifier id resolves to, so Active never
// reports an id the registry does not know.
func (n *Navigation) activate(id string) *menu.Section {
	section := n.registry.Resolve(id)
	n.active = ""
	if section != nil {
		n.active = section.ID
	}
	return section
}

// Active returns the identifier of the section being shown.
func (n *Navigation) Active() string { return n.active }

// Select makes the section id resolves to active and returns it. Unknown
// identifiers activate the default section and report false.
func (n *Navigation) Select(id string) (*menu.Section, bool) {
	_, known := n.registry.Find(id)
	return n.activate(id), known
}

// Section returns the active section.
func (n *Navigation) Section() *menu.Section {
	return n.registry.Resolve(n.active)
}

// Registry returns the registry sections are resolved against.
func (n *Navigation) Registry() *menu.Registry { return n.registry }

// SetRegistry swaps in a rebuilt registry, keeping the active section when
// it is still registered.
func (n *Navigation) SetRegistry(registry *menu.Registry) {
	if registry == nil {
		return
	}
	n.registry = registry
	n.activate(n.active)
}
