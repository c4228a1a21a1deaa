package filter

import (
	"roster-enricher/internal/feature"
	"roster-enricher/internal/roster"
)

// Filter is a predicate over campers.
type Filter interface {
	ID() string
	Name() string
	Apply(c *roster.Camper) bool
	// Feature is the feature the filter depends on, or "" when it only reads
	// source columns.
	Feature() feature.ID
}

// Manager holds filters keyed by id. A camper passes when every filter
// accepts it. It is not safe for concurrent use.
type Manager struct {
	order   []string
	filters map[string]Filter
}

// NewManager returns an empty manager; it passes every camper.
func NewManager() *Manager {
	return &Manager{filters: make(map[string]Filter)}
}

// Register adds f unless its feature is not enabled on r. A filter with an
// id already registered replaces it. It reports whether f was registered.
func (m *Manager) Register(f Filter, r *roster.EnrichedRoster) bool {
	if id := f.Feature(); id != "" && (r == nil || !r.HasFeature(string(id))) {
		return false
	}

	if _, ok := m.filters[f.ID()]; !ok {
		m.order = append(m.order, f.ID())
	}

	m.filters[f.ID()] = f

	return true
}

// Remove unregisters the filter with the given id.
func (m *Manager) Remove(id string) {
	if _, ok := m.filters[id]; !ok {
		return
	}

	delete(m.filters, id)

	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Filters returns the registered filters in registration order.
func (m *Manager) Filters() []Filter {
	out := make([]Filter, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.filters[id])
	}

	return out
}

// Len returns the number of registered filters.
func (m *Manager) Len() int {
	return len(m.order)
}

// Passes reports whether c is accepted by every filter.
func (m *Manager) Passes(c *roster.Camper) bool {
	for _, id := range m.order {
		if !m.filters[id].Apply(c) {
			return false
		}
	}

	return true
}

// Apply returns the campers of r that pass, in roster order.
func (m *Manager) Apply(r *roster.EnrichedRoster) []*roster.Camper {
	var out []*roster.Camper

	for _, c := range r.Campers() {
		if m.Passes(c) {
			out = append(out, c)
		}
	}

	return out
}
