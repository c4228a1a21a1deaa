package roster

import (
	"sort"
)

// Roster is an ordered collection of campers plus a header registry.
//
// Header positions are assigned in registration order and are only
// contiguous and canonical after ReorderHeaders.
type Roster struct {
	campers []*Camper
	byKey   map[string]*Camper

	positions map[Header]int
	headers   []Header // registration order
	visible   map[Header]bool
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{
		byKey:     make(map[string]*Camper),
		positions: make(map[Header]int),
		visible:   make(map[Header]bool),
	}
}

// Len returns the number of campers.
func (r *Roster) Len() int {
	return len(r.campers)
}

// Campers returns the campers in insertion order.
func (r *Roster) Campers() []*Camper {
	return append([]*Camper(nil), r.campers...)
}

// Camper returns the camper with the given key.
func (r *Roster) Camper(key string) (*Camper, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

// AddCamper appends c unless a camper with the same key already exists.
// Fields of c are registered as headers.
func (r *Roster) AddCamper(c *Camper) bool {
	if _, ok := r.byKey[c.key]; ok {
		return false
	}

	r.appendCamper(c)

	return true
}

// appendCamper appends without the uniqueness check. The first camper with a
// key stays the one returned by Camper.
func (r *Roster) appendCamper(c *Camper) {
	r.campers = append(r.campers, c)
	if _, ok := r.byKey[c.key]; !ok {
		r.byKey[c.key] = c
	}

	names := make([]string, 0, len(c.fields))
	for name := range c.fields {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		r.AddHeader(Header(name))
	}
}

// AddHeader registers h at the next position. It is idempotent.
func (r *Roster) AddHeader(h Header) {
	if _, ok := r.positions[h]; ok {
		return
	}

	r.positions[h] = len(r.headers)
	r.headers = append(r.headers, h)
	r.visible[h] = h.DefaultVisible()
}

// AddHeaderWithDefault registers h and back-fills value onto every camper that
// has no data for it.
func (r *Roster) AddHeaderWithDefault(h Header, value string) {
	r.AddHeader(h)

	for _, c := range r.campers {
		c.SetIfAbsent(h, value)
	}
}

// HasHeader reports whether h is registered.
func (r *Roster) HasHeader(h Header) bool {
	_, ok := r.positions[h]
	return ok
}

// HeaderPosition returns the registered position of h.
func (r *Roster) HeaderPosition(h Header) (int, bool) {
	p, ok := r.positions[h]
	return p, ok
}

// MissingHeaders returns the subset of required that is not registered.
func (r *Roster) MissingHeaders(required []Header) []Header {
	var missing []Header

	for _, h := range required {
		if !r.HasHeader(h) {
			missing = append(missing, h)
		}
	}

	return missing
}

// Value returns the value of h for the camper with the given key.
func (r *Roster) Value(key string, h Header) string {
	c, ok := r.byKey[key]
	if !ok {
		return ""
	}

	return c.Value(h)
}

// SetValue sets h on the camper with the given key, registering h if needed.
// It returns false when no camper has that key.
func (r *Roster) SetValue(key string, h Header, value string) bool {
	c, ok := r.byKey[key]
	if !ok {
		return false
	}

	r.AddHeader(h)
	c.Set(h, value)

	return true
}

// AllHeaders returns every registered header in registration order.
func (r *Roster) AllHeaders() []Header {
	return append([]Header(nil), r.headers...)
}

// OrderedHeaders returns the registered headers in canonical order: known
// headers in registry order, then custom headers by position.
func (r *Roster) OrderedHeaders() []Header {
	out := append([]Header(nil), r.headers...)

	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := canonicalRank[out[i]]
		rj, jKnown := canonicalRank[out[j]]

		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return r.positions[out[i]] < r.positions[out[j]]
		}
	})

	return out
}

// OrderedVisibleHeaders returns OrderedHeaders filtered to visible headers.
func (r *Roster) OrderedVisibleHeaders() []Header {
	var out []Header

	for _, h := range r.OrderedHeaders() {
		if r.visible[h] {
			out = append(out, h)
		}
	}

	return out
}

// ReorderHeaders rewrites header positions to the canonical order.
func (r *Roster) ReorderHeaders() {
	ordered := r.OrderedHeaders()
	for i, h := range ordered {
		r.positions[h] = i
	}

	r.headers = ordered
}

// IsVisible reports whether a registered header is visible.
func (r *Roster) IsVisible(h Header) bool {
	return r.visible[h]
}

// SetVisible changes the visibility of a registered header.
func (r *Roster) SetVisible(h Header, visible bool) bool {
	if !r.HasHeader(h) {
		return false
	}

	r.visible[h] = visible

	return true
}

// ResetHeaderVisibility restores declared defaults; custom headers become visible.
func (r *Roster) ResetHeaderVisibility() {
	for _, h := range r.headers {
		r.visible[h] = h.DefaultVisible()
	}
}
