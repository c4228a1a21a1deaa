package roster

import (
	"sort"
)

// EnrichedRoster is the merged table the features mutate. It records which
// features have been applied so consumers know which columns are meaningful.
type EnrichedRoster struct {
	*Roster

	features map[string]bool
}

// NewEnrichedRoster starts an enriched roster from an enrollment roster. Each
// camper is copied; source-only fields are left out.
func NewEnrichedRoster(enrollment *EnrollmentRoster) *EnrichedRoster {
	e := &EnrichedRoster{Roster: New(), features: make(map[string]bool)}
	if enrollment == nil {
		return e
	}

	for _, h := range enrollment.AllHeaders() {
		if !h.SourceOnly() {
			e.AddHeader(h)
		}
	}

	for _, c := range enrollment.campers {
		fields := c.Fields()
		for name := range fields {
			if Header(name).SourceOnly() {
				delete(fields, name)
			}
		}

		e.AddCamper(NewCamperWithKey(c.key, fields))
	}

	return e
}

// EnableFeature marks a feature as applied.
func (e *EnrichedRoster) EnableFeature(id string) {
	e.features[id] = true
}

// HasFeature reports whether a feature has been applied.
func (e *EnrichedRoster) HasFeature(id string) bool {
	return e.features[id]
}

// Features returns the applied feature ids, sorted.
func (e *EnrichedRoster) Features() []string {
	out := make([]string, 0, len(e.features))
	for id, on := range e.features {
		if on {
			out = append(out, id)
		}
	}

	sort.Strings(out)

	return out
}
