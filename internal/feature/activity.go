package feature

import (
	"fmt"
	"strconv"
	"strings"

	"roster-enricher/internal/common"
	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/format"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

var (
	valueColumns     = []string{"Camper", "Field", "Value", "Expected format"}
	duplicateColumns = []string{"Camper", "Round", "Kept", "Discarded"}
	unmatchedColumns = []string{"Camper", "Cabin", "Rounds"}
)

// identityFields are copied from activity rows on a first-seen basis.
var identityFields = []roster.Header{
	roster.FirstName, roster.LastName, roster.PreferredName, roster.Grade, roster.Cabin,
}

// ActivityFeature folds the per-round activity rows of each camper into the
// Round 1..3 columns plus a round count.
type ActivityFeature struct {
	base

	includeUnmatched bool
	formats          *format.Registry
}

var (
	_ ActivitySourced = (*ActivityFeature)(nil)
	_ LoadBearing     = (*ActivityFeature)(nil)
)

// NewActivityFeature returns the activity consolidation feature.
func NewActivityFeature(cfg *settings.Settings, formats *format.Registry) *ActivityFeature {
	return &ActivityFeature{
		base: base{
			id:       IDActivities,
			name:     "Activity consolidation",
			required: []roster.Header{roster.FirstName, roster.LastName, roster.Grade},
			added:    []roster.Header{roster.Cabin, roster.RoundCount, roster.Round1, roster.Round2, roster.Round3},
			formats:  []string{format.FieldRound},
		},
		includeUnmatched: cfg.IncludeUnmatchedActivities,
		formats:          formats,
	}
}

// LoadBearing is always true: no other feature's columns exist without it.
func (f *ActivityFeature) LoadBearing() bool { return true }

// Apply always fails; the activity roster is required.
func (f *ActivityFeature) Apply(*roster.EnrichedRoster, *diagnostic.Log) error {
	return ErrNeedsActivities
}

// consolidated is the merged view of one camper's activity rows.
type consolidated struct {
	camper  *roster.Camper
	claimed [roster.MaxRounds]bool
}

// ApplyActivities groups activity rows by camper key, fills round slots
// first-seen-wins, merges them onto the enriched roster and recounts rounds.
func (f *ActivityFeature) ApplyActivities(r *roster.EnrichedRoster, activities *roster.ActivityRoster, log *diagnostic.Log) error {
	if activities == nil {
		return ErrNeedsActivities
	}

	f.addHeaders(r)

	var order []string

	groups := make(map[string]*consolidated)

	for _, row := range activities.Campers() {
		round, ok := f.parseRound(row.Value(roster.Round))
		if !ok {
			log.AddWarning(diagnostic.KindBadDataFormat,
				fmt.Sprintf("%s has an activity row with an invalid round; the row is ignored", row.DisplayName()),
				valueColumns,
				[]string{row.DisplayName(), roster.Round.ActivityName(), row.Value(roster.Round),
					fmt.Sprintf("a round number from 1 to %d", roster.MaxRounds)},
			)

			continue
		}

		g, ok := groups[row.Key()]
		if !ok {
			g = &consolidated{camper: roster.NewCamperWithKey(row.Key(), nil)}
			groups[row.Key()] = g
			order = append(order, row.Key())
		}

		for _, h := range identityFields {
			if v := row.Value(h); !roster.IsEmpty(v) {
				g.camper.SetIfAbsent(h, v)
			}
		}

		slot := roster.RoundSlots[round-1]
		activity := strings.TrimSpace(row.Value(roster.Activity))

		if g.claimed[round-1] {
			log.AddWarning(diagnostic.KindDuplicateActivity,
				fmt.Sprintf("%s has more than one activity in round %d; keeping %q", g.camper.DisplayName(), round, g.camper.Value(slot)),
				duplicateColumns,
				[]string{g.camper.DisplayName(), strconv.Itoa(round), g.camper.Value(slot), activity},
			)

			continue
		}

		g.claimed[round-1] = true
		g.camper.Set(slot, activity)
	}

	for _, key := range order {
		g := groups[key]

		if c, ok := r.Camper(key); ok {
			merge(c, g)
			continue
		}

		count := roundCount(g.camper)
		if !f.includeUnmatched {
			continue
		}

		g.camper.Set(roster.RoundCount, strconv.Itoa(count))
		r.AddCamper(g.camper)

		log.AddWarning(diagnostic.KindUnmatchedActivityAdded,
			fmt.Sprintf("%s has %d activity round(s) but no enrollment record; added to the roster", g.camper.DisplayName(), count),
			unmatchedColumns,
			[]string{g.camper.DisplayName(), g.camper.Value(roster.Cabin), strconv.Itoa(count)},
		)
	}

	for _, c := range r.Campers() {
		c.Set(roster.RoundCount, strconv.Itoa(roundCount(c)))
	}

	r.EnableFeature(string(f.id))

	return nil
}

// parseRound accepts a round that satisfies the Round format and lies in 1..MaxRounds.
func (f *ActivityFeature) parseRound(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if !f.formats.Check(format.FieldRound, v) {
		return 0, false
	}

	return common.ParseIntInRange(v, 1, roster.MaxRounds)
}

// merge copies consolidated activity data onto an enrolled camper. Round
// slots and cabin come from the activity export; identity fields only fill gaps.
func merge(c *roster.Camper, g *consolidated) {
	for i, slot := range roster.RoundSlots {
		if g.claimed[i] {
			c.Set(slot, g.camper.Value(slot))
		}
	}

	if cabin := g.camper.Value(roster.Cabin); !roster.IsEmpty(cabin) {
		c.Set(roster.Cabin, cabin)
	}

	for _, h := range identityFields {
		if v := g.camper.Value(h); !roster.IsEmpty(v) {
			c.SetIfAbsent(h, v)
		}
	}
}

// roundCount counts non-empty values across the three fixed round slots.
func roundCount(c *roster.Camper) int {
	n := 0

	for _, slot := range roster.RoundSlots {
		if !c.IsEmpty(slot) {
			n++
		}
	}

	return n
}

// PostValidate checks that every camper has a round count between 0 and MaxRounds.
func (f *ActivityFeature) PostValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool {
	if !f.hasAddedHeaders(r, log) {
		return false
	}

	ok := true

	for _, c := range r.Campers() {
		v := c.Value(roster.RoundCount)
		if _, valid := common.ParseIntInRange(v, 0, roster.MaxRounds); valid {
			continue
		}

		ok = false

		log.AddError(diagnostic.KindPostValidationFailed,
			fmt.Sprintf("%s has an invalid round count", c.DisplayName()),
			valueColumns,
			[]string{c.DisplayName(), string(roster.RoundCount), v, fmt.Sprintf("0 to %d", roster.MaxRounds)},
		)
	}

	return ok
}
