package feature

import (
	"fmt"
	"sort"
	"strings"

	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/match"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

// maxSuggestions bounds the similar names offered for an unknown activity.
const maxSuggestions = 3

var (
	swimLevelColumns    = []string{"Camper", "Swim level"}
	swimActivityColumns = []string{"Activity", "Similar known activities"}
)

// SwimFeature flags assigned activities that need a higher swim level than
// the camper holds.
type SwimFeature struct {
	base

	cfg *settings.Settings
}

// NewSwimFeature returns the swim safety feature.
func NewSwimFeature(cfg *settings.Settings) *SwimFeature {
	return &SwimFeature{
		base: base{
			id:       IDSwim,
			name:     "Swim safety",
			required: []roster.Header{roster.SwimLevel, roster.Round1, roster.Round2, roster.Round3},
			added:    []roster.Header{roster.SwimConflicts},
		},
		cfg: cfg,
	}
}

func (f *SwimFeature) Apply(r *roster.EnrichedRoster, log *diagnostic.Log) error {
	f.addHeaders(r)

	unknown := make(map[string]bool)

	for _, c := range r.Campers() {
		level := strings.TrimSpace(c.Value(roster.SwimLevel))

		rank, ok := f.cfg.SwimLevelRank(level)
		if !ok || roster.IsEmpty(level) {
			log.AddWarning(diagnostic.KindUnknownSwimLevel,
				fmt.Sprintf("%s has an unknown swim level %q; swim check skipped", c.DisplayName(), level),
				swimLevelColumns,
				[]string{c.DisplayName(), level},
			)

			continue
		}

		conflicts := f.conflicts(rank, c.Assignments(), unknown)
		if len(conflicts) == 0 {
			c.Set(roster.SwimConflicts, roster.EmptyPlaceholder)
			continue
		}

		c.Set(roster.SwimConflicts, strings.Join(conflicts, ", "))
	}

	f.reportUnknown(unknown, log)

	r.EnableFeature(string(f.id))

	return nil
}

// conflicts lists the activities whose requirement exceeds rank. Activities
// without a requirement are added to unknown in strict mode and count as
// conflicts when unknown activities are rejected.
func (f *SwimFeature) conflicts(rank int, activities []string, unknown map[string]bool) []string {
	var out []string

	for _, a := range activities {
		need, ok := f.cfg.SwimRequirement(a)
		if !ok {
			if f.cfg.StrictSwimDefinitions {
				unknown[a] = true
			}

			if f.cfg.RejectUnknownSwimActivities {
				out = append(out, a)
			}

			continue
		}

		if need > rank {
			out = append(out, a)
		}
	}

	return out
}

func (f *SwimFeature) reportUnknown(unknown map[string]bool, log *diagnostic.Log) {
	if len(unknown) == 0 {
		return
	}

	names := make([]string, 0, len(unknown))
	for name := range unknown {
		names = append(names, name)
	}

	sort.Strings(names)

	known := f.cfg.SwimActivities()

	for _, name := range names {
		similar := match.Suggest(name, known, maxSuggestions, match.DefaultThreshold).Names()

		msg := fmt.Sprintf("%q has no swim requirement", name)
		if len(similar) > 0 {
			msg += fmt.Sprintf("; did you mean %s?", strings.Join(similar, ", "))
		}

		log.AddWarning(diagnostic.KindUnknownSwimActivity, msg,
			swimActivityColumns,
			[]string{name, strings.Join(similar, ", ")},
		)
	}
}

func (f *SwimFeature) PostValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool {
	return f.hasAddedHeaders(r, log)
}
