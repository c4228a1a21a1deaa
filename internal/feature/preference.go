package feature

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"roster-enricher/internal/common"
	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/match"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

// MaxRankedPreferences is how many listed preferences earn points.
const MaxRankedPreferences = 10

// PreferenceFeature scores how well each camper's assignments match their
// ranked activity preferences.
type PreferenceFeature struct {
	base

	exempt func(string) bool
}

// NewPreferenceFeature returns the preference scoring feature. Activities in
// cfg.ExemptActivities never score and are never unrequested.
func NewPreferenceFeature(cfg *settings.Settings) *PreferenceFeature {
	return &PreferenceFeature{
		base: base{
			id:   IDPreferences,
			name: "Preference scoring",
			required: []roster.Header{
				roster.Preferences, roster.RoundCount, roster.Round1, roster.Round2, roster.Round3,
			},
			added: []roster.Header{
				roster.PreferenceScore, roster.PreferencePercentile, roster.UnrequestedActivities,
			},
		},
		exempt: cfg.IsExempt,
	}
}

type scored struct {
	camper *roster.Camper
	raw    float64
}

func (f *PreferenceFeature) Apply(r *roster.EnrichedRoster, _ *diagnostic.Log) error {
	f.addHeaders(r)

	var results []scored

	for _, c := range r.Campers() {
		prefs := ParsePreferences(c.Value(roster.Preferences))
		if len(prefs) == 0 {
			continue
		}

		raw, unrequested := Score(prefs, assignments(c), f.exempt)
		results = append(results, scored{camper: c, raw: raw})

		c.Set(roster.PreferenceScore, strconv.Itoa(int(math.Round(raw*100))))
		c.Set(roster.UnrequestedActivities, strings.Join(unrequested, ", "))
	}

	raws := make([]float64, len(results))
	for i, s := range results {
		raws[i] = s.raw
	}

	sort.Float64s(raws)

	for _, s := range results {
		s.camper.Set(roster.PreferencePercentile, strconv.Itoa(Percentile(raws, s.raw)))
	}

	r.EnableFeature(string(f.id))

	return nil
}

// PostValidate checks that every score and percentile is empty or 0..100.
func (f *PreferenceFeature) PostValidate(r *roster.EnrichedRoster, log *diagnostic.Log) bool {
	if !f.hasAddedHeaders(r, log) {
		return false
	}

	ok := true

	for _, c := range r.Campers() {
		for _, h := range []roster.Header{roster.PreferenceScore, roster.PreferencePercentile} {
			v := c.Value(h)
			if v == "" {
				continue
			}

			if _, valid := common.ParseIntInRange(v, 0, 100); valid {
				continue
			}

			ok = false

			log.AddError(diagnostic.KindPostValidationFailed,
				fmt.Sprintf("%s has an invalid %s", c.DisplayName(), h),
				valueColumns,
				[]string{c.DisplayName(), string(h), v, "0 to 100"},
			)
		}
	}

	return ok
}

// assignments returns at most RoundCount non-empty round slots in round order.
func assignments(c *roster.Camper) []string {
	out := c.Assignments()

	if n, ok := common.ParseIntInRange(c.Value(roster.RoundCount), 0, roster.MaxRounds); ok && n < len(out) {
		out = out[:n]
	}

	return out
}

// ParsePreferences splits a "A, B, C and D" preference list. Only the last
// comma-separated token is split on " and ".
func ParsePreferences(text string) []string {
	if roster.IsEmpty(text) {
		return nil
	}

	parts := strings.Split(text, ",")
	last := parts[len(parts)-1]

	if strings.Contains(last, " and ") {
		parts = append(parts[:len(parts)-1], strings.Split(last, " and ")...)
	}

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// MaxPoints is the best achievable total for k scored rounds: 10 + 9 + ...
func MaxPoints(k int) int {
	return 11*k - k*(k+1)/2
}

// Points is what one assignment earns against the preference list.
func Points(prefs []string, activity string) int {
	i := preferenceIndex(prefs, activity)
	if i < 0 || i >= MaxRankedPreferences {
		return 0
	}

	return MaxRankedPreferences - i
}

func preferenceIndex(prefs []string, activity string) int {
	for i, p := range prefs {
		if match.EqualNames(p, activity) {
			return i
		}
	}

	return -1
}

// Score returns the fraction of achievable points earned, and the
// non-exempt assignments missing from prefs. No scored rounds is a perfect 1.
func Score(prefs, assigned []string, exempt func(string) bool) (float64, []string) {
	var (
		points, k   int
		unrequested []string
	)

	for _, a := range assigned {
		if roster.IsEmpty(a) || (exempt != nil && exempt(a)) {
			continue
		}

		k++
		points += Points(prefs, a)

		if preferenceIndex(prefs, a) < 0 {
			unrequested = append(unrequested, a)
		}
	}

	if k == 0 {
		return 1, unrequested
	}

	return float64(points) / float64(MaxPoints(k)), unrequested
}

// Percentile returns round(100 * |{s in sorted : s <= raw}| / len(sorted)).
func Percentile(sorted []float64, raw float64) int {
	if len(sorted) == 0 {
		return 0
	}

	n := sort.Search(len(sorted), func(i int) bool { return sorted[i] > raw })

	return int(math.Round(100 * float64(n) / float64(len(sorted))))
}
