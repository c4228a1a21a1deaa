package filter

import (
	"fmt"
	"strings"

	"roster-enricher/internal/common"
	"roster-enricher/internal/feature"
	"roster-enricher/internal/match"
	"roster-enricher/internal/roster"
)

// NameSearch matches campers whose first, preferred or last name contains
// the query, ignoring case.
type NameSearch struct {
	Query string
}

func (f NameSearch) ID() string          { return "name" }
func (f NameSearch) Name() string        { return fmt.Sprintf("Name contains %q", f.Query) }
func (f NameSearch) Feature() feature.ID { return "" }

func (f NameSearch) Apply(c *roster.Camper) bool {
	q := match.NormalizeName(f.Query)
	if q == "" {
		return true
	}

	for _, h := range []roster.Header{roster.FirstName, roster.PreferredName, roster.LastName} {
		if strings.Contains(match.NormalizeName(c.Value(h)), q) {
			return true
		}
	}

	return false
}

// GradeFilter keeps campers in one of the listed grades.
type GradeFilter struct {
	Grades []string
}

func (f GradeFilter) ID() string          { return "grade" }
func (f GradeFilter) Name() string        { return "Grade in " + strings.Join(f.Grades, ", ") }
func (f GradeFilter) Feature() feature.ID { return "" }

func (f GradeFilter) Apply(c *roster.Camper) bool {
	return oneOf(c.Value(roster.Grade), f.Grades)
}

// CabinFilter keeps campers in one of the listed cabins.
type CabinFilter struct {
	Cabins []string
}

func (f CabinFilter) ID() string          { return "cabin" }
func (f CabinFilter) Name() string        { return "Cabin in " + strings.Join(f.Cabins, ", ") }
func (f CabinFilter) Feature() feature.ID { return "" }

func (f CabinFilter) Apply(c *roster.Camper) bool {
	return oneOf(c.Value(roster.Cabin), f.Cabins)
}

// IncompleteRounds keeps campers with fewer than MaxRounds assignments.
type IncompleteRounds struct{}

func (IncompleteRounds) ID() string          { return "incomplete-rounds" }
func (IncompleteRounds) Name() string        { return "Missing activity rounds" }
func (IncompleteRounds) Feature() feature.ID { return feature.IDActivities }

func (IncompleteRounds) Apply(c *roster.Camper) bool {
	n, ok := common.ParseIntInRange(c.Value(roster.RoundCount), 0, roster.MaxRounds)
	return !ok || n < roster.MaxRounds
}

// ProgramFilter keeps campers enrolled in one of the listed programs.
type ProgramFilter struct {
	Programs []string
}

func (f ProgramFilter) ID() string          { return "program" }
func (f ProgramFilter) Name() string        { return "Program in " + strings.Join(f.Programs, ", ") }
func (f ProgramFilter) Feature() feature.ID { return feature.IDProgram }

func (f ProgramFilter) Apply(c *roster.Camper) bool {
	return oneOf(c.Value(roster.Program), f.Programs)
}

// SwimConflictFilter keeps campers with at least one swim conflict.
type SwimConflictFilter struct{}

func (SwimConflictFilter) ID() string          { return "swim-conflicts" }
func (SwimConflictFilter) Name() string        { return "Has swim conflicts" }
func (SwimConflictFilter) Feature() feature.ID { return feature.IDSwim }

func (SwimConflictFilter) Apply(c *roster.Camper) bool {
	return !c.IsEmpty(roster.SwimConflicts)
}

// ScoreThreshold keeps campers whose preference score is at most Max.
// Campers without a score are dropped.
type ScoreThreshold struct {
	Max int
}

func (f ScoreThreshold) ID() string          { return "score" }
func (f ScoreThreshold) Name() string        { return fmt.Sprintf("Preference score at most %d", f.Max) }
func (f ScoreThreshold) Feature() feature.ID { return feature.IDPreferences }

func (f ScoreThreshold) Apply(c *roster.Camper) bool {
	return atMost(c.Value(roster.PreferenceScore), f.Max)
}

// PercentileThreshold keeps campers whose preference percentile is at most Max.
type PercentileThreshold struct {
	Max int
}

func (f PercentileThreshold) ID() string { return "percentile" }
func (f PercentileThreshold) Name() string {
	return fmt.Sprintf("Preference percentile at most %d", f.Max)
}
func (f PercentileThreshold) Feature() feature.ID { return feature.IDPreferences }

func (f PercentileThreshold) Apply(c *roster.Camper) bool {
	return atMost(c.Value(roster.PreferencePercentile), f.Max)
}

// HasUnrequested keeps campers assigned to something they did not ask for.
type HasUnrequested struct{}

func (HasUnrequested) ID() string          { return "unrequested" }
func (HasUnrequested) Name() string        { return "Has unrequested activities" }
func (HasUnrequested) Feature() feature.ID { return feature.IDPreferences }

func (HasUnrequested) Apply(c *roster.Camper) bool {
	return !c.IsEmpty(roster.UnrequestedActivities)
}

// MissingMedical keeps campers without medical notes.
type MissingMedical struct{}

func (MissingMedical) ID() string          { return "missing-medical" }
func (MissingMedical) Name() string        { return "Missing medical notes" }
func (MissingMedical) Feature() feature.ID { return feature.IDMedical }

func (MissingMedical) Apply(c *roster.Camper) bool {
	return c.IsEmpty(roster.MedicalNotes)
}

func oneOf(v string, options []string) bool {
	if len(options) == 0 {
		return true
	}

	for _, o := range options {
		if match.EqualNames(v, o) {
			return true
		}
	}

	return false
}

func atMost(v string, limit int) bool {
	n, ok := common.ParseIntInRange(v, 0, 100)
	return ok && n <= limit
}
