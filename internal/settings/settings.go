package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"roster-enricher/internal/match"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Settings is the resolved configuration handed to the features.
type Settings struct {
	// IncludeUnmatchedActivities adds a camper for activity rows that have no
	// enrollment record. When false those rows are dropped.
	IncludeUnmatchedActivities bool `yaml:"include_unmatched_activities"`
	// StrictSwimDefinitions records activities missing from SwimRequirements.
	StrictSwimDefinitions bool `yaml:"strict_swim_definitions"`
	// RejectUnknownSwimActivities treats unrecorded activities as conflicts.
	RejectUnknownSwimActivities bool `yaml:"reject_unknown_swim_activities"`
	// WarnMissingMedical logs a warning for campers without medical notes.
	WarnMissingMedical bool `yaml:"warn_missing_medical"`
	// EmptyPlaceholder is written by exports in place of empty values,
	// including roster.EmptyPlaceholder markers set by features. It does not
	// change the marker stored in the roster.
	EmptyPlaceholder string `yaml:"empty_placeholder"`
	// CurrentSession pins the session used for program extraction; 0 infers it.
	CurrentSession int `yaml:"current_session"`

	ExemptActivities []string       `yaml:"exempt_activities"`
	SwimLevels       map[string]int `yaml:"swim_levels"`
	SwimRequirements map[string]int `yaml:"swim_requirements"`
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Settings {
	s, err := decode(defaultsYAML, nil)
	if err != nil {
		panic(fmt.Sprintf("settings: embedded defaults are invalid: %v", err))
	}

	return s
}

// Validate checks that ranks are non-negative and the placeholder is set.
func (s *Settings) Validate() error {
	var errs []error

	if s.EmptyPlaceholder == "" {
		errs = append(errs, errors.New("empty_placeholder must not be empty"))
	}

	if s.CurrentSession < 0 {
		errs = append(errs, fmt.Errorf("current_session must not be negative, got %d", s.CurrentSession))
	}

	for _, name := range sortedKeys(s.SwimLevels) {
		if s.SwimLevels[name] < 0 {
			errs = append(errs, fmt.Errorf("swim level %q has negative rank %d", name, s.SwimLevels[name]))
		}
	}

	for _, name := range sortedKeys(s.SwimRequirements) {
		if s.SwimRequirements[name] < 0 {
			errs = append(errs, fmt.Errorf("swim requirement %q has negative rank %d", name, s.SwimRequirements[name]))
		}
	}

	return errors.Join(errs...)
}

// IsExempt reports whether activity is excluded from preference scoring.
func (s *Settings) IsExempt(activity string) bool {
	for _, a := range s.ExemptActivities {
		if match.EqualNames(a, activity) {
			return true
		}
	}

	return false
}

// SwimLevelRank returns the rank of a qualification level name.
func (s *Settings) SwimLevelRank(level string) (int, bool) {
	return lookup(s.SwimLevels, level)
}

// SwimRequirement returns the minimum level rank an activity requires.
func (s *Settings) SwimRequirement(activity string) (int, bool) {
	return lookup(s.SwimRequirements, activity)
}

// SwimActivities returns the activities with a recorded requirement, sorted.
func (s *Settings) SwimActivities() []string {
	return sortedKeys(s.SwimRequirements)
}

func lookup(m map[string]int, name string) (int, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}

	norm := match.NormalizeName(name)
	if norm == "" {
		return 0, false
	}

	for k, v := range m {
		if match.NormalizeName(k) == norm {
			return v, true
		}
	}

	return 0, false
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
