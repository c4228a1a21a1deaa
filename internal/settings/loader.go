package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const filePerm = 0o644

// file mirrors Settings with optional fields so an omitted key can fall back
// to its default.
type file struct {
	IncludeUnmatchedActivities  *bool          `yaml:"include_unmatched_activities"`
	StrictSwimDefinitions       *bool          `yaml:"strict_swim_definitions"`
	RejectUnknownSwimActivities *bool          `yaml:"reject_unknown_swim_activities"`
	WarnMissingMedical          *bool          `yaml:"warn_missing_medical"`
	EmptyPlaceholder            *string        `yaml:"empty_placeholder"`
	CurrentSession              *int           `yaml:"current_session"`
	ExemptActivities            []string       `yaml:"exempt_activities"`
	SwimLevels                  map[string]int `yaml:"swim_levels"`
	SwimRequirements            map[string]int `yaml:"swim_requirements"`
}

// LoadFile loads and parses a YAML settings file from the given path.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into Settings, filling omitted keys from the defaults.
func Parse(data []byte) (*Settings, error) {
	return decode(data, Default())
}

func decode(data []byte, defaults *Settings) (*Settings, error) {
	var f file

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	s := &Settings{}
	if defaults != nil {
		*s = *defaults
	}

	applyFile(s, &f)

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// applyFile overrides s with every key present in f. Lists and tables are
// replaced as a whole, not merged.
func applyFile(s *Settings, f *file) {
	if f.IncludeUnmatchedActivities != nil {
		s.IncludeUnmatchedActivities = *f.IncludeUnmatchedActivities
	}

	if f.StrictSwimDefinitions != nil {
		s.StrictSwimDefinitions = *f.StrictSwimDefinitions
	}

	if f.RejectUnknownSwimActivities != nil {
		s.RejectUnknownSwimActivities = *f.RejectUnknownSwimActivities
	}

	if f.WarnMissingMedical != nil {
		s.WarnMissingMedical = *f.WarnMissingMedical
	}

	if f.EmptyPlaceholder != nil {
		s.EmptyPlaceholder = *f.EmptyPlaceholder
	}

	if f.CurrentSession != nil {
		s.CurrentSession = *f.CurrentSession
	}

	if f.ExemptActivities != nil {
		s.ExemptActivities = append([]string(nil), f.ExemptActivities...)
	}

	if f.SwimLevels != nil {
		s.SwimLevels = copyTable(f.SwimLevels)
	}

	if f.SwimRequirements != nil {
		s.SwimRequirements = copyTable(f.SwimRequirements)
	}
}

func copyTable(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Marshal serializes Settings to YAML.
func Marshal(s *Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes Settings to the given path.
func WriteFile(s *Settings, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}
