// Package format maps field names to the patterns their values must match.
//
// The same registry is used for every source table, so a field is checked
// identically whether it came from the enrollment or the activity export.
package format

import (
	"fmt"
	"regexp"
)

// Rule is a compiled format check.
type Rule struct {
	Field       string
	Pattern     *regexp.Regexp
	Description string
}

// Matches reports whether value satisfies the rule.
func (r Rule) Matches(value string) bool {
	return r.Pattern.MatchString(value)
}

// Registry holds one rule per field.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register compiles pattern and stores it for field, replacing any previous rule.
func (r *Registry) Register(field, pattern, description string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compiling format for %q: %w", field, err)
	}

	r.rules[field] = Rule{Field: field, Pattern: re, Description: description}

	return nil
}

// MustRegister is like Register but panics on an invalid pattern.
func (r *Registry) MustRegister(field, pattern, description string) {
	if err := r.Register(field, pattern, description); err != nil {
		panic(err)
	}
}

// Rule returns the rule for field.
func (r *Registry) Rule(field string) (Rule, bool) {
	rule, ok := r.rules[field]
	return rule, ok
}

// Check reports whether value is valid for field. Fields without a rule are
// always valid.
func (r *Registry) Check(field, value string) bool {
	rule, ok := r.rules[field]
	if !ok {
		return true
	}

	return rule.Matches(value)
}

// Default field names; they match the canonical roster column names.
const (
	FieldFirstName        = "First Name"
	FieldLastName         = "Last Name"
	FieldPreferredName    = "Preferred Name"
	FieldGrade            = "Grade"
	FieldCabin            = "Cabin"
	FieldRound            = "Round"
	FieldEnrolledSessions = "Enrolled Sessions"
	FieldSwimLevel        = "Swim Level"
)

// SessionEntry matches one "Session <N>[suffix]/<Program>" entry.
const SessionEntry = `Session \d+[A-Za-z]?/[^/]+?`

// Default returns the registry used by the importers.
func Default() *Registry {
	r := NewRegistry()

	name := `^[\p{L}\p{M}][\p{L}\p{M}'’. \-]*$`
	r.MustRegister(FieldFirstName, name, "letters, spaces, apostrophes, periods or hyphens")
	r.MustRegister(FieldLastName, name, "letters, spaces, apostrophes, periods or hyphens")
	r.MustRegister(FieldPreferredName, name, "letters, spaces, apostrophes, periods or hyphens")
	r.MustRegister(FieldGrade, `^(?i:K|PK|\d{1,2})$`, "a grade number (K, PK or 1-12)")
	r.MustRegister(FieldCabin, `^[\p{L}\p{N}][\p{L}\p{N} '\-#.]*$`, "a cabin name")
	r.MustRegister(FieldRound, `^\d+$`, "a whole round number")
	r.MustRegister(FieldEnrolledSessions,
		`^`+SessionEntry+`( and `+SessionEntry+`)*$`,
		`"Session <N>/<Program>" entries joined by " and "`)
	r.MustRegister(FieldSwimLevel, `^[\p{L}][\p{L} \-]*$`, "a swim level name")

	return r
}
