package roster

import (
	"errors"
	"fmt"
	"strings"

	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/format"
)

// ErrMissingHeaders is wrapped by MissingHeadersError.
var ErrMissingHeaders = errors.New("missing required headers")

// MissingHeadersError reports the required source columns a file lacks.
type MissingHeadersError struct {
	// Source is the file or table name.
	Source string
	// Missing lists the absent columns as named in the source export.
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Source, ErrMissingHeaders, strings.Join(e.Missing, ", "))
}

func (e *MissingHeadersError) Unwrap() error {
	return ErrMissingHeaders
}

// Context columns shared by record-level warnings.
var (
	formatColumns = []string{"Camper", "Field", "Value", "Expected format"}
	camperColumns = []string{"Camper", "Field"}
)

// schema describes what a source table must contain and which fields are
// format-checked.
type schema struct {
	required []Header
	checked  []Header
	column   func(Header) string
}

// validate fails with a MissingHeadersError before looking at any row, then
// logs one BadDataFormat warning per camper per invalid field.
func validate(r *Roster, source string, s schema, formats *format.Registry, log *diagnostic.Log) error {
	if formats == nil {
		formats = format.Default()
	}

	if missing := r.MissingHeaders(s.required); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, h := range missing {
			names[i] = s.column(h)
		}

		return &MissingHeadersError{Source: source, Missing: names}
	}

	for _, c := range r.campers {
		for _, h := range s.checked {
			v, ok := c.Lookup(h)
			if !ok || IsEmpty(v) {
				continue
			}

			rule, ok := formats.Rule(string(h))
			if !ok || rule.Matches(v) {
				continue
			}

			log.AddWarning(diagnostic.KindBadDataFormat,
				fmt.Sprintf("%s has an invalid %s in %s", c.DisplayName(), s.column(h), source),
				formatColumns,
				[]string{c.DisplayName(), s.column(h), v, rule.Description},
			)
		}
	}

	return nil
}
