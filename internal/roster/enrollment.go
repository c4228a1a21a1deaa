package roster

import (
	"fmt"

	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/format"
)

// EnrollmentRequired lists the headers every enrollment export must carry.
var EnrollmentRequired = []Header{FirstName, LastName, PreferredName, Grade, EnrolledSessions}

var enrollmentSchema = schema{
	required: EnrollmentRequired,
	checked:  []Header{FirstName, LastName, PreferredName, Grade, EnrolledSessions, SwimLevel},
	column:   Header.EnrollmentName,
}

// EnrollmentRoster holds one row per camper from the enrollment export.
type EnrollmentRoster struct {
	*Roster

	// Source names the export the rows came from.
	Source string
	// Formats is the format registry used by Validate; nil means format.Default().
	Formats *format.Registry

	duplicates []*Camper
}

// NewEnrollmentRoster builds an enrollment roster from parsed rows. Columns
// are translated to canonical headers; a second row for an existing camper
// key is kept aside and reported by Validate.
func NewEnrollmentRoster(source string, columns []string, rows []map[string]string) *EnrollmentRoster {
	e := &EnrollmentRoster{Roster: New(), Source: source}

	for _, col := range columns {
		e.AddHeader(FromEnrollmentColumn(col))
	}

	for _, row := range rows {
		c := NewCamper(translate(row, FromEnrollmentColumn))
		if !e.AddCamper(c) {
			e.duplicates = append(e.duplicates, c)
		}
	}

	return e
}

// Validate checks required headers, then field formats and duplicate rows.
func (e *EnrollmentRoster) Validate(log *diagnostic.Log) error {
	if err := validate(e.Roster, e.Source, enrollmentSchema, e.Formats, log); err != nil {
		return err
	}

	for _, dup := range e.duplicates {
		log.AddWarning(diagnostic.KindDuplicateCamper,
			fmt.Sprintf("%s appears more than once in %s; the first row is kept", dup.DisplayName(), e.Source),
			camperColumns,
			[]string{dup.DisplayName(), dup.Key()},
		)
	}

	return nil
}

func translate(row map[string]string, column func(string) Header) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[string(column(k))] = v
	}

	return out
}
