package roster

import (
	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/format"
)

// ActivityRequired lists the headers every activity export must carry.
var ActivityRequired = []Header{Activity, Round, FirstName, LastName, PreferredName, Cabin, Grade}

var activitySchema = schema{
	required: ActivityRequired,
	checked:  []Header{FirstName, LastName, PreferredName, Grade, Cabin},
	column:   Header.ActivityName,
}

// ActivityRoster holds one row per camper per round. Keys repeat across rows;
// Camper returns the first row for a key and Campers returns every row.
type ActivityRoster struct {
	*Roster

	Source  string
	Formats *format.Registry
}

// NewActivityRoster builds an activity roster from parsed rows.
func NewActivityRoster(source string, columns []string, rows []map[string]string) *ActivityRoster {
	a := &ActivityRoster{Roster: New(), Source: source}

	for _, col := range columns {
		a.AddHeader(FromActivityColumn(col))
	}

	for _, row := range rows {
		a.appendCamper(NewCamper(translate(row, FromActivityColumn)))
	}

	return a
}

// Validate checks required headers, then field formats. Round numbers are
// range-checked by activity consolidation, not here.
func (a *ActivityRoster) Validate(log *diagnostic.Log) error {
	return validate(a.Roster, a.Source, activitySchema, a.Formats, log)
}
