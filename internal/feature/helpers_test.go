package feature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"roster-enricher/internal/roster"
)

var activityColumns = []string{
	"First Name", "Last Name", "Preferred Name", "Grade", "Bunk", "Activity Name", "Round Number",
}

// camper builds an enriched-roster camper from canonical field pairs.
func camper(first, last, grade string, kv ...string) *roster.Camper {
	fields := map[string]string{
		string(roster.FirstName): first,
		string(roster.LastName):  last,
		string(roster.Grade):     grade,
	}

	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}

	return roster.NewCamper(fields)
}

func enriched(t *testing.T, campers ...*roster.Camper) *roster.EnrichedRoster {
	t.Helper()

	r := roster.NewEnrichedRoster(nil)
	for _, c := range campers {
		require.True(t, r.AddCamper(c), "duplicate camper %s", c.Key())
	}

	return r
}

// activityRow is one row of the activity export, keyed by source column.
func activityRow(first, last, grade, cabin, activity, round string) map[string]string {
	return map[string]string{
		"First Name":     first,
		"Last Name":      last,
		"Preferred Name": "",
		"Grade":          grade,
		"Bunk":           cabin,
		"Activity Name":  activity,
		"Round Number":   round,
	}
}

func activities(rows ...map[string]string) *roster.ActivityRoster {
	return roster.NewActivityRoster("activities.csv", activityColumns, rows)
}
