package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-enricher/internal/feature"
	"roster-enricher/internal/roster"
)

func newRoster(t *testing.T, features ...feature.ID) *roster.EnrichedRoster {
	t.Helper()

	r := roster.NewEnrichedRoster(nil)

	rows := []map[string]string{
		{"First Name": "Jane", "Last Name": "Doe", "Grade": "5", "Cabin": "Oak", "Rounds": "3",
			"Program": "Explorers", "Swim Conflicts": "N/A", "Preference Score": "100",
			"Preference Percentile": "100", "Medical Notes": "Peanut allergy"},
		{"First Name": "Samuel", "Preferred Name": "Sam", "Last Name": "Lee", "Grade": "6", "Cabin": "Pine",
			"Rounds": "2", "Program": "Leaders", "Swim Conflicts": "Kayaking", "Preference Score": "47",
			"Preference Percentile": "50", "Unrequested Activities": "Kayaking", "Medical Notes": "N/A"},
		{"First Name": "Ann", "Last Name": "Roe", "Grade": "5", "Cabin": "Pine", "Rounds": "0",
			"Program": "Explorers", "Medical Notes": ""},
	}

	for _, row := range rows {
		require.True(t, r.AddCamper(roster.NewCamper(row)))
	}

	for _, id := range features {
		r.EnableFeature(string(id))
	}

	return r
}

func keys(campers []*roster.Camper) []string {
	out := make([]string, len(campers))
	for i, c := range campers {
		out[i] = c.Key()
	}

	return out
}

func TestManager_EmptyPassesAll(t *testing.T) {
	r := newRoster(t)
	m := NewManager()

	assert.Equal(t, 0, m.Len())
	assert.Len(t, m.Apply(r), 3)
}

func TestManager_FeatureGating(t *testing.T) {
	r := newRoster(t, feature.IDActivities)
	m := NewManager()

	assert.True(t, m.Register(CabinFilter{Cabins: []string{"Pine"}}, r))
	assert.True(t, m.Register(IncompleteRounds{}, r))
	assert.False(t, m.Register(SwimConflictFilter{}, r))
	assert.False(t, m.Register(MissingMedical{}, r))
	assert.False(t, m.Register(IncompleteRounds{}, nil))

	assert.Equal(t, 2, m.Len())
}

func TestManager_And(t *testing.T) {
	r := newRoster(t, feature.DefaultOrder...)
	m := NewManager()

	require.True(t, m.Register(GradeFilter{Grades: []string{"5"}}, r))
	assert.Equal(t, []string{"jane_doe_5", "ann_roe_5"}, keys(m.Apply(r)))

	require.True(t, m.Register(CabinFilter{Cabins: []string{"pine"}}, r))
	assert.Equal(t, []string{"ann_roe_5"}, keys(m.Apply(r)))

	// Re-registering an id replaces the filter.
	require.True(t, m.Register(GradeFilter{Grades: []string{"6"}}, r))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"samuel_lee_6"}, keys(m.Apply(r)))

	m.Remove("cabin")
	m.Remove("cabin")
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "grade", m.Filters()[0].ID())
}

func TestCatalogue(t *testing.T) {
	r := newRoster(t, feature.DefaultOrder...)

	tests := []struct {
		filter Filter
		want   []string
	}{
		{NameSearch{Query: "sam"}, []string{"samuel_lee_6"}},
		{NameSearch{Query: "RO"}, []string{"ann_roe_5"}},
		{NameSearch{}, []string{"jane_doe_5", "samuel_lee_6", "ann_roe_5"}},
		{IncompleteRounds{}, []string{"samuel_lee_6", "ann_roe_5"}},
		{ProgramFilter{Programs: []string{"Explorers"}}, []string{"jane_doe_5", "ann_roe_5"}},
		{SwimConflictFilter{}, []string{"samuel_lee_6"}},
		{ScoreThreshold{Max: 50}, []string{"samuel_lee_6"}},
		{PercentileThreshold{Max: 100}, []string{"jane_doe_5", "samuel_lee_6"}},
		{HasUnrequested{}, []string{"samuel_lee_6"}},
		{MissingMedical{}, []string{"samuel_lee_6", "ann_roe_5"}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.Name(), func(t *testing.T) {
			m := NewManager()
			require.True(t, m.Register(tt.filter, r))
			assert.Equal(t, tt.want, keys(m.Apply(r)))
		})
	}
}
