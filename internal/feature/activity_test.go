package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-enricher/internal/diagnostic"
	"roster-enricher/internal/format"
	"roster-enricher/internal/roster"
	"roster-enricher/internal/settings"
)

func newActivityFeature(includeUnmatched bool) *ActivityFeature {
	cfg := settings.Default()
	cfg.IncludeUnmatchedActivities = includeUnmatched

	return NewActivityFeature(cfg, format.Default())
}

func TestActivityFeature_ConsolidatesRounds(t *testing.T) {
	r := enriched(t, camper("Jane", "Doe", "5"))
	acts := activities(
		activityRow("Jane", "Doe", "5", "Oak", "Archery", "2"),
		activityRow("Jane", "Doe", "5", "Oak", "Canoeing", "1"),
		activityRow("Jane", "Doe", "5", "Oak", "Drama", "3"),
	)

	log := diagnostic.NewLog()
	f := newActivityFeature(true)

	require.True(t, f.PreValidate(r, log))
	require.NoError(t, f.ApplyActivities(r, acts, log))
	assert.True(t, f.PostValidate(r, log))

	c, ok := r.Camper("jane_doe_5")
	require.True(t, ok)
	assert.Equal(t, "Canoeing", c.Value(roster.Round1))
	assert.Equal(t, "Archery", c.Value(roster.Round2))
	assert.Equal(t, "Drama", c.Value(roster.Round3))
	assert.Equal(t, "3", c.Value(roster.RoundCount))
	assert.Equal(t, "Oak", c.Value(roster.Cabin))
	assert.True(t, r.HasFeature(string(IDActivities)))
	assert.False(t, log.HasWarnings())
	assert.False(t, log.HasErrors())
}

func TestActivityFeature_InvalidRoundSkipped(t *testing.T) {
	r := enriched(t, camper("Jane", "Doe", "5"))
	acts := activities(
		activityRow("Jane", "Doe", "5", "Oak", "Archery", "1"),
		activityRow("Jane", "Doe", "5", "Oak", "Sailing", "4"),
		activityRow("Jane", "Doe", "5", "Oak", "Drama", "0"),
		activityRow("Jane", "Doe", "5", "Oak", "Tennis", "two"),
	)

	log := diagnostic.NewLog()
	require.NoError(t, newActivityFeature(true).ApplyActivities(r, acts, log))

	assert.Len(t, log.Warnings(diagnostic.KindBadDataFormat), 3)
	assert.False(t, log.HasErrors())

	c, _ := r.Camper("jane_doe_5")
	assert.Equal(t, "Archery", c.Value(roster.Round1))
	assert.Empty(t, c.Value(roster.Round2))
	assert.Empty(t, c.Value(roster.Round3))
	assert.Equal(t, "1", c.Value(roster.RoundCount))
}

func TestActivityFeature_DuplicateRound(t *testing.T) {
	r := enriched(t, camper("Jane", "Doe", "5"))
	acts := activities(
		activityRow("Jane", "Doe", "5", "Oak", "Canoeing", "1"),
		activityRow("Jane", "Doe", "5", "Oak", "Archery", "1"),
	)

	log := diagnostic.NewLog()
	require.NoError(t, newActivityFeature(true).ApplyActivities(r, acts, log))

	c, _ := r.Camper("jane_doe_5")
	assert.Equal(t, "Canoeing", c.Value(roster.Round1))
	assert.Equal(t, "1", c.Value(roster.RoundCount))

	dups := log.Warnings(diagnostic.KindDuplicateActivity)
	require.Len(t, dups, 1)
	assert.Equal(t, [][]string{{"Jane Doe", "1", "Canoeing", "Archery"}}, dups[0].Rows)
}

func TestActivityFeature_Orphans(t *testing.T) {
	rows := []map[string]string{
		activityRow("Jane", "Doe", "5", "Oak", "Canoeing", "1"),
		activityRow("Sam", "Lee", "6", "Pine", "Archery", "2"),
	}

	t.Run("included", func(t *testing.T) {
		r := enriched(t, camper("Jane", "Doe", "5"))
		log := diagnostic.NewLog()

		require.NoError(t, newActivityFeature(true).ApplyActivities(r, activities(rows...), log))

		require.Equal(t, 2, r.Len())

		orphan, ok := r.Camper("sam_lee_6")
		require.True(t, ok)
		assert.Equal(t, "Archery", orphan.Value(roster.Round2))
		assert.Equal(t, "Pine", orphan.Value(roster.Cabin))
		assert.Equal(t, "1", orphan.Value(roster.RoundCount))

		added := log.Warnings(diagnostic.KindUnmatchedActivityAdded)
		require.Len(t, added, 1)
		assert.Equal(t, [][]string{{"Sam Lee", "Pine", "1"}}, added[0].Rows)
	})

	t.Run("dropped", func(t *testing.T) {
		r := enriched(t, camper("Jane", "Doe", "5"))
		log := diagnostic.NewLog()

		require.NoError(t, newActivityFeature(false).ApplyActivities(r, activities(rows...), log))

		assert.Equal(t, 1, r.Len())
		_, ok := r.Camper("sam_lee_6")
		assert.False(t, ok)
		assert.False(t, log.HasWarnings())
	})
}

func TestActivityFeature_MergeKeepsEnrollmentIdentity(t *testing.T) {
	r := enriched(t,
		camper("Jane", "Doe", "5", string(roster.PreferredName), "JD"),
		camper("Ann", "Roe", "4"),
	)

	row := activityRow("Jane", "Doe", "5", "Oak", "Canoeing", "1")
	row["Preferred Name"] = "Janie"

	log := diagnostic.NewLog()
	require.NoError(t, newActivityFeature(true).ApplyActivities(r, activities(row), log))

	jane, _ := r.Camper("jane_doe_5")
	assert.Equal(t, "JD", jane.Value(roster.PreferredName))
	assert.Equal(t, "Oak", jane.Value(roster.Cabin))

	ann, _ := r.Camper("ann_roe_4")
	assert.Equal(t, "0", ann.Value(roster.RoundCount))
	assert.True(t, r.HasHeader(roster.Round3))
}

func TestActivityFeature_Apply(t *testing.T) {
	f := newActivityFeature(true)

	assert.True(t, IsLoadBearing(f))
	assert.ErrorIs(t, f.Apply(enriched(t), diagnostic.NewLog()), ErrNeedsActivities)
	assert.ErrorIs(t, f.ApplyActivities(enriched(t), nil, diagnostic.NewLog()), ErrNeedsActivities)
}

func TestActivityFeature_PreValidate(t *testing.T) {
	r := roster.NewEnrichedRoster(nil)
	r.AddHeader(roster.FirstName)
	r.AddHeader(roster.LastName)

	log := diagnostic.NewLog()
	assert.False(t, newActivityFeature(true).PreValidate(r, log))

	missing := log.Warnings(diagnostic.KindMissingFeatureHeader)
	require.Len(t, missing, 1)
	assert.Equal(t, [][]string{{"Activity consolidation", "Grade"}}, missing[0].Rows)
}

func TestActivityFeature_PostValidate(t *testing.T) {
	r := enriched(t, camper("Jane", "Doe", "5"))
	f := newActivityFeature(true)
	log := diagnostic.NewLog()

	require.NoError(t, f.ApplyActivities(r, activities(), log))
	require.True(t, f.PostValidate(r, log))

	r.SetValue("jane_doe_5", roster.RoundCount, "7")
	assert.False(t, f.PostValidate(r, log))
	assert.Len(t, log.Errors(diagnostic.KindPostValidationFailed), 1)
}
