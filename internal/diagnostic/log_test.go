package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Buckets(t *testing.T) {
	log := NewLog()

	assert.False(t, log.HasWarnings())
	assert.False(t, log.HasErrors())
	assert.NoError(t, log.Err())

	cols := []string{"Camper", "Field"}
	log.AddWarning(KindUnknownSwimLevel, "first", cols, []string{"Jane Doe", "Swim Level"})
	log.AddWarning(KindBadDataFormat, "second", cols)
	log.AddWarning(KindUnknownSwimLevel, "third", cols)

	require.True(t, log.HasWarnings())
	assert.False(t, log.HasErrors())
	assert.Equal(t, 3, log.WarningCount())

	buckets := log.WarningLog()
	require.Len(t, buckets, 2)
	assert.Equal(t, KindUnknownSwimLevel, buckets[0].Kind)
	assert.Equal(t, KindBadDataFormat, buckets[1].Kind)

	entries := buckets[0].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "third", entries[1].Message)
	assert.Equal(t, SeverityWarning, entries[0].Severity)
	assert.Equal(t, [][]string{{"Jane Doe", "Swim Level"}}, entries[0].Rows)

	assert.Len(t, log.Warnings(KindBadDataFormat), 1)
	assert.Empty(t, log.Errors(KindBadDataFormat))
}

func TestLog_Err(t *testing.T) {
	log := NewLog()
	log.AddError(KindMissingHeaders, "enrollment.csv is missing required columns", nil, []string{"enrollment.csv", "Grade"})
	log.LogError(Entry{Kind: KindFeatureAborted, Message: "Activity consolidation cannot run"})

	require.True(t, log.HasErrors())
	assert.Equal(t, 2, log.ErrorCount())
	assert.Equal(t, SeverityError, log.Errors(KindFeatureAborted)[0].Severity)

	err := log.Err()
	require.Error(t, err)
	assert.Equal(t,
		"[MissingHeaders] enrollment.csv is missing required columns: enrollment.csv | Grade; "+
			"[FeatureAborted] Activity consolidation cannot run",
		err.Error())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "BadDataFormat", KindBadDataFormat.String())
	assert.Equal(t, "ProgramParsingFailure", KindProgramParsingFailure.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "Duplicate campers", KindDuplicateCamper.Title())
	assert.Equal(t, "Kind(0)", Kind(0).Title())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
