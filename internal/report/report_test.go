package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-enricher/internal/diagnostic"
)

func sampleLog() *diagnostic.Log {
	log := diagnostic.NewLog()

	cols := []string{"Camper", "Field", "Value", "Expected format"}
	log.AddWarning(diagnostic.KindBadDataFormat, "R2 D2 has an invalid First Name", cols,
		[]string{"R2 D2", "First Name", "R2", "letters"})
	log.AddWarning(diagnostic.KindBadDataFormat, "Jane Doe has an invalid Grade", cols,
		[]string{"Jane Doe", "Grade", "fifth", "a grade number"})
	log.AddWarning(diagnostic.KindUnknownSwimLevel, "Ann Roe has an unknown swim level", nil)

	return log
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleLog(), Options{}))

	out := buf.String()
	assert.Contains(t, out, "Warnings")
	assert.NotContains(t, out, "Errors")
	assert.Contains(t, out, "Bad data format (2)")
	assert.Contains(t, out, "Unknown swim levels (1)")
	assert.Contains(t, out, "Expected format")
	assert.Contains(t, out, "fifth")
	assert.True(t, strings.HasSuffix(out, "0 errors, 3 warnings\n"), out)
}

func TestRender_Errors(t *testing.T) {
	log := sampleLog()
	log.AddError(diagnostic.KindMissingHeaders, "enrollment.csv is missing required columns",
		[]string{"File", "Missing column"},
		[]string{"enrollment.csv", "Grade"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, log, Options{}))

	out := buf.String()
	assert.Contains(t, out, "Errors")
	assert.Contains(t, out, "Missing required columns (1)")
	assert.Less(t, strings.Index(out, "Errors"), strings.Index(out, "Warnings"))
	assert.Contains(t, out, "1 error, 3 warnings")

	buf.Reset()
	require.NoError(t, Render(&buf, log, Options{WarningsOnly: true}))
	assert.NotContains(t, buf.String(), "Missing required columns")
}

func TestRender_MaxRows(t *testing.T) {
	log := diagnostic.NewLog()
	for _, name := range []string{"a", "b", "c", "d"} {
		log.AddWarning(diagnostic.KindCamperMissingField, name+" has no medical notes",
			[]string{"Camper", "Field"}, []string{name, "Medical Notes"})
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, log, Options{MaxRows: 2}))

	out := buf.String()
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "b has no medical notes")
	assert.NotContains(t, out, "c has no medical notes")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "0 errors, 0 warnings", Summary(diagnostic.NewLog()))
	assert.Equal(t, "0 errors, 3 warnings", Summary(sampleLog()))
}
