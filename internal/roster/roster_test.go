package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_AddCamper(t *testing.T) {
	r := New()

	require.True(t, r.AddCamper(NewCamper(map[string]string{"First Name": "Jane", "Last Name": "Doe", "Grade": "5"})))
	assert.False(t, r.AddCamper(NewCamper(map[string]string{"First Name": "jane", "Last Name": "doe", "Grade": "5"})))
	require.True(t, r.AddCamper(NewCamper(map[string]string{"First Name": "Sam", "Last Name": "Lee", "Grade": "6"})))

	assert.Equal(t, 2, r.Len())

	c, ok := r.Camper("jane_doe_5")
	require.True(t, ok)
	assert.Equal(t, "Jane", c.Value(FirstName))

	assert.Equal(t, []Header{FirstName, Grade, LastName}, r.AllHeaders(), "headers of the first camper in sorted order")
}

func TestRoster_AddHeaderIdempotent(t *testing.T) {
	r := New()
	r.AddHeader("Notes")
	r.AddHeader(Program)
	r.AddHeader("Notes")

	assert.Equal(t, []Header{"Notes", Program}, r.AllHeaders())

	pos, ok := r.HeaderPosition(Program)
	require.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestRoster_AddHeaderWithDefault(t *testing.T) {
	r := New()
	r.AddCamper(NewCamper(map[string]string{"First Name": "Jane", "Last Name": "Doe", "Grade": "5", "Cabin": "Oak"}))
	r.AddCamper(NewCamper(map[string]string{"First Name": "Sam", "Last Name": "Lee", "Grade": "6"}))

	r.AddHeaderWithDefault(Cabin, "Unassigned")

	assert.Equal(t, "Oak", r.Value("jane_doe_5", Cabin))
	assert.Equal(t, "Unassigned", r.Value("sam_lee_6", Cabin))
}

func TestRoster_SetValue(t *testing.T) {
	r := New()
	r.AddCamper(NewCamper(map[string]string{"First Name": "Jane", "Last Name": "Doe", "Grade": "5"}))

	assert.True(t, r.SetValue("jane_doe_5", SwimConflicts, "Sailing"))
	assert.True(t, r.HasHeader(SwimConflicts))
	assert.Equal(t, "Sailing", r.Value("jane_doe_5", SwimConflicts))

	assert.False(t, r.SetValue("nobody", Program, "x"))
	assert.False(t, r.HasHeader(Program))
	assert.Empty(t, r.Value("nobody", Program))
}

func TestRoster_OrderedHeaders(t *testing.T) {
	r := New()
	for _, h := range []Header{"Parent Email", MedicalNotes, Round1, "Allergies", FirstName, RoundCount, Grade} {
		r.AddHeader(h)
	}

	want := []Header{FirstName, Grade, RoundCount, Round1, MedicalNotes, "Parent Email", "Allergies"}
	if diff := cmp.Diff(want, r.OrderedHeaders()); diff != "" {
		t.Errorf("OrderedHeaders mismatch (-want +got):\n%s", diff)
	}

	wantVisible := []Header{FirstName, Grade, Round1, "Parent Email", "Allergies"}
	if diff := cmp.Diff(wantVisible, r.OrderedVisibleHeaders()); diff != "" {
		t.Errorf("OrderedVisibleHeaders mismatch (-want +got):\n%s", diff)
	}

	r.ReorderHeaders()
	assert.Equal(t, want, r.AllHeaders())

	for i, h := range want {
		pos, _ := r.HeaderPosition(h)
		assert.Equal(t, i, pos, h)
	}
}

func TestRoster_Visibility(t *testing.T) {
	r := New()
	r.AddHeader(MedicalNotes)
	r.AddHeader(FirstName)
	r.AddHeader("Notes")

	assert.False(t, r.IsVisible(MedicalNotes))
	assert.True(t, r.IsVisible(FirstName))
	assert.True(t, r.IsVisible("Notes"))

	assert.True(t, r.SetVisible(MedicalNotes, true))
	assert.True(t, r.SetVisible(FirstName, false))
	assert.False(t, r.SetVisible(Program, true))

	assert.Equal(t, []Header{MedicalNotes, "Notes"}, r.OrderedVisibleHeaders())

	r.ResetHeaderVisibility()
	assert.Equal(t, []Header{FirstName, "Notes"}, r.OrderedVisibleHeaders())
}

func TestHeaderRegistry(t *testing.T) {
	assert.Equal(t, Cabin, FromActivityColumn("Bunk"))
	assert.Equal(t, Activity, FromActivityColumn("Activity Name"))
	assert.Equal(t, EnrolledSessions, FromEnrollmentColumn("Enrolled Sessions/Programs"))
	assert.Equal(t, Header("Shirt Size"), FromEnrollmentColumn("Shirt Size"))

	assert.Equal(t, "Round Number", Round.ActivityName())
	assert.Equal(t, "Grade", Grade.EnrollmentName())

	assert.True(t, Activity.SourceOnly())
	assert.False(t, Cabin.SourceOnly())
	assert.True(t, Preferences.IsKnown())
	assert.False(t, Header("Shirt Size").IsKnown())

	known := KnownHeaders()
	assert.Equal(t, FirstName, known[0])
	assert.Equal(t, Round, known[len(known)-1])
}
