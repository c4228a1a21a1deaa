package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()

	tests := []struct {
		field string
		value string
		want  bool
	}{
		{FieldFirstName, "Mary Ann", true},
		{FieldFirstName, "Zoë", true},
		{FieldLastName, "O'Neil-Smith", true},
		{FieldLastName, "R2", false},
		{FieldGrade, "K", true},
		{FieldGrade, "pk", true},
		{FieldGrade, "12", true},
		{FieldGrade, "fifth", false},
		{FieldCabin, "Cabin #4", true},
		{FieldCabin, "Oak!", false},
		{FieldRound, "2", true},
		{FieldRound, "two", false},
		{FieldEnrolledSessions, "Session 1/Explorers", true},
		{FieldEnrolledSessions, "Session 2A/Trail Leaders and Session 3/Explorers", true},
		{FieldEnrolledSessions, "Explorers", false},
		{FieldSwimLevel, "Advanced Beginner", true},
		{FieldSwimLevel, "Level 3", false},
		{"Unregistered", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Check(tt.field, tt.value))
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("Code", `^[A-Z]{3}$`, "three capital letters"))

	rule, ok := r.Rule("Code")
	require.True(t, ok)
	assert.Equal(t, "three capital letters", rule.Description)
	assert.True(t, rule.Matches("ABC"))
	assert.False(t, rule.Matches("abc"))

	err := r.Register("Broken", `([`, "nothing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Broken"`)

	assert.Panics(t, func() { r.MustRegister("Broken", `([`, "nothing") })
}
