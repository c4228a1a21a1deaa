package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Archery", "archery"},
		{"  ARCHERY  ", "archery"},
		{"Water Polo", "water polo"},
		{"Water-Polo", "water polo"},
		{"water_polo", "water polo"},
		{"Water   Polo", "water polo"},
		{"Arts & Crafts", "arts crafts"},
		{"Swim (Free)", "swim free"},
		{"STRASSE", "strasse"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestEqualNames(t *testing.T) {
	assert.True(t, EqualNames("Beginner", "beginner"))
	assert.True(t, EqualNames("Non-Swimmer", "non swimmer"))
	assert.False(t, EqualNames("Beginner", "Advanced"))
}
