package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 3))
	assert.True(t, IsInRange(1, 3, 3))
	assert.False(t, IsInRange(1, 0, 3))
	assert.False(t, IsInRange(1, 4, 3))
	assert.True(t, IsInRange(0.0, 0.5, 1.0))
}

func TestParseIntInRange(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"3", 3, true},
		{"03", 3, true},
		{"0", 0, false},
		{"4", 4, false},
		{"", 0, false},
		{"-1", 0, false},
		{"1.5", 0, false},
		{"two", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseIntInRange(tt.in, 1, 3)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
