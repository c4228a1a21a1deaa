package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, id := range DefaultOrder {
		f, err := New(id, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, id, f.ID())
		assert.NotEmpty(t, f.Name())
		assert.NotEmpty(t, f.AddedHeaders())
	}

	_, err := New("bogus", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownFeature)
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs([]string{"activities, Swim", "medical", ""})
	require.NoError(t, err)
	assert.Equal(t, []ID{IDActivities, IDSwim, IDMedical}, ids)

	_, err = ParseIDs([]string{"swim,pool"})
	assert.ErrorIs(t, err, ErrUnknownFeature)
}

func TestIsLoadBearing(t *testing.T) {
	for _, id := range DefaultOrder {
		f, err := New(id, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, id == IDActivities, IsLoadBearing(f), id)
	}
}
