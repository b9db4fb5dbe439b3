package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameRoundTripsWithString(t *testing.T) {
	tests := []struct {
		input string
		want  Name
	}{
		{"", None},
		{"none", None},
		{"glider", Glider},
		{"Glider-Gun", GliderGun},
		{"blinker", Blinker},
		{"pulsar", Pulsar},
		{"pentomino", Pentomino},
	}

	for _, tt := range tests {
		got, err := ParseName(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseNameRejectsUnknown(t *testing.T) {
	_, err := ParseName("spaceship")
	assert.Error(t, err)
}

func TestLookupKnownPatterns(t *testing.T) {
	seed, ok := Lookup(Blinker)
	require.True(t, ok)
	assert.Equal(t, 1, seed.Height)
	assert.Equal(t, 3, seed.Width)
	assert.ElementsMatch(t, []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, seed.On)
}

func TestLookupNoneIsNotFound(t *testing.T) {
	_, ok := Lookup(None)
	assert.False(t, ok)
}

func TestLookupGliderShape(t *testing.T) {
	seed, ok := Lookup(Glider)
	require.True(t, ok)
	assert.Equal(t, 3, seed.Height)
	assert.Equal(t, 3, seed.Width)
	assert.ElementsMatch(t, []Cell{
		{Row: 0, Col: 1},
		{Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, seed.On)
}
