package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateAdd(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coordinate
	}{
		{North, Coordinate{0, 1, 0}},
		{West, Coordinate{-1, 0, 0}},
		{South, Coordinate{0, -1, 0}},
		{East, Coordinate{1, 0, 0}},
		{Up, Coordinate{0, 0, 1}},
		{Down, Coordinate{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			assert.Equal(t, tt.want, Origin.Add(tt.dir))
		})
	}
}

func TestOppositeDirectionsCancel(t *testing.T) {
	start := Coordinate{3, -2, 7}
	assert.Equal(t, start, start.Add(North).Add(South))
	assert.Equal(t, start, start.Add(East).Add(West))
	assert.Equal(t, start, start.Add(Up).Add(Down))
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(string(d))
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	for _, bad := range []string{"", "n", "North", "sideways"} {
		_, ok := ParseDirection(bad)
		assert.False(t, ok, "%q should not parse", bad)
	}
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "(1, -2, 3)", Coordinate{1, -2, 3}.String())
}
