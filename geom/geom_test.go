package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wang/geom"
)

func TestDirection_Bits(t *testing.T) {
	var mask int
	for i, d := range geom.All {
		assert.True(t, d.Valid(), "%s must be a single bit", d)
		assert.Equal(t, 1<<i, int(d))
		mask |= int(d)
	}
	assert.Equal(t, 255, mask, "the eight directions cover the whole byte")
	assert.False(t, geom.Direction(0).Valid())
	assert.False(t, geom.Direction(3).Valid())
	assert.Equal(t, "Invalid", geom.Direction(3).String())
}

func TestDirection_Offset(t *testing.T) {
	cases := []struct {
		d      geom.Direction
		dx, dy int
	}{
		{geom.North, 0, -1},
		{geom.NorthEast, 1, -1},
		{geom.East, 1, 0},
		{geom.SouthEast, 1, 1},
		{geom.South, 0, 1},
		{geom.SouthWest, -1, 1},
		{geom.West, -1, 0},
		{geom.NorthWest, -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			dx, dy := tc.d.Offset()
			assert.Equal(t, tc.dx, dx)
			assert.Equal(t, tc.dy, dy)
		})
	}
	dx, dy := geom.Direction(6).Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestDirection_RotateAndOpposite(t *testing.T) {
	assert.Equal(t, geom.East, geom.North.Rotate(1))
	assert.Equal(t, geom.South, geom.North.Rotate(2))
	assert.Equal(t, geom.West, geom.North.Rotate(-1))
	assert.Equal(t, geom.NorthEast, geom.NorthWest.Rotate(1))
	assert.Equal(t, geom.North, geom.North.Rotate(4))

	for _, d := range geom.All {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
	assert.Equal(t, geom.SouthWest, geom.NorthEast.Opposite())
}

func TestCorner(t *testing.T) {
	c, ok := geom.Corner(geom.South, geom.West)
	assert.True(t, ok)
	assert.Equal(t, geom.SouthWest, c)

	c, ok = geom.Corner(geom.North, geom.East)
	assert.True(t, ok)
	assert.Equal(t, geom.NorthEast, c)

	_, ok = geom.Corner(geom.East, geom.North)
	assert.False(t, ok, "arguments are vertical then horizontal")
}

func TestCoordinateAndSize(t *testing.T) {
	c := geom.Coordinate{X: 2, Y: 3}
	assert.Equal(t, geom.Coordinate{X: 2, Y: 2}, c.Add(geom.North))
	assert.Equal(t, geom.Coordinate{X: 1, Y: 4}, c.Add(geom.SouthWest))
	assert.Equal(t, "(2,3)", c.String())

	s := geom.Size{Width: 3, Height: 3}
	assert.Equal(t, 9, s.Area())
	assert.True(t, s.Contains(c.Add(geom.NorthWest)))
	assert.False(t, s.Contains(c))
	assert.False(t, s.Contains(geom.Coordinate{X: -1, Y: 0}))
	assert.Equal(t, "Width: 3 Height: 3", s.String())
}
