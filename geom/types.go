package geom

import "fmt"

// Coordinate is an integer cell position. X grows eastwards, Y southwards.
type Coordinate struct {
	X, Y int
}

// Add returns the coordinate one step away in direction d.
// An invalid direction returns c unchanged.
func (c Coordinate) Add(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Size is the extent of a grid. It is read-only after construction.
type Size struct {
	Width, Height int
}

// Area returns Width*Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Contains reports whether c lies inside the rectangle [0,Width)×[0,Height).
func (s Size) Contains(c Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < s.Width && c.Y < s.Height
}

// String formats s as "Width: w Height: h".
func (s Size) String() string {
	return fmt.Sprintf("Width: %d Height: %d", s.Width, s.Height)
}
