package geom

import "math/bits"

// Direction is one compass direction encoded as a single bit.
type Direction uint8

// The eight directions, clockwise from North.
const (
	North     Direction = 1
	NorthEast Direction = 2
	East      Direction = 4
	SouthEast Direction = 8
	South     Direction = 16
	SouthWest Direction = 32
	West      Direction = 64
	NorthWest Direction = 128
)

// Cardinals lists the four orthogonal directions in N, E, S, W order.
var Cardinals = [4]Direction{North, East, South, West}

// All lists the eight directions clockwise from North.
var All = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// offsets is indexed by bit position (0 = North … 7 = NorthWest).
var offsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

var names = [8]string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}

// Valid reports whether d has exactly one bit set.
func (d Direction) Valid() bool {
	return d != 0 && d&(d-1) == 0
}

// IsCardinal reports whether d is North, East, South or West.
func (d Direction) IsCardinal() bool {
	return d == North || d == East || d == South || d == West
}

// Offset returns the (dx, dy) step for d. Invalid directions yield (0, 0).
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[bits.TrailingZeros8(uint8(d))]
	return o[0], o[1]
}

// Rotate turns d clockwise by k quarter turns; negative k turns anticlockwise.
func (d Direction) Rotate(k int) Direction {
	return Direction(bits.RotateLeft8(uint8(d), 2*(((k%4)+4)%4)))
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d.Rotate(2)
}

// String returns the direction name, or "Invalid".
func (d Direction) String() string {
	if !d.Valid() {
		return "Invalid"
	}
	return names[bits.TrailingZeros8(uint8(d))]
}

// Corner returns the diagonal direction between vertical v and horizontal h,
// e.g. Corner(South, West) == SouthWest. The second result is false unless
// v is North or South and h is East or West.
func Corner(v, h Direction) (Direction, bool) {
	switch {
	case v == North && h == East:
		return NorthEast, true
	case v == South && h == East:
		return SouthEast, true
	case v == South && h == West:
		return SouthWest, true
	case v == North && h == West:
		return NorthWest, true
	}
	return 0, false
}
