package tile

import (
	"math/bits"

	"github.com/katalvlaran/wang/geom"
)

// Mask is a set of geom.Direction flags; bit i is the direction 1<<i.
type Mask uint8

// Has reports whether d is set in m.
func (m Mask) Has(d geom.Direction) bool {
	return m&Mask(d) != 0
}

// With returns m with d set (on) or cleared (!on).
func (m Mask) With(d geom.Direction, on bool) Mask {
	if on {
		return m | Mask(d)
	}
	return m &^ Mask(d)
}

// Rotate turns the mask clockwise by k quarter turns.
func (m Mask) Rotate(k int) Mask {
	return Mask(bits.RotateLeft8(uint8(m), 2*(((k%4)+4)%4)))
}

// Blob reports whether m is a legal blob mask: every corner bit is set only
// together with both of its adjacent edge bits.
func (m Mask) Blob() bool {
	for _, c := range [4]geom.Direction{geom.NorthEast, geom.SouthEast, geom.SouthWest, geom.NorthWest} {
		if !m.Has(c) {
			continue
		}
		cw := geom.Direction(bits.RotateLeft8(uint8(c), 1))
		ccw := geom.Direction(bits.RotateLeft8(uint8(c), -1))
		if !m.Has(cw) || !m.Has(ccw) {
			return false
		}
	}
	return true
}
