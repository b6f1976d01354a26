// Package tile implements the blob Wang tile: an 8-bit edge mask with a null
// sentinel and a read-only mode, the closed catalog of legal blob masks with
// their canonical root and rotation, and the edge-matching predicate used to
// place tiles next to each other.
//
// What:
//
//   - Tile: value type carrying a mask (0..255) or the null sentinel (-1).
//     Null tiles report every flag false; null and read-only tiles reject Set.
//   - Mask: raw 8-bit set of geom.Direction flags.
//   - Catalog: the 47 legal blob masks in 15 rotation groups, each mask
//     mapped to (root, rotation) where mask == root rotated clockwise
//     rotation quarter turns.
//   - PossibleMatches: every catalog tile that respects the grid boundary and
//     agrees with the non-null N/E/S/W neighbors along their shared border.
//
// Matching rule:
//
//	Two tiles may sit side by side only if the three flags facing the common
//	border agree pairwise. For a West neighbor w and candidate c:
//
//	    w.NorthEast == c.NorthWest
//	    w.East      == c.West
//	    w.SouthEast == c.SouthWest
//
//	and the same rule rotated for the other three sides.
//
// Errors:
//
//   - ErrImmutableTile: Set on a null or read-only tile.
//   - ErrUnknownMask: reverse lookup of a mask outside the catalog.
//   - ErrInvalidDirection: Set with a value that is not a single direction bit.
//
// Concurrency:
//
//	The catalog is built once (sync.Once) and never mutated afterwards, so it
//	may be shared freely. Tiles are plain values.
package tile
