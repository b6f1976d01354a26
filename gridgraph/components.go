package gridgraph

// ConnectedComponents finds every group of non-null cells joined by links,
// according to gg.Conn. Each component is a slice of row-major cell indices
// in BFS order; components appear in row-major order of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Masks[y][x] < 0 {
				continue // null
			}
			i0 := gg.Index(x, y)
			if seen[i0] {
				continue
			}
			comps = append(comps, gg.bfs(i0, seen))
		}
	}
	return comps
}

// Reachable returns, in BFS order, every cell reachable from start by
// following links. Returns ErrCellIndex if start is outside the grid or null.
func (gg *GridGraph) Reachable(start int) ([]int, error) {
	if start < 0 || start >= gg.Width*gg.Height {
		return nil, ErrCellIndex
	}
	if x, y := gg.Coordinate(start); gg.Masks[y][x] < 0 {
		return nil, ErrCellIndex
	}
	return gg.bfs(start, make([]bool, gg.Width*gg.Height)), nil
}

// bfs collects the component of i0, marking it in seen.
func (gg *GridGraph) bfs(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.directions {
			if !gg.Linked(ux, uy, d) {
				continue
			}
			dx, dy := d.Offset()
			vi := gg.Index(ux+dx, uy+dy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
