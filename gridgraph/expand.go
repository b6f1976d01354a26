package gridgraph

import (
	"container/list"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/wang/geom"
)

// Bridge finds a path with the fewest new links that joins any cell of
// component srcComp to any cell of component dstComp, as numbered by
// ConnectedComponents(). Following an existing link is free; stepping to an
// orthogonal non-null neighbor without a link costs 1 (one wall to open).
// Returns the row-major cell indices along the path, start and end included,
// and the number of links to open.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0–1 BFS from all srcComp cells.
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·4). Memory: O(W·H).
func (gg *GridGraph) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dst := mapset.Of(comps[dstComp]...)

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if dst.Has(u) {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range geom.Cardinals {
			dx, dy := d.Offset()
			vx, vy := ux+dx, uy+dy
			if !gg.InBounds(vx, vy) || gg.Masks[vy][vx] < 0 {
				continue
			}
			v := gg.Index(vx, vy)
			step := 1
			if gg.Linked(ux, uy, d) {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}
	return path, dist[target], nil
}
