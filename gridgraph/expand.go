// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/gridkit/point"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// identified by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the path (including the start and end land cells) and the total
// conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • moving into a land cell  → cost 0
//     • moving into a water cell → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []point.Point[int], cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[point.Point[int]]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = struct{}{}
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at front, cost-1 moves at back
	dq := list.New()
	for _, p := range comps[srcComp] {
		dist[gg.index(p)] = 0
		dq.PushFront(p)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(point.Point[int])
		ui := gg.index(u)
		if _, ok := dstSet[u]; ok {
			target = ui
			break
		}
		for _, v := range gg.Neighbors(u) {
			step := 0
			if !gg.IsLand(v) {
				step = 1
			}
			vi := gg.index(v)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
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
		path = append(path, gg.Coordinate(at))
	}
	reverse(path)
	return path, dist[target], nil
}

func reverse(ps []point.Point[int]) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}
