// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/gridkit/point"

// ShortestPath returns a shortest walk from src to dst that only steps on
// land cells, including both endpoints. Both endpoints must be land.
// Returns ErrOutOfBounds if either point lies outside the grid and ErrNoPath
// if dst is unreachable (or either endpoint is water).
//
// Neighbors are explored in gg.Neighbors order, so among equal-length walks
// the result is deterministic.
//
// Time: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph[T]) ShortestPath(src, dst point.Point[int]) ([]point.Point[int], error) {
	if !gg.InBounds(src) || !gg.InBounds(dst) {
		return nil, ErrOutOfBounds
	}
	if !gg.IsLand(src) || !gg.IsLand(dst) {
		return nil, ErrNoPath
	}

	prev := make(map[point.Point[int]]point.Point[int])
	prev[src] = src
	queue := []point.Point[int]{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			path := []point.Point[int]{dst}
			for at := dst; at != src; {
				at = prev[at]
				path = append(path, at)
			}
			reverse(path)
			return path, nil
		}
		for _, v := range gg.Neighbors(u) {
			if _, ok := prev[v]; ok || !gg.IsLand(v) {
				continue
			}
			prev[v] = u
			queue = append(queue, v)
		}
	}
	return nil, ErrNoPath
}
