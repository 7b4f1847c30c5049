// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/gridkit/point"

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn connectivity.
// Components are discovered in row-major order of their first cell; each
// component lists its cells in BFS order starting from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]point.Point[int] {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]point.Point[int]

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			start := point.New(x, y)
			if !gg.IsLand(start) || seen[gg.index(start)] {
				continue // water or already collected
			}
			// BFS to collect component
			seen[gg.index(start)] = true
			comp := []point.Point[int]{start}
			for qi := 0; qi < len(comp); qi++ {
				for _, v := range gg.Neighbors(comp[qi]) {
					vi := gg.index(v)
					if seen[vi] || !gg.IsLand(v) {
						continue
					}
					seen[vi] = true
					comp = append(comp, v)
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
