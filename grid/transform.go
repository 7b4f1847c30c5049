// SPDX-License-Identifier: MIT

package grid

// Rotate transposes g: row i of the result holds element i of every
// original row that has one, in original row order. The result has as many
// rows as the longest input row, so ragged input loses no cells.
// An empty grid yields an empty, non-nil grid.
// Complexity: O(W×H).
func Rotate[T any](g [][]T) [][]T {
	width := 0
	for _, row := range g {
		width = max(width, len(row))
	}
	out := make([][]T, width)
	for x := range out {
		col := make([]T, 0, len(g))
		for _, row := range g {
			if x < len(row) {
				col = append(col, row[x])
			}
		}
		out[x] = col
	}
	return out
}

// Clone returns a deep copy of g. A nil grid stays nil.
func Clone[T any](g [][]T) [][]T {
	if g == nil {
		return nil
	}
	out := make([][]T, len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// PadGrid returns a copy of g surrounded by a one-cell border of filler.
// The result is (H+2)×(W+2) where W is the longest row; g[y][x] lands at
// [y+1][x+1] and cells past the end of a short row are filler too.
// ok is false when g has no rows or every row is empty.
// Complexity: O(W×H).
func PadGrid[T any](g [][]T, filler T) ([][]T, bool) {
	width := 0
	for _, row := range g {
		width = max(width, len(row))
	}
	if width == 0 {
		return nil, false
	}

	out := make([][]T, len(g)+2)
	for y := range out {
		row := make([]T, width+2)
		for x := range row {
			row[x] = filler
		}
		if y > 0 && y <= len(g) {
			copy(row[1:], g[y-1])
		}
		out[y] = row
	}
	return out, true
}

// Pad turns multi-line text into a rune grid with a one-cell border of
// filler. Empty lines are dropped; short lines are right-filled with filler
// up to the widest line. ok is false when text has no non-empty lines.
func Pad(text string, filler rune) ([][]rune, bool) {
	var rows [][]rune
	for _, line := range Lines(text) {
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	return PadGrid(rows, filler)
}
