// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Lines splits text on "\n" and trims one trailing "\r" from each line.
// A final newline does not produce a trailing empty line, and empty text
// has no lines.
func Lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Runes converts text to a ragged rune grid, one row per line.
func Runes(text string) [][]rune {
	lines := Lines(text)
	out := make([][]rune, len(lines))
	for y, l := range lines {
		out[y] = []rune(l)
	}
	return out
}

// Text joins a rune grid back into text, one line per row, each line
// terminated by "\n".
func Text(g [][]rune) string {
	var b strings.Builder
	for _, row := range g {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render formats g as aligned columns: each cell is printed with %v and
// left-aligned to the display width of the widest cell in its column
// (East Asian wide runes count as two). Cells are separated by one space;
// each row ends with "\n" and carries no trailing padding.
func Render[T any](g [][]T) string {
	cells := make([][]string, len(g))
	var widths []int
	for y, row := range g {
		cells[y] = make([]string, len(row))
		for x, v := range row {
			s := fmt.Sprint(v)
			cells[y][x] = s
			if x == len(widths) {
				widths = append(widths, 0)
			}
			widths[x] = max(widths[x], runewidth.StringWidth(s))
		}
	}

	var b strings.Builder
	for _, row := range cells {
		for x, s := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			if x == len(row)-1 {
				b.WriteString(s)
				continue
			}
			b.WriteString(runewidth.FillRight(s, widths[x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
