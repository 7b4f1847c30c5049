// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"

	"github.com/katalvlaran/gridkit/num"
)

// foldRow reduces g[n] with f, seeding the accumulator with its first value.
// ok is false when n is out of range or the row is empty.
func foldRow[T any](g [][]T, n int, f func(acc, v T) T) (acc T, ok bool) {
	if n < 0 || n >= len(g) || len(g[n]) == 0 {
		return acc, false
	}
	row := g[n]
	acc = row[0]
	for _, v := range row[1:] {
		acc = f(acc, v)
	}
	return acc, true
}

// foldColumn reduces column n with f over every row that reaches it.
// ok is false when no row has an element at index n.
func foldColumn[T any](g [][]T, n int, f func(acc, v T) T) (acc T, ok bool) {
	if n < 0 {
		return acc, false
	}
	for _, row := range g {
		if n >= len(row) {
			continue // short row: nothing in this column
		}
		if !ok {
			acc, ok = row[n], true
			continue
		}
		acc = f(acc, row[n])
	}
	return acc, ok
}

func add[T num.Number](a, b T) T { return a + b }

func minOf[T cmp.Ordered](a, b T) T { return min(a, b) }

func maxOf[T cmp.Ordered](a, b T) T { return max(a, b) }

// SumRow returns the sum of row n.
// ok is false if g is empty, n is out of range or the row is empty.
func SumRow[T num.Number](g [][]T, n int) (T, bool) {
	return foldRow(g, n, add[T])
}

// SumColumn returns the sum of column n over every row that reaches it.
// ok is false if g is empty or no row has an element at index n.
func SumColumn[T num.Number](g [][]T, n int) (T, bool) {
	return foldColumn(g, n, add[T])
}

// MinRow returns the smallest value of row n.
func MinRow[T cmp.Ordered](g [][]T, n int) (T, bool) {
	return foldRow(g, n, minOf[T])
}

// MaxRow returns the largest value of row n.
func MaxRow[T cmp.Ordered](g [][]T, n int) (T, bool) {
	return foldRow(g, n, maxOf[T])
}

// MinColumn returns the smallest value of column n.
func MinColumn[T cmp.Ordered](g [][]T, n int) (T, bool) {
	return foldColumn(g, n, minOf[T])
}

// MaxColumn returns the largest value of column n.
func MaxColumn[T cmp.Ordered](g [][]T, n int) (T, bool) {
	return foldColumn(g, n, maxOf[T])
}
