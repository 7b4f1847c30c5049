// SPDX-License-Identifier: MIT

package point

import "github.com/katalvlaran/gridkit/num"

// Manhattan returns the cardinal distance |ax-bx| + |ay-by|.
// Per-axis differences are taken as max-min, so unsigned coordinates never
// underflow whatever the argument order.
func Manhattan[T num.Number](a, b Point[T]) T {
	return num.AbsDiff(a.X, b.X) + num.AbsDiff(a.Y, b.Y)
}

// Chebyshev returns the king-move distance max(|ax-bx|, |ay-by|).
func Chebyshev[T num.Number](a, b Point[T]) T {
	return max(num.AbsDiff(a.X, b.X), num.AbsDiff(a.Y, b.Y))
}
