// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/gridkit/num"

// Modulus returns the Euclidean remainder ((a % b) + b) % b.
// Unlike Go's %, the result is in [0, b) for positive b even when a is
// negative: Modulus(-7, 5) == 3. For negative b the result is in (b, 0].
//
// The intermediate (a % b) + b can overflow a fixed-width T when |b| is
// more than half its range; such inputs wrap per Go semantics.
//
// Returns ErrDivideByZero if b == 0.
func Modulus[T num.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return ((a % b) + b) % b, nil
}
