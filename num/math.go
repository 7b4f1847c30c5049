// SPDX-License-Identifier: MIT

package num

// AbsDiff returns |a-b| as max(a,b)-min(a,b).
// For unsigned T the subtraction can never wrap below zero; for signed T the
// result can still overflow when a and b are at opposite ends of the range.
// Complexity: O(1).
func AbsDiff[T Number](a, b T) T {
	return max(a, b) - min(a, b)
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	var two T = 2
	return 1/two != 0
}
