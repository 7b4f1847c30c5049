// SPDX-License-Identifier: MIT

package point

import "errors"

// ErrDivideByZero indicates a point was divided by a zero scalar.
var ErrDivideByZero = errors.New("point: division by zero")

// ErrScalarRange indicates a divisor of another numeric type that cannot be
// represented in the point's coordinate type without wrapping, truncating
// or underflowing.
var ErrScalarRange = errors.New("point: scalar out of range for coordinate type")
