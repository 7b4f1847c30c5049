// SPDX-License-Identifier: MIT

package grid

import "errors"

// ErrDivideByZero indicates Modulus was called with a zero modulus.
var ErrDivideByZero = errors.New("grid: modulus by zero")
