// SPDX-License-Identifier: MIT

// Package num defines the numeric capability constraints shared by the
// gridkit packages, plus the few scalar helpers every generic routine needs.
//
// What:
//
//   - Signed, Unsigned, Integer, Float and Number type sets (with ~ so that
//     named numeric types such as `type Meters int` qualify).
//   - AbsDiff: |a-b| computed as max(a,b)-min(a,b), safe for unsigned types.
//
// Why:
//
//   - Coordinates and grid cells are generic; hard-coding one width (int,
//     int64) would force conversions at every call site.
//   - `abs(a-b)` underflows for unsigned types; AbsDiff never does.
package num
