// Copyright 2026 go-mat4 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package approx provides tolerance-based floating-point equality:
// absolute difference, relative difference, and representation distance
// (ULPs). Fused multiply-add reorders rounding compared to a plain
// multiply-accumulate loop, so code comparing the outputs of two
// arithmetically equal computations needs these relations rather
// than ==.
//
// All three relations are reflexive for finite values and symmetric in
// their operands. Special values behave as follows and are deliberately
// not papered over:
//
//   - NaN is never equal to anything, including itself, under any
//     relation.
//   - +0 and -0 are equal under all three relations.
//   - An infinity equals itself under RelativeEq (via the exact-match
//     short-circuit) but not under AbsDiffEq or UlpsEq, because its
//     difference from anything is NaN.
//
// Each relation comes in a float32 and a float64 form, plus a matrix
// form applying the float32 relation to all sixteen cells of a flat
// row-major view.
package approx

import "math"

const (
	// DefaultEpsilon32 is the float32 machine epsilon, the smallest
	// absolute tolerance that still separates genuine rounding error
	// from exact equality at default precision.
	DefaultEpsilon32 float32 = 0x1p-23

	// DefaultMaxRelative32 is the default maximum relative difference
	// for float32, equal to the machine epsilon.
	DefaultMaxRelative32 float32 = 0x1p-23

	// DefaultEpsilon64 is the float64 machine epsilon.
	DefaultEpsilon64 float64 = 0x1p-52

	// DefaultMaxRelative64 is the default maximum relative difference
	// for float64.
	DefaultMaxRelative64 float64 = 0x1p-52

	// DefaultMaxUlps is the default maximum number of representable
	// values two operands may be apart and still compare equal.
	DefaultMaxUlps uint32 = 4
)

// Matrix16 is any matrix value exposing its sixteen float32 cells as a
// flat row-major view.
type Matrix16 interface {
	FlatCells() *[16]float32
}

// AbsDiffEq reports whether |a-b| <= epsilon.
//
// Not reflexive for NaN or infinities: the difference is NaN in both
// cases.
func AbsDiffEq(a, b, epsilon float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

// RelativeEq reports whether a and b differ by at most epsilon in
// absolute terms, or by at most maxRelative in proportion to the larger
// magnitude of the two. The absolute check handles operands near zero,
// where a proportional bound is meaningless.
func RelativeEq(a, b, epsilon, maxRelative float32) bool {
	// Exact match, including both infinities of the same sign.
	if a == b {
		return true
	}
	if isInf32(a) || isInf32(b) {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	if d <= epsilon {
		return true
	}
	absA, absB := a, b
	if absA < 0 {
		absA = -absA
	}
	if absB < 0 {
		absB = -absB
	}
	largest := absB
	if absA > absB {
		largest = absA
	}
	return d <= largest*maxRelative
}

// UlpsEq reports whether a and b occupy representation slots within
// maxUlps representable-value steps of each other, after an absolute
// check with epsilon that handles values straddling zero (the bit
// distance between +0 and -0 is half the float32 range).
//
// Operands of opposite sign are equal only when the absolute check
// passes; NaN is never equal to anything.
func UlpsEq(a, b, epsilon float32, maxUlps uint32) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	if a != a || b != b {
		return false
	}
	if (a < 0) != (b < 0) {
		return false
	}
	ia := int32(math.Float32bits(a))
	ib := int32(math.Float32bits(b))
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return uint32(d) <= maxUlps
}

// AbsDiffEq64 is AbsDiffEq for float64.
func AbsDiffEq64(a, b, epsilon float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

// RelativeEq64 is RelativeEq for float64.
func RelativeEq64(a, b, epsilon, maxRelative float64) bool {
	if a == b {
		return true
	}
	if isInf64(a) || isInf64(b) {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	if d <= epsilon {
		return true
	}
	absA, absB := a, b
	if absA < 0 {
		absA = -absA
	}
	if absB < 0 {
		absB = -absB
	}
	largest := absB
	if absA > absB {
		largest = absA
	}
	return d <= largest*maxRelative
}

// UlpsEq64 is UlpsEq for float64.
func UlpsEq64(a, b, epsilon float64, maxUlps uint32) bool {
	if AbsDiffEq64(a, b, epsilon) {
		return true
	}
	if a != a || b != b {
		return false
	}
	if (a < 0) != (b < 0) {
		return false
	}
	ia := int64(math.Float64bits(a))
	ib := int64(math.Float64bits(b))
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return uint64(d) <= uint64(maxUlps)
}

func isInf32(x float32) bool {
	return x > math.MaxFloat32 || x < -math.MaxFloat32
}

func isInf64(x float64) bool {
	return math.IsInf(x, 0)
}

// AbsDiffEqMatrix reports AbsDiffEq for all sixteen cell pairs.
func AbsDiffEqMatrix(a, b Matrix16, epsilon float32) bool {
	ac, bc := a.FlatCells(), b.FlatCells()
	for i := range ac {
		if !AbsDiffEq(ac[i], bc[i], epsilon) {
			return false
		}
	}
	return true
}

// RelativeEqMatrix reports RelativeEq for all sixteen cell pairs.
func RelativeEqMatrix(a, b Matrix16, epsilon, maxRelative float32) bool {
	ac, bc := a.FlatCells(), b.FlatCells()
	for i := range ac {
		if !RelativeEq(ac[i], bc[i], epsilon, maxRelative) {
			return false
		}
	}
	return true
}

// UlpsEqMatrix reports UlpsEq for all sixteen cell pairs.
func UlpsEqMatrix(a, b Matrix16, epsilon float32, maxUlps uint32) bool {
	ac, bc := a.FlatCells(), b.FlatCells()
	for i := range ac {
		if !UlpsEq(ac[i], bc[i], epsilon, maxUlps) {
			return false
		}
	}
	return true
}
