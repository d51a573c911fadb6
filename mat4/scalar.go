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

package mat4

import (
	"github.com/rsoderh/go-mat4/approx"
)

// Scalar is the reference 4×4 float32 matrix. It has value semantics:
// assignment and passing by value produce independent copies, and no
// operation mutates its receiver except Set.
//
// Cells are stored row-major. Cell access is by (column, row); see the
// package documentation for the indexing convention.
//
// Scalar values compare with == for exact (bitwise) equality. Results of
// different multiply paths should be compared with the approximate
// relations instead.
type Scalar struct {
	rows [4][4]float32
}

// NewScalar returns a matrix holding the given rows.
func NewScalar(rows [4][4]float32) Scalar {
	return Scalar{rows: rows}
}

// ScalarZero returns the all-zero matrix.
func ScalarZero() Scalar {
	return Scalar{}
}

// ScalarIdentity returns the identity matrix.
func ScalarIdentity() Scalar {
	return Scalar{rows: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// ScalarFromRows builds a matrix from a 4-row, 4-column source.
//
// Panics unless rows contains exactly 4 rows of exactly 4 cells each.
// A malformed source is a programmer error, not a recoverable condition.
func ScalarFromRows(rows [][]float32) Scalar {
	var m Scalar
	if len(rows) != 4 {
		panic("mat4: expected exactly 4 rows")
	}
	for i, row := range rows {
		if len(row) != 4 {
			panic("mat4: expected exactly 4 cells per row")
		}
		copy(m.rows[i][:], row)
	}
	return m
}

// Rows returns a copy of the matrix's rows.
func (m Scalar) Rows() [4][4]float32 {
	return m.rows
}

// At returns the cell at (col, row). The first index selects the column,
// the second the row. Indexes outside [0,4) panic with the native bounds
// check.
func (m Scalar) At(col, row int) float32 {
	return m.rows[row][col]
}

// Set stores v into the cell at (col, row).
func (m *Scalar) Set(col, row int, v float32) {
	m.rows[row][col] = v
}

// Map returns a new matrix with f applied independently to every cell.
func (m Scalar) Map(f func(float32) float32) Scalar {
	var out Scalar
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.rows[row][col] = f(m.rows[row][col])
		}
	}
	return out
}

// Mul returns the matrix product m × rhs:
//
//	c[col,row] = Σ_{k=0..3} m[k,row] * rhs[col,k]
//
// This is the scalar reference path; it has no hardware requirements and
// its accumulation order is the plain k=0..3 loop.
func (m Scalar) Mul(rhs Scalar) Scalar {
	var out Scalar
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.rows[row][k] * rhs.rows[k][col]
			}
			out.rows[row][col] = sum
		}
	}
	return out
}

// SIMD returns the vectorized representation of m. The conversion is a
// struct conversion: lossless and bit-exact.
func (m Scalar) SIMD() SIMD {
	return SIMD(m)
}

// AbsDiffEq reports cell-wise absolute-difference equality with the
// default epsilon.
func (m Scalar) AbsDiffEq(rhs Scalar) bool {
	return m.AbsDiffEqTol(rhs, approx.DefaultEpsilon32)
}

// AbsDiffEqTol reports cell-wise absolute-difference equality within
// epsilon.
func (m Scalar) AbsDiffEqTol(rhs Scalar, epsilon float32) bool {
	return approx.AbsDiffEqMatrix(&m, &rhs, epsilon)
}

// RelativeEq reports cell-wise relative equality with the default
// tolerances.
func (m Scalar) RelativeEq(rhs Scalar) bool {
	return m.RelativeEqTol(rhs, approx.DefaultEpsilon32, approx.DefaultMaxRelative32)
}

// RelativeEqTol reports cell-wise relative equality within epsilon and
// maxRelative.
func (m Scalar) RelativeEqTol(rhs Scalar, epsilon, maxRelative float32) bool {
	return approx.RelativeEqMatrix(&m, &rhs, epsilon, maxRelative)
}

// UlpsEq reports cell-wise representation-distance equality with the
// default tolerances.
func (m Scalar) UlpsEq(rhs Scalar) bool {
	return m.UlpsEqTol(rhs, approx.DefaultEpsilon32, approx.DefaultMaxUlps)
}

// UlpsEqTol reports cell-wise representation-distance equality within
// epsilon and maxUlps.
func (m Scalar) UlpsEqTol(rhs Scalar, epsilon float32, maxUlps uint32) bool {
	return approx.UlpsEqMatrix(&m, &rhs, epsilon, maxUlps)
}

// String implements fmt.Stringer with one bracketed list per row.
func (m Scalar) String() string {
	return formatRows("Scalar", &m.rows)
}
