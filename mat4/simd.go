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

// SIMD is the vectorized 4×4 float32 matrix. Its logical content and
// byte layout are identical to Scalar. The field layout of the two
// structs must stay in lockstep so the conversions between them remain
// plain (zero-copy, bit-exact) struct conversions and the flat-cell view
// in layout.go stays valid.
//
// Construction, indexing, Map and the equality relations behave exactly
// as on Scalar. Only Mul differs: it runs the AVX2+FMA kernel and panics
// when the vectorized path is unavailable (see Available).
type SIMD struct {
	rows [4][4]float32
}

// NewSIMD returns a matrix holding the given rows.
func NewSIMD(rows [4][4]float32) SIMD {
	return SIMD{rows: rows}
}

// SIMDZero returns the all-zero matrix.
func SIMDZero() SIMD {
	return SIMD{}
}

// SIMDIdentity returns the identity matrix.
func SIMDIdentity() SIMD {
	return SIMD(ScalarIdentity())
}

// SIMDFromRows builds a matrix from a 4-row, 4-column source.
//
// Panics unless rows contains exactly 4 rows of exactly 4 cells each.
func SIMDFromRows(rows [][]float32) SIMD {
	return SIMD(ScalarFromRows(rows))
}

// Rows returns a copy of the matrix's rows.
func (m SIMD) Rows() [4][4]float32 {
	return m.rows
}

// At returns the cell at (col, row). The first index selects the column,
// the second the row.
func (m SIMD) At(col, row int) float32 {
	return m.rows[row][col]
}

// Set stores v into the cell at (col, row).
func (m *SIMD) Set(col, row int, v float32) {
	m.rows[row][col] = v
}

// Map returns a new matrix with f applied independently to every cell.
func (m SIMD) Map(f func(float32) float32) SIMD {
	return SIMD(Scalar(m).Map(f))
}

// Scalar returns the reference representation of m. The conversion is a
// struct conversion: lossless and bit-exact.
func (m SIMD) Scalar() Scalar {
	return Scalar(m)
}

// Mul returns the matrix product m × rhs computed with the AVX2+FMA
// kernel. The product matches Scalar.Mul within tolerance; the fused
// accumulation may differ from the scalar loop in the last 1–2 mantissa
// bits, so compare the two paths with the approximate relations.
//
// The capability gate runs on every call: if the vectorized path is
// unavailable, Mul panics rather than silently degrading to the scalar
// loop. Callers needing portability must check Available() and use
// Scalar themselves.
func (m SIMD) Mul(rhs SIMD) SIMD {
	if !Available() {
		panic("mat4: vectorized multiply unavailable (requires amd64 with avx2+fma and GOEXPERIMENT=simd)")
	}
	return mulImpl(&m, &rhs)
}

// AbsDiffEq reports cell-wise absolute-difference equality with the
// default epsilon.
func (m SIMD) AbsDiffEq(rhs SIMD) bool {
	return m.AbsDiffEqTol(rhs, approx.DefaultEpsilon32)
}

// AbsDiffEqTol reports cell-wise absolute-difference equality within
// epsilon.
func (m SIMD) AbsDiffEqTol(rhs SIMD, epsilon float32) bool {
	return approx.AbsDiffEqMatrix(&m, &rhs, epsilon)
}

// RelativeEq reports cell-wise relative equality with the default
// tolerances.
func (m SIMD) RelativeEq(rhs SIMD) bool {
	return m.RelativeEqTol(rhs, approx.DefaultEpsilon32, approx.DefaultMaxRelative32)
}

// RelativeEqTol reports cell-wise relative equality within epsilon and
// maxRelative.
func (m SIMD) RelativeEqTol(rhs SIMD, epsilon, maxRelative float32) bool {
	return approx.RelativeEqMatrix(&m, &rhs, epsilon, maxRelative)
}

// UlpsEq reports cell-wise representation-distance equality with the
// default tolerances.
func (m SIMD) UlpsEq(rhs SIMD) bool {
	return m.UlpsEqTol(rhs, approx.DefaultEpsilon32, approx.DefaultMaxUlps)
}

// UlpsEqTol reports cell-wise representation-distance equality within
// epsilon and maxUlps.
func (m SIMD) UlpsEqTol(rhs SIMD, epsilon float32, maxUlps uint32) bool {
	return approx.UlpsEqMatrix(&m, &rhs, epsilon, maxUlps)
}

// String implements fmt.Stringer with one bracketed list per row.
func (m SIMD) String() string {
	return formatRows("SIMD", &m.rows)
}
