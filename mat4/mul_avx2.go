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

//go:build amd64 && goexperiment.simd

package mat4

import "simd/archsimd"

// RowLanes returns the matrix's rows packed into two 8-wide float32
// lanes, the first holding rows 0 and 1 concatenated and the second
// holding rows 2 and 3. The lanes are loaded straight from the flat
// row-major storage.
func (m *SIMD) RowLanes() (archsimd.Float32x8, archsimd.Float32x8) {
	cells := m.FlatCells()
	rows01 := archsimd.LoadFloat32x8Slice(cells[0:8])
	rows23 := archsimd.LoadFloat32x8Slice(cells[8:16])
	return rows01, rows23
}

func mulImpl(a, b *SIMD) SIMD {
	return mulAVX2(a, b)
}

// mulAVX2 computes a × b with AVX2 and FMA. It performs no capability
// check; callers go through SIMD.Mul, and the tests invoke it directly
// only after probing archsimd.X86.AVX2().
//
// bRows[k] holds row k of b duplicated into both 128-bit halves of a
// lane, so the same row data lines up against two output rows of a at
// once:
//
//	bRows[k] = [b[k][0] b[k][1] b[k][2] b[k][3]  b[k][0] b[k][1] b[k][2] b[k][3]]
//
// For the output row pair (r, r+1), packPair builds the matching
// column-k lane from a:
//
//	[a[r][k] a[r][k] a[r][k] a[r][k]  a[r+1][k] a[r+1][k] a[r+1][k] a[r+1][k]]
//
// Multiplying each pack against bRows[k] and accumulating over k=0..3
// is exactly the dot-product definition of the matrix product, executed
// as four lane operations per row pair instead of sixteen scalar
// multiply-adds.
func mulAVX2(a, b *SIMD) SIMD {
	// Each row of b replicated into both 128-bit halves of a lane.
	var bRows [4]archsimd.Float32x8
	for k := range 4 {
		var arr [8]float32
		copy(arr[0:4], b.rows[k][:])
		copy(arr[4:8], b.rows[k][:])
		bRows[k] = archsimd.LoadFloat32x8(&arr)
	}

	// Rows 0–1 and rows 2–3 of the result, one 8-wide lane each. The
	// accumulation order is fixed: plain multiply for k=0, then fused
	// multiply-add for k=1..3.
	var out SIMD
	cells := out.FlatCells()
	for pair := range 2 {
		r0 := &a.rows[2*pair]
		r1 := &a.rows[2*pair+1]

		acc := packPair(r0[0], r1[0]).Mul(bRows[0])
		acc = packPair(r0[1], r1[1]).MulAdd(bRows[1], acc)
		acc = packPair(r0[2], r1[2]).MulAdd(bRows[2], acc)
		acc = packPair(r0[3], r1[3]).MulAdd(bRows[3], acc)

		acc.StoreSlice(cells[8*pair : 8*pair+8])
	}
	return out
}

// packPair returns a lane with lo replicated across the lower four
// slots and hi across the upper four.
func packPair(lo, hi float32) archsimd.Float32x8 {
	arr := [8]float32{lo, lo, lo, lo, hi, hi, hi, hi}
	return archsimd.LoadFloat32x8(&arr)
}
