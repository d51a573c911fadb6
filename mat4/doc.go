// Package mat4 provides a fixed-size 4×4 float32 matrix with two
// interchangeable implementations of matrix multiplication: a scalar
// reference form (Scalar) and an AVX2+FMA vectorized form (SIMD).
//
// # Representations
//
// Scalar and SIMD hold identical logical content with a bit-identical
// byte layout, so conversion between them is a plain struct conversion
// that preserves every cell exactly:
//
//	s := mat4.ScalarFromRows(rows)
//	v := s.SIMD()        // lossless
//	back := v.Scalar()   // back == s, bit for bit
//
// # Indexing convention
//
// Cells are addressed by a (column, row) pair: the first index selects
// the column and the second the row. This matches the multiply formula
//
//	c[col,row] = Σ_{k=0..3} a[k,row] * b[col,k]
//
// and is deliberately the reverse of the more common (row, column)
// convention. Both representations use it consistently.
//
// # Vectorized multiply
//
// SIMD.Mul computes the same product as Scalar.Mul using two 8-wide
// float32 lanes (rows 0–1 and rows 2–3) with broadcast and fused
// multiply-add. The accumulation order differs from the scalar loop, so
// the two paths may disagree in the last 1–2 mantissa bits; compare
// results with the tolerance relations in package approx, never with ==.
//
// SIMD.Mul has no scalar fallback. It checks Available() on every call
// and panics when the vectorized path cannot run; callers needing
// portability should query Available() ahead of time and use Scalar.
//
// # Build Requirements
//
// The vectorized path requires:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX2 and FMA support
//
// On other builds the whole package still compiles and the Scalar type
// is fully functional; only SIMD.Mul is unavailable.
package mat4
