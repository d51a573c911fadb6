package mat4

import "unsafe"

// This file is the only place the package reinterprets memory. The flat
// views below are valid because both matrix structs are exactly sixteen
// contiguous float32 cells in row-major order, which the assertions
// check at compile time.

var (
	_ [64]byte = [unsafe.Sizeof(Scalar{})]byte{}
	_ [64]byte = [unsafe.Sizeof(SIMD{})]byte{}
)

// FlatCells returns the matrix's cells as a flat row-major view of the
// backing storage, without copying. The view aliases the matrix: writes
// through it are visible via At and vice versa.
func (m *Scalar) FlatCells() *[16]float32 {
	return (*[16]float32)(unsafe.Pointer(&m.rows))
}

// FlatCells returns the matrix's cells as a flat row-major view of the
// backing storage, without copying.
func (m *SIMD) FlatCells() *[16]float32 {
	return (*[16]float32)(unsafe.Pointer(&m.rows))
}
