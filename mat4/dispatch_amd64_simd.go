//go:build amd64 && goexperiment.simd

package mat4

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

// archsimd gates its 256-bit float ops (including the FMA forms MulAdd
// lowers to) behind the AVX2 probe, so AVX2() alone is the correct
// usability check for the kernel.
func available() bool {
	return !noSimd && archsimd.X86.AVX2()
}

func cpuSupported() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
