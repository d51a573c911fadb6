//go:build !amd64

package mat4

// AVX2 and FMA are x86-specific; on other architectures the vectorized
// path does not exist and SIMD.Mul always panics.

func available() bool {
	return false
}

func cpuSupported() bool {
	return false
}
