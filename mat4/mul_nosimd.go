//go:build !amd64 || !goexperiment.simd

package mat4

// The kernel only exists on amd64 builds with GOEXPERIMENT=simd. On
// every other build Available() is false, so SIMD.Mul panics before
// reaching this stub; it exists so all configurations compile.
func mulImpl(a, b *SIMD) SIMD {
	panic("mat4: vectorized multiply not compiled into this binary")
}
