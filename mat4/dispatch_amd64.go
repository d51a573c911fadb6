//go:build amd64 && !goexperiment.simd

package mat4

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled. The kernel is not
// compiled into the binary, so the vectorized path is never available
// even on capable hardware; CPUSupported still reports the hardware
// truth so callers can suggest rebuilding.

func available() bool {
	return false
}

func cpuSupported() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
