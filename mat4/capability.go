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

import "os"

// Available reports whether SIMD.Mul can run: the AVX2+FMA kernel is
// compiled into this binary and the executing processor supports it.
//
// The probe is cheap; SIMD.Mul re-runs it on every call rather than
// trusting a cached answer, since running the wide-lane kernel on an
// unsupported processor is undefined behavior.
func Available() bool {
	return available()
}

// CPUSupported reports whether the executing processor has the AVX2 and
// FMA extensions the kernel needs, regardless of whether the kernel was
// compiled in. When CPUSupported returns true but Available returns
// false, rebuilding with GOEXPERIMENT=simd enables the vectorized path.
func CPUSupported() bool {
	return cpuSupported()
}

// noSimd disables the vectorized path when MAT4_NO_SIMD is set, for
// testing the capability gate and the scalar reference in isolation.
var noSimd = os.Getenv("MAT4_NO_SIMD") != ""
