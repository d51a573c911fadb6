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

// Package main provides a diagnostic tool that reports whether the
// vectorized multiply path can run on this machine and build.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/rsoderh/go-mat4/mat4"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Println()

	fmt.Printf("mat4 vectorized multiply available: %v\n", mat4.Available())
	fmt.Printf("mat4 CPU supports AVX2+FMA: %v\n", mat4.CPUSupported())
	if mat4.CPUSupported() && !mat4.Available() {
		fmt.Println("  (rebuild with GOEXPERIMENT=simd to enable the vectorized path)")
	}
	fmt.Println()

	if runtime.GOARCH == "amd64" {
		printAMD64Features()
	}
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
}
