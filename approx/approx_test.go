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

package approx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflexivity(t *testing.T) {
	values := []float32{0, -0, 1, -1, 0.5, 1e-30, 1e30, -1e30, math.MaxFloat32, math.SmallestNonzeroFloat32}

	for _, v := range values {
		assert.True(t, AbsDiffEq(v, v, DefaultEpsilon32), "AbsDiffEq(%g, %g)", v, v)
		assert.True(t, RelativeEq(v, v, DefaultEpsilon32, DefaultMaxRelative32), "RelativeEq(%g, %g)", v, v)
		assert.True(t, UlpsEq(v, v, DefaultEpsilon32, DefaultMaxUlps), "UlpsEq(%g, %g)", v, v)
	}
}

func TestAbsDiffEq(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float32
		epsilon  float32
		expected bool
	}{
		{"Equal values", 1.0, 1.0, DefaultEpsilon32, true},
		{"Within epsilon", 1.0, 1.0 + 0x1p-24, DefaultEpsilon32, true},
		{"Beyond epsilon", 1.0, 1.001, DefaultEpsilon32, false},
		{"Signed zeros", 0.0, float32(math.Copysign(0, -1)), DefaultEpsilon32, true},
		{"Custom epsilon", 1.0, 1.5, 1.0, true},
		{"NaN vs NaN", float32(math.NaN()), float32(math.NaN()), DefaultEpsilon32, false},
		{"NaN vs value", float32(math.NaN()), 1.0, DefaultEpsilon32, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AbsDiffEq(tc.a, tc.b, tc.epsilon))
			assert.Equal(t, tc.expected, AbsDiffEq(tc.b, tc.a, tc.epsilon), "symmetry")
		})
	}
}

func TestRelativeEq(t *testing.T) {
	inf := float32(math.Inf(1))

	tests := []struct {
		name     string
		a, b     float32
		expected bool
	}{
		{"Equal values", 2.5, 2.5, true},
		{"One ulp at large magnitude", 1e30, math.Nextafter32(1e30, 2e30), true},
		{"Relative difference too large", 1.0, 1.001, false},
		{"Near zero within epsilon", 1e-40, -1e-40, true},
		{"Same infinity", inf, inf, true},
		{"Opposite infinities", inf, -inf, false},
		{"Infinity vs finite", inf, math.MaxFloat32, false},
		{"NaN", float32(math.NaN()), float32(math.NaN()), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RelativeEq(tc.a, tc.b, DefaultEpsilon32, DefaultMaxRelative32))
			assert.Equal(t, tc.expected, RelativeEq(tc.b, tc.a, DefaultEpsilon32, DefaultMaxRelative32), "symmetry")
		})
	}
}

func TestUlpsEq(t *testing.T) {
	next := func(v float32, steps int) float32 {
		for i := 0; i < steps; i++ {
			v = math.Nextafter32(v, float32(math.Inf(1)))
		}
		return v
	}

	tests := []struct {
		name     string
		a, b     float32
		expected bool
	}{
		{"Equal values", 1.0, 1.0, true},
		{"Adjacent representations", 1.0, next(1.0, 1), true},
		{"Four steps apart", 1.0, next(1.0, 4), true},
		{"Five steps apart", 1.0, next(1.0, 5), false},
		{"Large magnitude neighbors", 1e30, next(1e30, 3), true},
		{"Signed zeros", 0.0, float32(math.Copysign(0, -1)), true},
		{"Opposite signs beyond epsilon", 1e-6, -1e-6, false},
		{"NaN", float32(math.NaN()), float32(math.NaN()), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, UlpsEq(tc.a, tc.b, DefaultEpsilon32, DefaultMaxUlps))
			assert.Equal(t, tc.expected, UlpsEq(tc.b, tc.a, DefaultEpsilon32, DefaultMaxUlps), "symmetry")
		})
	}
}

func TestFloat64Relations(t *testing.T) {
	next := math.Nextafter(1.0, 2.0)

	assert.True(t, AbsDiffEq64(1.0, next, DefaultEpsilon64))
	assert.False(t, AbsDiffEq64(1.0, 1.0+1e-10, DefaultEpsilon64))

	assert.True(t, RelativeEq64(1e300, math.Nextafter(1e300, 2e300), DefaultEpsilon64, DefaultMaxRelative64))
	assert.False(t, RelativeEq64(1.0, 1.0+1e-10, DefaultEpsilon64, DefaultMaxRelative64))

	assert.True(t, UlpsEq64(1.0, next, DefaultEpsilon64, DefaultMaxUlps))
	assert.False(t, UlpsEq64(1.0, 1.0+1e-10, DefaultEpsilon64, DefaultMaxUlps))
	assert.False(t, UlpsEq64(math.NaN(), math.NaN(), DefaultEpsilon64, DefaultMaxUlps))
}

// flat16 is a minimal Matrix16 implementation for exercising the
// matrix-level relations without depending on the matrix package.
type flat16 [16]float32

func (f *flat16) FlatCells() *[16]float32 {
	return (*[16]float32)(f)
}

func TestMatrixRelations(t *testing.T) {
	var a, b flat16
	for i := range a {
		a[i] = float32(i + 1)
		b[i] = float32(i + 1)
	}

	assert.True(t, AbsDiffEqMatrix(&a, &b, DefaultEpsilon32))
	assert.True(t, RelativeEqMatrix(&a, &b, DefaultEpsilon32, DefaultMaxRelative32))
	assert.True(t, UlpsEqMatrix(&a, &b, DefaultEpsilon32, DefaultMaxUlps))

	// A single out-of-tolerance cell fails the whole comparison.
	b[7] += 0.01
	assert.False(t, AbsDiffEqMatrix(&a, &b, DefaultEpsilon32))
	assert.False(t, RelativeEqMatrix(&a, &b, DefaultEpsilon32, DefaultMaxRelative32))
	assert.False(t, UlpsEqMatrix(&a, &b, DefaultEpsilon32, DefaultMaxUlps))

	// One representation step away stays equal under all three.
	b[7] = math.Nextafter32(a[7], 100)
	assert.True(t, AbsDiffEqMatrix(&a, &b, 1))
	assert.True(t, RelativeEqMatrix(&a, &b, DefaultEpsilon32, DefaultMaxRelative32))
	assert.True(t, UlpsEqMatrix(&a, &b, DefaultEpsilon32, DefaultMaxUlps))
}
