package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestDerivQuadratic(t *testing.T) {
	// Second order stencils are exact for quadratics, even on uneven grids.
	xs := []float64{-1, -0.5, 0.1, 0.3, 1, 2.5, 2.7}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x*x - 2*x + 1
	}

	out := make([]float64, len(xs))
	got := Deriv(xs, ys, Out(out))
	require.Equal(t, &out[0], &got[0])

	for i, x := range xs {
		assert.InDelta(t, 6*x-2, got[i], 1e-10, "x = %g", x)
	}
}

func TestDerivSmooth(t *testing.T) {
	xs := floats.LogSpan(make([]float64, 200), 0.1, 10)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Log(x)
	}

	got := Deriv(xs, ys)
	for i, x := range xs {
		assert.InEpsilon(t, 1/x, got[i], 1e-3, "x = %g", x)
	}
}

func TestDerivPanics(t *testing.T) {
	assert.Panics(t, func() { Deriv([]float64{1, 2, 3}, []float64{1, 2}) })
	assert.Panics(t, func() { Deriv([]float64{1, 2}, []float64{1, 2}) })
	assert.Panics(t, func() {
		Deriv([]float64{1, 2, 3}, []float64{1, 2, 3}, Out(make([]float64, 2)))
	})
}

func TestRoot(t *testing.T) {
	assert.Equal(t, 2.0, Root(1, -1, 3, 1))
	assert.Equal(t, 0.5, Root(0, 1, 1, -1))
	assert.Equal(t, 4.0, Root(4, 2, 5, 2))
}

func TestIncreasingRun(t *testing.T) {
	ys := []float64{3, 1, 2, 4, 5, 5, 6}
	tests := []struct{ i, lo, hi int }{
		{0, 0, 0},
		{1, 1, 4},
		{3, 1, 4},
		{4, 1, 4},
		{5, 5, 6},
	}
	for _, test := range tests {
		lo, hi := IncreasingRun(ys, test.i)
		assert.Equal(t, test.lo, lo, "i = %d", test.i)
		assert.Equal(t, test.hi, hi, "i = %d", test.i)
	}
	assert.Panics(t, func() { IncreasingRun(ys, 7) })
}
