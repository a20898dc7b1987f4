package flrw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		f      func(float64) float64
		lo, hi float64
		want   float64
	}{
		{func(x float64) float64 { return 1 }, 0, 2, 2},
		{func(x float64) float64 { return x * x }, 0, 3, 9},
		{func(x float64) float64 { return 1 / x }, 1e-3, 1e3, math.Log(1e6)},
		{math.Exp, 0.5, 1, math.E - math.Exp(0.5)},
		{math.Sqrt, 4, 1, -14.0 / 3},
		{math.Cos, 1, 1, 0},
	}

	for i := range tests {
		got := integrate(tests[i].f, tests[i].lo, tests[i].hi)
		assert.InDelta(t, tests[i].want, got, 1e-10, "test %d", i)
	}
}
