package flrw

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// Gauss-Legendre points per panel.
	panelPoints = 24
	// Panels per factor of two in the integration variable.
	panelsPerOctave = 2
	minPanels       = 2
	maxPanels       = 256
)

// Nodes and weights on [-1, 1]. They are computed once: every call to
// integrate reuses them.
var legendreX, legendreW = legendreNodes(panelPoints)

func legendreNodes(n int) (x, w []float64) {
	x, w = make([]float64, n), make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	return x, w
}

// panel integrates f over [a, b] with a single Gauss-Legendre rule.
func panel(f func(float64) float64, a, b float64) float64 {
	mid, half := (a+b)/2, (b-a)/2
	sum := 0.0
	for i := range legendreX {
		sum += legendreW[i] * f(mid+half*legendreX[i])
	}
	return sum * half
}

// integrate returns the integral of f from lo to hi using composite
// Gauss-Legendre quadrature. The panels are spaced logarithmically, since
// every integrand in this package varies on scales proportional to u.
// lo = 0 is allowed and uses a single panel.
func integrate(f func(float64) float64, lo, hi float64) float64 {
	if lo == hi {
		return 0
	} else if lo > hi {
		return -integrate(f, hi, lo)
	}

	if lo <= 0 {
		return panel(f, lo, hi)
	}

	ratio := hi / lo
	n := int(math.Ceil(math.Log2(ratio) * panelsPerOctave))
	if n < minPanels {
		n = minPanels
	} else if n > maxPanels {
		n = maxPanels
	}

	sum := 0.0
	step := math.Pow(ratio, 1/float64(n))
	a := lo
	for i := 0; i < n; i++ {
		b := a * step
		if i == n-1 {
			b = hi
		}
		sum += panel(f, a, b)
		a = b
	}
	return sum
}
