package interpolate

import (
	"gonum.org/v1/gonum/interp"
)

// Monotone is a Fritsch-Butland monotone cubic backed by gonum's interp
// package, extended with linear extrapolation along the end secants.
type Monotone struct {
	fb       interp.FritschButland
	xs, ys   []float64
	dLo, dHi float64
}

// NewMonotone fits a Fritsch-Butland interpolant through (xs, ys). xs must be
// strictly increasing.
func NewMonotone(xs, ys []float64) (*Monotone, error) {
	checkTable("NewMonotone()", xs, ys)

	m := &Monotone{xs: xs, ys: ys}
	if err := m.fb.Fit(xs, ys); err != nil {
		return nil, err
	}

	n := len(xs)
	m.dLo = (ys[1] - ys[0]) / (xs[1] - xs[0])
	m.dHi = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])
	return m, nil
}

func (m *Monotone) Eval(x float64) float64 {
	n := len(m.xs)
	if x < m.xs[0] {
		return m.ys[0] + m.dLo*(x-m.xs[0])
	} else if x > m.xs[n-1] {
		return m.ys[n-1] + m.dHi*(x-m.xs[n-1])
	}
	return m.fb.Predict(x)
}

func (m *Monotone) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(m, xs, out)
}

func (m *Monotone) Range() (lo, hi float64) {
	return m.xs[0], m.xs[len(m.xs)-1]
}
