package interpolate

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Spline is a 1D natural cubic spline backed by gonum's interp package. It
// is smooth to second order but can overshoot the table, so it is not a
// Monotonic scheme.
type Spline struct {
	nc       interp.NaturalCubic
	xs, ys   []float64
	dLo, dHi float64
}

// NewSpline creates a spline through a table of x and y values. xs must be
// strictly increasing.
func NewSpline(xs, ys []float64) *Spline {
	checkTable("NewSpline()", xs, ys)

	sp := &Spline{xs: xs, ys: ys}
	if err := sp.nc.Fit(xs, ys); err != nil {
		panic(fmt.Sprintf("NewSpline() could not fit table: %s", err))
	}
	n := len(xs)
	sp.dLo = sp.nc.PredictDerivative(xs[0])
	sp.dHi = sp.nc.PredictDerivative(xs[n-1])
	return sp
}

// Eval computes the value of the spline at x. Outside the table the spline
// continues along the tangent at the nearest end.
func (sp *Spline) Eval(x float64) float64 {
	n := len(sp.xs)
	if x < sp.xs[0] {
		return sp.ys[0] + sp.dLo*(x-sp.xs[0])
	} else if x > sp.xs[n-1] {
		return sp.ys[n-1] + sp.dHi*(x-sp.xs[n-1])
	}
	return sp.nc.Predict(x)
}

func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(sp, xs, out)
}

func (sp *Spline) Range() (lo, hi float64) {
	return sp.xs[0], sp.xs[len(sp.xs)-1]
}

// Deriv computes the first derivative of the spline at x, which must be
// within the table.
func (sp *Spline) Deriv(x float64) float64 {
	if lo, hi := sp.Range(); x < lo || x > hi {
		panic(fmt.Sprintf("Point %g given to Spline.Deriv() "+
			"out of bounds [%g, %g].", x, lo, hi))
	}
	return sp.nc.PredictDerivative(x)
}
