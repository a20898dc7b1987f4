package interpolate

import (
	"math"
)

// Steffen is the monotone piecewise cubic of Steffen (1990, A&A 239, 443).
// Each segment's slopes are limited so that the interpolant has no local
// extrema other than those already present in the table. In particular a
// strictly monotone table gives a monotone interpolant, which plain cubic
// splines do not guarantee.
type Steffen struct {
	xs      searcher
	ys, dys []float64
	coeffs  []splineCoeff
	lo, hi  float64
}

// splineCoeff holds one cubic segment, a t^3 + b t^2 + c t + d, where t is
// the offset from the segment's left knot.
type splineCoeff struct {
	a, b, c, d float64
}

func (sc splineCoeff) eval(t float64) float64 {
	return ((sc.a*t+sc.b)*t+sc.c)*t + sc.d
}

func (sc splineCoeff) deriv(t float64) float64 {
	return (3*sc.a*t+2*sc.b)*t + sc.c
}

// NewSteffen creates a Steffen interpolator through the table (xs, ys). xs
// must be strictly increasing.
func NewSteffen(xs, ys []float64) *Steffen {
	checkTable("NewSteffen()", xs, ys)

	st := &Steffen{ys: ys}
	st.xs.init(xs)
	st.lo, st.hi = xs[0], xs[len(xs)-1]
	st.dys = steffenSlopes(xs, ys)

	st.coeffs = make([]splineCoeff, len(xs)-1)
	for i := range st.coeffs {
		h := xs[i+1] - xs[i]
		s := (ys[i+1] - ys[i]) / h
		d0, d1 := st.dys[i], st.dys[i+1]
		st.coeffs[i] = splineCoeff{
			a: (d0 + d1 - 2*s) / (h * h),
			b: (3*s - 2*d0 - d1) / h,
			c: d0,
			d: ys[i],
		}
	}

	return st
}

// steffenSlopes returns the limited derivative at every point of the table.
func steffenSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	dys := make([]float64, n)
	hs, ss := make([]float64, n-1), make([]float64, n-1)
	for i := range hs {
		hs[i] = xs[i+1] - xs[i]
		ss[i] = (ys[i+1] - ys[i]) / hs[i]
	}

	if n == 2 {
		dys[0], dys[1] = ss[0], ss[0]
		return dys
	}

	for i := 1; i < n-1; i++ {
		p := (ss[i-1]*hs[i] + ss[i]*hs[i-1]) / (hs[i-1] + hs[i])
		dys[i] = (sign(ss[i-1]) + sign(ss[i])) *
			math.Min(math.Min(math.Abs(ss[i-1]), math.Abs(ss[i])), 0.5*math.Abs(p))
	}

	p0 := ss[0]*(1+hs[0]/(hs[0]+hs[1])) - ss[1]*hs[0]/(hs[0]+hs[1])
	dys[0] = endSlope(p0, ss[0])

	m := n - 2
	pn := ss[m]*(1+hs[m]/(hs[m]+hs[m-1])) - ss[m-1]*hs[m]/(hs[m]+hs[m-1])
	dys[n-1] = endSlope(pn, ss[m])

	return dys
}

// endSlope limits the parabolic end slope p against the secant s of the
// boundary segment.
func endSlope(p, s float64) float64 {
	switch {
	case p*s <= 0:
		return 0
	case math.Abs(p) > 2*math.Abs(s):
		return 2 * s
	default:
		return p
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Eval evaluates the interpolant at x. Outside the table it continues along
// the limited end slope, which is zero (clamped) if the table flattens out
// at that end.
func (st *Steffen) Eval(x float64) float64 {
	if x < st.lo {
		return st.ys[0] + st.dys[0]*(x-st.lo)
	} else if x > st.hi {
		n := len(st.ys)
		return st.ys[n-1] + st.dys[n-1]*(x-st.hi)
	}

	i := st.xs.search(x)
	return st.coeffs[i].eval(x - st.xs.xs[i])
}

func (st *Steffen) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(st, xs, out)
}

func (st *Steffen) Range() (lo, hi float64) { return st.lo, st.hi }

// Slope returns the derivative of the interpolant at x.
func (st *Steffen) Slope(x float64) float64 {
	if x < st.lo {
		return st.dys[0]
	} else if x > st.hi {
		return st.dys[len(st.dys)-1]
	}
	i := st.xs.search(x)
	return st.coeffs[i].deriv(x - st.xs.xs[i])
}
