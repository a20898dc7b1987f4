/*
package calc provides some basic calculus routines for tabulated functions.
*/
package calc

type derivParams struct{ out []float64 }
type internalDerivOption func(*derivParams)
type DerivOption internalDerivOption

// Out supplies a call to Deriv with a slice to write derivatives to.
func Out(out []float64) DerivOption {
	return func(p *derivParams) { p.out = out }
}

func (p *derivParams) loadOptions(opts []DerivOption) {
	for _, opt := range opts {
		opt(p)
	}
}

// Deriv computes the numerical derivative of a sequence of (x, y) points
// with second order finite differences. The points do not need to be
// uniformly spaced, but there must be at least three of them and xs must be
// strictly increasing.
func Deriv(xs, ys []float64, opts ...DerivOption) []float64 {
	n := len(xs)

	p := new(derivParams)
	p.loadOptions(opts)
	out := p.out
	if out == nil {
		out = make([]float64, n)
	}

	if len(ys) != n {
		panic("Length of ys and xs are not the same.")
	} else if len(out) != n {
		panic("Length of out and xs are not the same.")
	} else if n < 3 {
		panic("Deriv needs at least three points.")
	}

	for i := 1; i < n-1; i++ {
		out[i] = threePoint(
			xs[i]-xs[i-1], xs[i+1]-xs[i], ys[i-1], ys[i], ys[i+1],
		)
	}

	// One-sided stencils at the edges.
	h1, h2 := xs[1]-xs[0], xs[2]-xs[1]
	out[0] = (-(2*h1+h2)*h2*ys[0] + (h1+h2)*(h1+h2)*ys[1] - h1*h1*ys[2]) /
		(h1 * h2 * (h1 + h2))
	h1, h2 = xs[n-2]-xs[n-3], xs[n-1]-xs[n-2]
	out[n-1] = (h2*h2*ys[n-3] - (h1+h2)*(h1+h2)*ys[n-2] + (2*h2+h1)*h1*ys[n-1]) /
		(h1 * h2 * (h1 + h2))

	return out
}

// threePoint is the centered derivative at the middle of three points
// separated by hm and hp.
func threePoint(hm, hp, ym, y, yp float64) float64 {
	return (hm*hm*yp - hp*hp*ym + (hp*hp-hm*hm)*y) / (hm * hp * (hm + hp))
}

// Root returns the zero of the line through (x0, y0) and (x1, y1). If the
// line is flat, x0 is returned.
func Root(x0, y0, x1, y1 float64) float64 {
	if y1 == y0 {
		return x0
	}
	return x0 - y0*(x1-x0)/(y1-y0)
}

// IncreasingRun returns the widest index range [lo, hi] which contains i and
// over which ys is strictly increasing.
func IncreasingRun(ys []float64, i int) (lo, hi int) {
	if i < 0 || i >= len(ys) {
		panic("Index out of range.")
	}
	lo, hi = i, i
	for lo > 0 && ys[lo-1] < ys[lo] {
		lo--
	}
	for hi < len(ys)-1 && ys[hi+1] > ys[hi] {
		hi++
	}
	return lo, hi
}
