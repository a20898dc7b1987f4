package interpolate

// Linear is a linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points, xs, which take on the values given by vals.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout.
func NewLinear(xs, vals []float64) *Linear {
	checkTable("NewLinear()", xs, vals)
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

// Eval returns the interpolated value at x. Points outside the table are
// extrapolated from the nearest segment.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs.xs[i1], lin.xs.xs[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(lin, xs, out)
}

func (lin *Linear) Range() (lo, hi float64) {
	return lin.xs.xs[0], lin.xs.xs[len(lin.xs.xs)-1]
}
