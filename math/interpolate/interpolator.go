/*
package interpolate implements one dimensional interpolators over tabulated
functions. Every interpolator here extrapolates linearly past the ends of its
table instead of failing: callers that care about accuracy outside the table
need to check the range themselves.
*/
package interpolate

import (
	"fmt"
	"strings"
)

// Interpolator is a 1D interpolator. Interpolators are immutable after
// construction, so they may be shared between goroutines.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequeunce of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Range returns the first and last x values of the table.
	Range() (lo, hi float64)
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
	_ Interpolator = &Steffen{}
	_ Interpolator = &Monotone{}
)

// Scheme names an interpolation algorithm.
type Scheme int

const (
	// SteffenScheme is Steffen's (1990) monotone cubic. It never overshoots
	// the data, so monotone tables give monotone interpolants.
	SteffenScheme Scheme = iota
	// FritschButlandScheme is the Fritsch-Butland monotone cubic.
	FritschButlandScheme
	// LinearScheme is piecewise linear interpolation.
	LinearScheme
	// CubicScheme is a natural cubic spline. It is smooth, but can overshoot
	// and is not guaranteed to preserve monotonicity.
	CubicScheme
)

var schemeNames = []string{"steffen", "fritsch-butland", "linear", "cubic"}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseScheme returns the Scheme with the given name.
func ParseScheme(name string) (Scheme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range schemeNames {
		if schemeNames[i] == name {
			return Scheme(i), nil
		}
	}
	return 0, fmt.Errorf(
		"interpolation scheme '%s' isn't one of %s",
		name, strings.Join(schemeNames, ", "),
	)
}

// Monotonic reports whether the scheme preserves the monotonicity of its
// input table.
func (s Scheme) Monotonic() bool {
	return s != CubicScheme
}

// New creates an interpolator of the given scheme through the points
// (xs[i], vals[i]). xs must be strictly increasing.
func New(s Scheme, xs, vals []float64) (Interpolator, error) {
	switch s {
	case SteffenScheme:
		return NewSteffen(xs, vals), nil
	case FritschButlandScheme:
		return NewMonotone(xs, vals)
	case LinearScheme:
		return NewLinear(xs, vals), nil
	case CubicScheme:
		return NewSpline(xs, vals), nil
	}
	return nil, fmt.Errorf("unrecognized interpolation scheme %d", int(s))
}

// evalAll is the shared body of the EvalAll methods.
func evalAll(in Interpolator, xs []float64, out [][]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = in.Eval(x)
	}
	return out[0]
}

// checkTable panics if the table cannot be interpolated.
func checkTable(name string, xs, vals []float64) {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf("Table given to %s has len(xs) = %d "+
			"but len(vals) = %d.", name, len(xs), len(vals)))
	} else if len(xs) <= 1 {
		panic(fmt.Sprintf("Table given to %s has "+
			"length of %d.", name, len(xs)))
	}
	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i+1] > xs[i]) {
			panic(fmt.Sprintf("Table given to %s is not strictly "+
				"increasing at index %d: %g, %g.", name, i, xs[i], xs[i+1]))
		}
	}
}
