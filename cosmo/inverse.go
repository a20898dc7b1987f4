package cosmo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/cosmoconv/math/calc"
	"github.com/phil-mansfield/cosmoconv/math/interpolate"
	"github.com/phil-mansfield/cosmoconv/units"
)

// inverse maps the values of one distance measure back to redshift.
//
// The table only covers the branch of the measure which increases
// monotonically through z = 0. Most measures increase over the whole grid,
// but D_A always has a maximum at z ~ 1.6 and D_L has a minimum in the far
// future, and closed models can turn over D_M too. Past a turning point the
// inverse is clamped to the turning redshift, since larger values have no
// solution on this branch. The same holds where the table ends because the
// model never reaches the next sample, as in a universe that recollapses.
type inverse struct {
	in interpolate.Interpolator
	// Redshift and value ranges of the table.
	zLo, zHi, vLo, vHi float64
	// Whether the measure turns over at either end, and the redshifts where
	// it does.
	turnLo, turnHi bool
	limLo, limHi   float64
}

// newInverse builds an inverse from a measure tabulated at ascending
// redshifts. zs must contain 0.
func newInverse(
	m Measure, scheme interpolate.Scheme, zs, vals []float64,
) (*inverse, int, error) {
	// Drop samples where the integrals failed.
	fz, fv := make([]float64, 0, len(zs)), make([]float64, 0, len(zs))
	i0 := -1
	for i := range zs {
		if math.IsNaN(vals[i]) || math.IsInf(vals[i], 0) {
			continue
		}
		if zs[i] == 0 {
			i0 = len(fz)
		}
		fz, fv = append(fz, zs[i]), append(fv, vals[i])
	}
	dropped := len(zs) - len(fz)
	if i0 < 0 {
		return nil, dropped, fmt.Errorf("cosmo: %s is not finite at z = 0", m)
	}

	// Samples the model never reaches cut the table off like a turning
	// point does.
	cutLo, cutHi := false, false
	for i := range zs {
		if !math.IsNaN(vals[i]) && !math.IsInf(vals[i], 0) {
			continue
		}
		if zs[i] < fz[0] {
			cutLo = true
		} else if zs[i] > fz[len(fz)-1] {
			cutHi = true
		}
	}

	lo, hi := calc.IncreasingRun(fv, i0)
	if hi-lo+1 < 3 {
		return nil, dropped, fmt.Errorf(
			"cosmo: %s only increases over %d samples near z = 0", m, hi-lo+1,
		)
	}

	inv := &inverse{
		zLo: fz[lo], zHi: fz[hi],
		turnLo: lo > 0 || cutLo, turnHi: hi < len(fz)-1 || cutHi,
		limLo: fz[lo], limHi: fz[hi],
	}
	if lo > 0 || hi < len(fz)-1 {
		d := calc.Deriv(fz, fv)
		if lo > 0 {
			inv.limLo = turningPoint(fz, d, lo)
		}
		if hi < len(fz)-1 {
			inv.limHi = turningPoint(fz, d, hi)
		}
	}

	// Sort by value: the value is the independent variable of the table.
	xs := append([]float64{}, fv[lo:hi+1]...)
	idx := make([]int, len(xs))
	floats.Argsort(xs, idx)
	ys := make([]float64, len(xs))
	for i, j := range idx {
		ys[i] = fz[lo+j]
	}
	inv.vLo, inv.vHi = xs[0], xs[len(xs)-1]

	in, err := interpolate.New(scheme, xs, ys)
	if err != nil {
		return nil, dropped, err
	}
	inv.in = in
	return inv, dropped, nil
}

// turningPoint locates the zero of the derivative d closest to the
// extremum at zs[i]. If d does not change sign next to i, zs[i] is returned.
func turningPoint(zs, d []float64, i int) float64 {
	for _, j := range []int{i - 1, i} {
		if j < 0 || j+1 >= len(zs) || d[j]*d[j+1] > 0 {
			continue
		}
		z := calc.Root(zs[j], d[j], zs[j+1], d[j+1])
		if z >= zs[j] && z <= zs[j+1] {
			return z
		}
	}
	return zs[i]
}

// eval returns the redshift at which the measure equals v.
func (inv *inverse) eval(v float64) float64 {
	switch {
	case v > inv.vHi && inv.turnHi:
		return inv.limHi
	case v < inv.vLo && inv.turnLo:
		return inv.limLo
	}

	z := inv.in.Eval(v)
	// Linear extrapolation far into the future can cross z = -1.
	if z <= -1 {
		return inv.zLo
	}
	return z
}

// Invert returns the redshift at which measure m equals value, given in Mpc
// for distances and Gyr for times. Values outside of the tabulated range
// are extrapolated linearly and lose accuracy. For measures which turn over,
// see InversionLimit.
func (mod *Model) Invert(m Measure, value float64) (float64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("cosmo: invalid measure %d", int(m))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &DomainError{
			Op: "Model.Invert", Name: m.String(), Value: value, Want: "finite",
		}
	}
	def := &measureDefs[m]
	return mod.inv[def.table].eval(value * def.scale), nil
}

// InvertQuantity is Invert for a dimensioned value. q must be a length for
// distance measures and a duration for time measures.
func (mod *Model) InvertQuantity(m Measure, q units.Quantity) (float64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("cosmo: invalid measure %d", int(m))
	}
	x, err := q.In(m.Unit())
	if err != nil {
		return 0, &units.DimensionMismatchError{
			Op: "Model.InvertQuantity", Want: m.Kind().Dimension(), Got: q.Dim(),
		}
	}
	return mod.Invert(m, x)
}

// RedshiftAtDistance returns the redshift at which the distance measure m
// equals d.
func (mod *Model) RedshiftAtDistance(m Measure, d units.Length) (float64, error) {
	return mod.InvertQuantity(m, d.Quantity())
}

// RedshiftAtTime returns the redshift at which the time measure m equals t.
func (mod *Model) RedshiftAtTime(m Measure, t units.Duration) (float64, error) {
	return mod.InvertQuantity(m, t.Quantity())
}

// InversionLimit returns the range of redshifts that Invert can return for
// m. An end of the range is a turning point of the measure when turnLo or
// turnHi is set, otherwise it is the edge of the sampled grid and Invert
// extrapolates past it.
func (mod *Model) InversionLimit(m Measure) (zLo, zHi float64, turnLo, turnHi bool) {
	inv := mod.inv[measureDefs[m].table]
	return inv.limLo, inv.limHi, inv.turnLo, inv.turnHi
}

// InversionRange returns the range of values of m covered by the inverse
// table, in Mpc or Gyr.
func (mod *Model) InversionRange(m Measure) (lo, hi float64) {
	def := &measureDefs[m]
	inv := mod.inv[def.table]
	return inv.vLo / def.scale, inv.vHi / def.scale
}
