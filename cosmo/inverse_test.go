package cosmo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/cosmoconv/units"
)

func TestRoundTrip(t *testing.T) {
	models := []*Model{
		must(Default()),
		must(Planck()),
		must(NewCurved(0.69, 0.29, 0.06)),
		must(NewCurved(0.7, 0.3, -0.1)),
		must(NewCPL(0.7, 0.3, 0, 0, -0.9, 0.1)),
	}

	for i, mod := range models {
		for _, m := range Measures() {
			zMax := 1e3
			if m == AngularDiameter {
				// D_A is ill-conditioned near its maximum.
				zMax = 1
			}
			res, err := mod.Check(m, 300, 1e-3, zMax, uint64(i+1))
			require.NoError(t, err)
			assert.Less(t, res.Worst, 1e-3,
				"model %d, %s: worst error at z = %g", i, m, res.WorstZ)
		}
	}
}

func TestRoundTripFuture(t *testing.T) {
	mod := must(Default())
	zs := floats.Span(make([]float64, 100), -0.9, -0.01)
	for _, m := range []Measure{Comoving, TransverseComoving, LightTravel, Lookback, Conformal} {
		for _, z := range zs {
			x, err := mod.Forward(m, z)
			require.NoError(t, err)
			zz, err := mod.Invert(m, x)
			require.NoError(t, err)
			assert.InEpsilon(t, z, zz, 1e-3, "%s at z = %g", m, z)
		}
	}
}

func TestInvertExactAtToday(t *testing.T) {
	mod := must(Default())
	for _, m := range Measures() {
		z, err := mod.Invert(m, 0)
		require.NoError(t, err)
		assert.InDelta(t, 0, z, 1e-12, m.String())
	}
}

func TestScenarioInversion(t *testing.T) {
	mod := must(Default())
	tests := []struct {
		m     Measure
		value float64
		z     float64
		tol   float64
	}{
		{Comoving, 424.833, 0.1, 1e-4},
		{Comoving, 3371.51, 1, 1e-4},
		{Luminosity, 6743.02, 1, 1e-4},
		{AngularDiameter, 1685.755, 1, 1e-3},
		{Lookback, 7.8682, 1, 1e-4},
	}
	for _, test := range tests {
		z, err := mod.Invert(test.m, test.value)
		require.NoError(t, err)
		assert.InEpsilon(t, test.z, z, test.tol, test.m.String())
	}
}

func TestTurningPoints(t *testing.T) {
	mod := must(Default())

	_, zHi, _, turnHi := mod.InversionLimit(AngularDiameter)
	require.True(t, turnHi)
	assert.InDelta(t, 1.6, zHi, 0.15)

	// Past the maximum of D_A there is nothing to invert.
	_, vHi := mod.InversionRange(AngularDiameter)
	z, err := mod.Invert(AngularDiameter, vHi+100)
	require.NoError(t, err)
	assert.Equal(t, zHi, z)

	// D_L goes to zero as z -> -1, so it has a minimum in the future.
	zLo, _, turnLo, _ := mod.InversionLimit(Luminosity)
	require.True(t, turnLo)
	assert.InDelta(t, -0.52, zLo, 0.06)
	vLo, _ := mod.InversionRange(Luminosity)
	z, err = mod.Invert(Luminosity, vLo-100)
	require.NoError(t, err)
	assert.Equal(t, zLo, z)

	for _, m := range []Measure{Comoving, TransverseComoving, LightTravel, Lookback, Conformal} {
		zLo, zHi, turnLo, turnHi := mod.InversionLimit(m)
		assert.False(t, turnLo, m.String())
		assert.False(t, turnHi, m.String())
		assert.Greater(t, zLo, -1.0, m.String())
		assert.InEpsilon(t, 1e4, zHi, 1e-9, m.String())
	}
}

func TestExtrapolation(t *testing.T) {
	mod := must(Default())

	x, err := mod.Forward(Comoving, 2e4)
	require.NoError(t, err)
	z, err := mod.Invert(Comoving, x)
	require.NoError(t, err)
	assert.Greater(t, z, 1e4)

	zLo, _, _, _ := mod.InversionLimit(Comoving)
	z, err = mod.Invert(Comoving, -1e7)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, z, zLo)
	assert.Greater(t, z, -1.0)
}

func TestInvertErrors(t *testing.T) {
	mod := must(Default())

	_, err := mod.Invert(Comoving, math.NaN())
	assert.ErrorIs(t, err, ErrDomain)
	_, err = mod.Invert(Comoving, math.Inf(1))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = mod.Invert(Measure(-3), 10)
	assert.Error(t, err)

	_, err = mod.RedshiftAtDistance(Lookback, 100)
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)
	_, err = mod.RedshiftAtTime(Comoving, 1)
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)
	_, err = mod.InvertQuantity(Luminosity, units.Q(2.7, units.Kelvin))
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)

	_, err = mod.Check(Comoving, 10, 0, 1, 1)
	assert.Error(t, err)
	_, err = mod.Check(Comoving, -1, 1e-3, 1, 1)
	assert.Error(t, err)
}

func TestCheckSeeds(t *testing.T) {
	mod := must(Default())
	res, err := mod.Check(Comoving, 0, 1e-3, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Worst)

	a, err := mod.Check(Luminosity, 20, 1e-3, 10, 7)
	require.NoError(t, err)
	b, err := mod.Check(Luminosity, 20, 1e-3, 10, 7)
	require.NoError(t, err)
	c, err := mod.Check(Luminosity, 20, 1e-3, 10, 8)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.WorstZ, c.WorstZ)
}

func TestInvertQuantity(t *testing.T) {
	mod := must(Default())

	d, err := mod.LuminosityDistance(0.5)
	require.NoError(t, err)
	gly, err := d.In(units.Gly)
	require.NoError(t, err)

	z1, err := mod.InvertQuantity(Luminosity, units.Q(gly, units.Gly))
	require.NoError(t, err)
	z2, err := mod.RedshiftAtDistance(Luminosity, d)
	require.NoError(t, err)
	assert.InDelta(t, z2, z1, 1e-12)
	assert.InEpsilon(t, 0.5, z2, 1e-4)

	lb, err := mod.LookbackTime(0.5)
	require.NoError(t, err)
	z3, err := mod.InvertQuantity(Lookback, units.Q(lb.Myr(), units.Myr))
	require.NoError(t, err)
	z4, err := mod.RedshiftAtTime(Lookback, lb)
	require.NoError(t, err)
	assert.InDelta(t, z4, z3, 1e-12)
	assert.InEpsilon(t, 0.5, z4, 1e-4)
}

func TestConcurrentQueries(t *testing.T) {
	mod := must(Default())
	zs := floats.LogSpan(make([]float64, 64), 1e-2, 100)

	done := make(chan error, len(zs))
	for _, z := range zs {
		go func() {
			x, err := mod.Forward(Comoving, z)
			if err == nil {
				_, err = mod.Invert(Comoving, x)
			}
			done <- err
		}()
	}
	for range zs {
		assert.NoError(t, <-done)
	}
}

func BenchmarkInvert(b *testing.B) {
	mod := must(Default())
	for i := 0; i < b.N; i++ {
		mod.Invert(Comoving, 3371.6)
	}
}
