package flrw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatParams(h, om, or float64) Params {
	return Params{H: h, OmegaM: om, OmegaR: or, OmegaL: 1 - om - or, W0: -1}
}

// Reference radiation density for h = 0.69, Tcmb = 2.7255 K, Neff = 3.04.
const refOmegaR = 8.77975992071536e-05

func TestComovingReference(t *testing.T) {
	e := New(flatParams(0.69, 0.29, refOmegaR))
	assert.InDelta(t, 424.8, e.Comoving(0.1).Mpc(), 0.1)
	assert.InDelta(t, 3371.6, e.Comoving(1).Mpc(), 0.1)
	assert.InDelta(t, 6743.1, e.Luminosity(1).Mpc(), 0.1)
	assert.InDelta(t, 1685.8, e.AngularDiameter(1).Mpc(), 0.1)
	assert.InDelta(t, 13.79, e.Age(0).Gyr(), 0.01)
}

func TestOpenReference(t *testing.T) {
	p := Params{H: 0.69, OmegaM: 0.29, OmegaR: refOmegaR, OmegaK: 0.06, W0: -1}
	p.OmegaL = 1 - p.OmegaM - p.OmegaR - p.OmegaK
	e := New(p)
	assert.InDelta(t, 423.6, e.Comoving(0.1).Mpc(), 0.1)
	assert.Greater(t, e.Transverse(2).Mpc(), e.Comoving(2).Mpc())
}

func TestClosedTransverse(t *testing.T) {
	p := Params{H: 0.7, OmegaM: 0.3, OmegaK: -0.1, OmegaL: 0.8, W0: -1}
	e := New(p)
	assert.Less(t, e.Transverse(2).Mpc(), e.Comoving(2).Mpc())
}

func TestZeroAndNegativeRedshift(t *testing.T) {
	e := New(flatParams(0.7, 0.3, 0))
	assert.Equal(t, 0.0, e.Comoving(0).Mpc())
	assert.Equal(t, 0.0, e.Lookback(0).Gyr())
	assert.InDelta(t, 1.0, e.E(0), 1e-15)
	assert.Less(t, e.Comoving(-0.5).Mpc(), 0.0)
	assert.Less(t, e.Lookback(-0.5).Gyr(), 0.0)
	assert.True(t, math.IsNaN(e.Comoving(-1).Mpc()))
	assert.True(t, math.IsNaN(e.Age(-2).Gyr()))
}

func TestEinsteinDeSitter(t *testing.T) {
	// Omega_M = 1 has closed forms for every quantity.
	e := New(Params{H: 0.7, OmegaM: 1, W0: -1})
	dh, th := e.HubbleDistance().Mpc(), e.HubbleTime().Gyr()

	for _, z := range []float64{0.01, 0.5, 1, 3, 10, 100} {
		chi := 2 * dh * (1 - 1/math.Sqrt(1+z))
		age := 2 * th / 3 * math.Pow(1+z, -1.5)
		assert.InEpsilon(t, chi, e.Comoving(z).Mpc(), 1e-9, "z = %g", z)
		assert.InEpsilon(t, age, e.Age(z).Gyr(), 1e-9, "z = %g", z)
		assert.InEpsilon(t, 2*th/3-age, e.Lookback(z).Gyr(), 1e-9, "z = %g", z)
		assert.InEpsilon(t, math.Pow(1+z, 1.5), e.E(z), 1e-12, "z = %g", z)
	}
}

func TestRelativeDistances(t *testing.T) {
	e := New(flatParams(0.7, 0.3, 0))
	z1, z2 := 0.5, 2.0

	assert.InDelta(t, e.Comoving(z2).Mpc()-e.Comoving(z1).Mpc(),
		e.ComovingBetween(z1, z2).Mpc(), 1e-9)
	assert.InDelta(t, e.Lookback(z2).Gyr()-e.Lookback(z1).Gyr(),
		e.LookbackBetween(z1, z2).Gyr(), 1e-12)

	// With z1 = 0 the relative forms reduce to the absolute ones.
	assert.InDelta(t, e.Luminosity(z2).Mpc(),
		e.LuminosityBetween(0, z2).Mpc(), 1e-9)
	assert.InDelta(t, e.AngularDiameter(z2).Mpc(),
		e.AngularDiameterBetween(0, z2).Mpc(), 1e-9)

	// Luminosity distance is not additive.
	diff := e.Luminosity(z2).Mpc() - e.Luminosity(z1).Mpc()
	assert.Greater(t, math.Abs(diff-e.LuminosityBetween(z1, z2).Mpc()), 1.0)

	dm := e.TransverseBetween(z1, z2).Mpc()
	assert.InDelta(t, dm/(1+z2), e.AngularDiameterBetween(z1, z2).Mpc(), 1e-9)
}

func TestComovingVolume(t *testing.T) {
	flat := New(flatParams(0.7, 0.3, 0))
	dm := flat.Transverse(1).Mpc()
	assert.InEpsilon(t, 4*math.Pi/3*dm*dm*dm, flat.ComovingVolume(1), 1e-12)

	// Curved volumes agree with the integral of the volume element.
	for _, ok := range []float64{0.1, -0.1} {
		e := New(Params{H: 0.7, OmegaM: 0.3, OmegaK: ok, OmegaL: 0.7 - ok, W0: -1})
		n := 2000
		sum := 0.0
		dz := 1.0 / float64(n)
		for i := 0; i < n; i++ {
			sum += e.ComovingVolumeElement((float64(i) + 0.5) * dz)
		}
		sum *= 4 * math.Pi * dz
		assert.InEpsilon(t, sum, e.ComovingVolume(1), 1e-4, "Omega_K = %g", ok)
	}
}

func TestDarkEnergyScaling(t *testing.T) {
	lcdm := New(flatParams(0.7, 0.3, 0))
	assert.Equal(t, 1.0, lcdm.DarkEnergyScaling(0.3))

	w := New(Params{H: 0.7, OmegaM: 0.3, OmegaL: 0.7, W0: -0.9, Wa: 0})
	require.InDelta(t, 1.0, w.DarkEnergyScaling(1), 1e-15)
	assert.InEpsilon(t, math.Pow(0.5, -0.3), w.DarkEnergyScaling(0.5), 1e-12)

	// w > -1 dark energy was denser in the past, so distances shrink.
	assert.Less(t, w.Comoving(1).Mpc(), lcdm.Comoving(1).Mpc())
}

func TestHubbleParameter(t *testing.T) {
	e := New(flatParams(0.7, 0.3, 0))
	assert.InDelta(t, 70.0, e.HubbleParameter(0), 1e-12)
	assert.InDelta(t, 2997.92458/0.7, e.HubbleDistance().Mpc(), 1e-9)
}

func BenchmarkComoving(b *testing.B) {
	e := New(flatParams(0.7, 0.3, 1e-4))
	for i := 0; i < b.N; i++ {
		e.Comoving(3)
	}
}

func TestBounce(t *testing.T) {
	_, ok := New(flatParams(0.69, 0.29, refOmegaR)).Bounce()
	assert.False(t, ok)
	_, ok = New(Params{H: 0.7, OmegaK: 1, W0: -1}).Bounce()
	assert.False(t, ok, "Milne")

	// A closed, Lambda-dominated model which turns around at a ~ 0.7.
	p := Params{H: 0.7, OmegaM: 0.05, OmegaK: -1, W0: -1}
	p.OmegaL = 1 - p.OmegaM - p.OmegaK
	e := New(p)
	a, ok := e.Bounce()
	require.True(t, ok)
	assert.Greater(t, a, 0.5)
	assert.Less(t, a, 0.75)
	assert.True(t, math.IsNaN(e.Comoving(1).Mpc()))
}

func TestAgeWithoutMatter(t *testing.T) {
	for _, p := range []Params{
		{H: 0.7, OmegaL: 1, W0: -1},
		{H: 0.7, OmegaK: 1, W0: -1},
	} {
		e := New(p)
		assert.True(t, math.IsInf(e.Age(0).Gyr(), 1), "%+v", p)
		assert.False(t, math.IsInf(e.Lookback(1).Gyr(), 0), "%+v", p)
	}
}
