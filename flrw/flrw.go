/*
package flrw evaluates the analytic integrals of a Friedmann-Lemaitre-
Robertson-Walker cosmology: the expansion rate E(z), line-of-sight and
transverse comoving distances, luminosity and angular diameter distances,
lookback times, ages and comoving volumes.

An Engine knows nothing about sampling or inversion. It is a pure function of
its Params and is safe for concurrent use.
*/
package flrw

import (
	"math"

	"github.com/phil-mansfield/cosmoconv/units"
)

// Params are the density parameters of a cosmology at z = 0. H is the
// dimensionless Hubble constant, H0 = 100 h km/s/Mpc. The caller is
// responsible for closure, OmegaM + OmegaR + OmegaK + OmegaL = 1.
type Params struct {
	H                              float64
	OmegaM, OmegaR, OmegaK, OmegaL float64
	W0, Wa                         float64
}

// Engine evaluates distances and times for a fixed set of Params.
type Engine struct {
	p          Params
	sqrtK      float64
	hubbleDist units.Length
	hubbleTime units.Duration
	lcdm       bool
}

// New creates an Engine.
func New(p Params) *Engine {
	return &Engine{
		p:          p,
		sqrtK:      math.Sqrt(math.Abs(p.OmegaK)),
		hubbleDist: units.Length(units.HubbleDistance100 / p.H),
		hubbleTime: units.Duration(units.HubbleTime100 / p.H),
		lcdm:       p.W0 == -1 && p.Wa == 0,
	}
}

func (e *Engine) Params() Params { return e.p }

// HubbleDistance returns c / H0.
func (e *Engine) HubbleDistance() units.Length { return e.hubbleDist }

// HubbleTime returns 1 / H0.
func (e *Engine) HubbleTime() units.Duration { return e.hubbleTime }

// DarkEnergyScaling returns rho_DE(a) / rho_DE(a = 1) for the CPL equation of
// state w(a) = w0 + wa (1 - a).
func (e *Engine) DarkEnergyScaling(a float64) float64 {
	if e.lcdm {
		return 1
	}
	w0, wa := e.p.W0, e.p.Wa
	return math.Pow(a, -3*(1+w0+wa)) * math.Exp(-3*wa*(1-a))
}

// a2E returns a^2 E(a). This stays finite as a -> 0 whenever OmegaR > 0 and
// goes to zero like sqrt(a) otherwise, which keeps the integrands below
// well behaved in u = sqrt(a).
func (e *Engine) a2E(a float64) float64 {
	return math.Sqrt(e.a4E2(a))
}

func (e *Engine) a4E2(a float64) float64 {
	p := &e.p
	a2 := a * a
	return p.OmegaR + p.OmegaM*a + p.OmegaK*a2 +
		p.OmegaL*a2*a2*e.DarkEnergyScaling(a)
}

// bounceSamples is the number of scale factors Bounce checks per decade.
const bounceSamples = 400

// Bounce reports whether the model has no big bang: whether H(a)^2 drops
// to zero or below somewhere in the past, 1e-10 <= a <= 1. If so, it
// returns the largest such scale factor found. Integrals reaching past that
// point are NaN.
func (e *Engine) Bounce() (a float64, ok bool) {
	const decades = 10
	n := decades * bounceSamples
	for i := 0; i <= n; i++ {
		a := math.Pow(10, -decades*float64(i)/float64(n))
		if !(e.a4E2(a) > 0) {
			return a, true
		}
	}
	return 0, false
}

// E returns H(z) / H0.
func (e *Engine) E(z float64) float64 {
	if z == 0 {
		return 1
	}
	a := 1 / (1 + z)
	return e.a2E(a) / (a * a)
}

// HubbleParameter returns H(z) in km/s/Mpc.
func (e *Engine) HubbleParameter(z float64) float64 {
	return 100 * e.p.H * e.E(z)
}

// comovingIntegrand is dchi/du in units of the Hubble distance.
func (e *Engine) comovingIntegrand(u float64) float64 {
	return 2 * u / e.a2E(u*u)
}

// timeIntegrand is dt/du in units of the Hubble time.
func (e *Engine) timeIntegrand(u float64) float64 {
	return 2 * u * u * u / e.a2E(u*u)
}

// Comoving returns the line-of-sight comoving distance to z. Negative
// redshifts (the future) give negative distances.
func (e *Engine) Comoving(z float64) units.Length {
	if z <= -1 {
		return units.Length(math.NaN())
	}
	u := math.Sqrt(1 / (1 + z))
	return units.Length(float64(e.hubbleDist) *
		integrate(e.comovingIntegrand, u, 1))
}

// ComovingBetween returns the line-of-sight comoving distance from z1 to z2.
func (e *Engine) ComovingBetween(z1, z2 float64) units.Length {
	return e.Comoving(z2) - e.Comoving(z1)
}

// curve maps a line-of-sight comoving distance to a transverse comoving
// distance.
func (e *Engine) curve(chi units.Length) units.Length {
	dh := float64(e.hubbleDist)
	x := e.sqrtK * float64(chi) / dh
	switch {
	case e.p.OmegaK > 0:
		return units.Length(dh / e.sqrtK * math.Sinh(x))
	case e.p.OmegaK < 0:
		return units.Length(dh / e.sqrtK * math.Sin(x))
	default:
		return chi
	}
}

// Transverse returns the transverse comoving distance to z.
func (e *Engine) Transverse(z float64) units.Length {
	return e.curve(e.Comoving(z))
}

// TransverseBetween returns the transverse comoving distance between z1 and
// z2.
func (e *Engine) TransverseBetween(z1, z2 float64) units.Length {
	return e.curve(e.ComovingBetween(z1, z2))
}

// Luminosity returns the luminosity distance to z.
func (e *Engine) Luminosity(z float64) units.Length {
	return e.Transverse(z) * units.Length(1+z)
}

// LuminosityBetween returns the luminosity distance to a source at z2 seen by
// an observer at z1. Luminosity distances do not add, so this is computed
// from the relative transverse distance and the relative redshift
// (1 + z2)/(1 + z1) via the reciprocity relation.
func (e *Engine) LuminosityBetween(z1, z2 float64) units.Length {
	dm := e.TransverseBetween(z1, z2)
	return dm * units.Length((1+z2)/((1+z1)*(1+z1)))
}

// AngularDiameter returns the angular diameter distance to z.
func (e *Engine) AngularDiameter(z float64) units.Length {
	return e.Transverse(z) / units.Length(1+z)
}

// AngularDiameterBetween returns the angular diameter distance to a source
// at z2 seen by an observer at z1.
func (e *Engine) AngularDiameterBetween(z1, z2 float64) units.Length {
	return e.TransverseBetween(z1, z2) / units.Length(1+z2)
}

// Lookback returns the lookback time to z.
func (e *Engine) Lookback(z float64) units.Duration {
	if z <= -1 {
		return units.Duration(math.NaN())
	}
	u := math.Sqrt(1 / (1 + z))
	return units.Duration(float64(e.hubbleTime) *
		integrate(e.timeIntegrand, u, 1))
}

// LookbackBetween returns the time elapsed between z2 and z1.
func (e *Engine) LookbackBetween(z1, z2 float64) units.Duration {
	return e.Lookback(z2) - e.Lookback(z1)
}

// Age returns the age of the universe at z. Without matter or radiation the
// expansion is never decelerated and the age diverges, so +Inf is returned.
func (e *Engine) Age(z float64) units.Duration {
	if z <= -1 {
		return units.Duration(math.NaN())
	}
	if e.p.OmegaM == 0 && e.p.OmegaR == 0 {
		return units.Duration(math.Inf(1))
	}
	u := math.Sqrt(1 / (1 + z))
	// The first panel is split off so that the logarithmic panels used by
	// integrate never see u = 0.
	u0 := u * 1e-4
	t := integrate(e.timeIntegrand, 0, u0) + integrate(e.timeIntegrand, u0, u)
	return units.Duration(float64(e.hubbleTime) * t)
}

// ComovingVolume returns the comoving volume in Mpc^3 enclosed within z over
// the whole sky.
func (e *Engine) ComovingVolume(z float64) float64 {
	dh := float64(e.hubbleDist)
	dm := float64(e.Transverse(z))
	if e.p.OmegaK == 0 {
		return 4 * math.Pi / 3 * dm * dm * dm
	}

	ok, sk := e.p.OmegaK, e.sqrtK
	x := dm / dh
	var arc float64
	if ok > 0 {
		arc = math.Asinh(sk*x) / sk
	} else {
		arc = math.Asin(sk*x) / sk
	}
	return 4 * math.Pi * dh * dh * dh / (2 * ok) *
		(x*math.Sqrt(1+ok*x*x) - arc)
}

// ComovingVolumeElement returns dV/dz/dOmega at z in Mpc^3 / sr.
func (e *Engine) ComovingVolumeElement(z float64) float64 {
	dm := float64(e.Transverse(z))
	return float64(e.hubbleDist) * dm * dm / e.E(z)
}
