package cosmo

import (
	"math"

	"github.com/phil-mansfield/cosmoconv/units"
)

// criticalDensity returns 3 H^2 / (8 pi G) in Msun / Mpc^3 for H in
// km/s/Mpc.
func criticalDensity(hubble float64) float64 {
	hMks := hubble * 1e3 / units.MpcMks
	rho := 3 * hMks * hMks / (8 * math.Pi * units.GMks)
	return rho * math.Pow(units.MpcMks, 3) / units.MSunMks
}

// RhoCritical calculates the critical density of a flat matter + Lambda
// universe. This shows up (among other places) in halo definitions and in
// the definitions of the omegas (OmegaFoo = pFoo / pCritical). H0 is in
// km/s/Mpc and the returned value is in cosmological units, (Msun/h) /
// (Mpc/h)^3.
func RhoCritical(H0, omegaM, omegaL, z float64) float64 {
	h100 := H0 / 100
	return criticalDensity(H0*HubbleFrac(omegaM, omegaL, z)) / (h100 * h100)
}

// RhoAverage calculates the average density of matter in a flat matter +
// Lambda universe. The returned value is in cosmological units.
func RhoAverage(H0, omegaM, omegaL, z float64) float64 {
	return RhoCritical(H0, omegaM, omegaL, 0) * omegaM * math.Pow(1+z, 3.0)
}

// CriticalDensity returns the critical density at z in Msun / Mpc^3.
func (mod *Model) CriticalDensity(z float64) (float64, error) {
	if err := CheckRedshift("Model.CriticalDensity", z); err != nil {
		return 0, err
	}
	return criticalDensity(mod.engine.HubbleParameter(z)), nil
}

// density returns omega0 times the present critical density, scaled to z
// by scale(a).
func (mod *Model) density(
	op string, z, omega0 float64, scale func(a float64) float64,
) (float64, error) {
	if err := CheckRedshift(op, z); err != nil {
		return 0, err
	}
	return omega0 * criticalDensity(mod.HubbleConstant()) * scale(1/(1+z)), nil
}

func matterScaling(a float64) float64    { return 1 / (a * a * a) }
func radiationScaling(a float64) float64 { return 1 / (a * a * a * a) }
func curvatureScaling(a float64) float64 { return 1 / (a * a) }

// MatterDensity returns the mean matter density at z in Msun / Mpc^3.
func (mod *Model) MatterDensity(z float64) (float64, error) {
	return mod.density("Model.MatterDensity", z, mod.p.OmegaM, matterScaling)
}

// RadiationDensity returns the radiation energy density at z divided by
// c^2, in Msun / Mpc^3.
func (mod *Model) RadiationDensity(z float64) (float64, error) {
	return mod.density("Model.RadiationDensity", z, mod.p.OmegaR, radiationScaling)
}

// DarkEnergyDensity returns the dark energy density at z divided by c^2,
// in Msun / Mpc^3.
func (mod *Model) DarkEnergyDensity(z float64) (float64, error) {
	return mod.density("Model.DarkEnergyDensity", z, mod.p.OmegaL,
		mod.engine.DarkEnergyScaling)
}

// BaryonDensity returns the mean baryon density at z in Msun / Mpc^3. It
// returns an *UnsupportedError if the model was built without a baryon
// density.
func (mod *Model) BaryonDensity(z float64) (float64, error) {
	if !mod.p.HasBaryons() {
		return 0, &UnsupportedError{
			Op:     "Model.BaryonDensity",
			Reason: "the model was built without a baryon density (see WithBaryons)",
		}
	}
	return mod.density("Model.BaryonDensity", z, mod.p.OmegaB, matterScaling)
}

// omega returns omega0 scale(a) / E(z)^2.
func (mod *Model) omega(
	op string, z, omega0 float64, scale func(a float64) float64,
) (float64, error) {
	if err := CheckRedshift(op, z); err != nil {
		return 0, err
	}
	e := mod.engine.E(z)
	return omega0 * scale(1/(1+z)) / (e * e), nil
}

// OmegaMatter returns the matter density parameter at z.
func (mod *Model) OmegaMatter(z float64) (float64, error) {
	return mod.omega("Model.OmegaMatter", z, mod.p.OmegaM, matterScaling)
}

// OmegaRadiation returns the radiation density parameter at z.
func (mod *Model) OmegaRadiation(z float64) (float64, error) {
	return mod.omega("Model.OmegaRadiation", z, mod.p.OmegaR, radiationScaling)
}

// OmegaCurvature returns the curvature density parameter at z.
func (mod *Model) OmegaCurvature(z float64) (float64, error) {
	return mod.omega("Model.OmegaCurvature", z, mod.p.OmegaK, curvatureScaling)
}

// OmegaDarkEnergy returns the dark energy density parameter at z.
func (mod *Model) OmegaDarkEnergy(z float64) (float64, error) {
	return mod.omega("Model.OmegaDarkEnergy", z, mod.p.OmegaL,
		mod.engine.DarkEnergyScaling)
}

// DarkEnergyEOS returns the dark energy equation of state at z,
// w = w0 + wa z / (1 + z).
func (mod *Model) DarkEnergyEOS(z float64) (float64, error) {
	if err := CheckRedshift("Model.DarkEnergyEOS", z); err != nil {
		return 0, err
	}
	return mod.p.W0 + mod.p.Wa*z/(1+z), nil
}
