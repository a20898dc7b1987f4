package cosmo

import (
	"math"

	"github.com/phil-mansfield/cosmoconv/units"
)

// HubbleFrac calculates h(z) = H(z)/H0 for a flat universe containing only
// matter and a cosmological constant.
func HubbleFrac(omegaM, omegaL, z float64) float64 {
	return math.Sqrt(omegaM*math.Pow(1.0+z, 3.0) + omegaL)
}

// HubbleConstant returns H0 in km/s/Mpc.
func (mod *Model) HubbleConstant() float64 { return 100 * mod.p.H }

// E returns H(z) / H0.
func (mod *Model) E(z float64) (float64, error) {
	if err := CheckRedshift("Model.E", z); err != nil {
		return 0, err
	}
	return reached("Model.E", z, mod.engine.E(z))
}

// HubbleParameter returns H(z) in km/s/Mpc.
func (mod *Model) HubbleParameter(z float64) (float64, error) {
	if err := CheckRedshift("Model.HubbleParameter", z); err != nil {
		return 0, err
	}
	return reached("Model.HubbleParameter", z, mod.engine.HubbleParameter(z))
}

// HubbleDistance returns c / H0.
func (mod *Model) HubbleDistance() units.Length { return mod.engine.HubbleDistance() }

// HubbleTime returns 1 / H0.
func (mod *Model) HubbleTime() units.Duration { return mod.engine.HubbleTime() }

// Age returns the age of the universe at z. It is +Inf for models without
// matter or radiation.
func (mod *Model) Age(z float64) (units.Duration, error) {
	if err := CheckRedshift("Model.Age", z); err != nil {
		return 0, err
	}
	t, err := reached("Model.Age", z, float64(mod.engine.Age(z)))
	return units.Duration(t), err
}

// ComovingVolume returns the all-sky comoving volume within z in Mpc^3.
func (mod *Model) ComovingVolume(z float64) (float64, error) {
	if err := CheckRedshift("Model.ComovingVolume", z); err != nil {
		return 0, err
	}
	return reached("Model.ComovingVolume", z, mod.engine.ComovingVolume(z))
}

// ComovingVolumeElement returns dV / dz / dOmega at z in Mpc^3 / sr.
func (mod *Model) ComovingVolumeElement(z float64) (float64, error) {
	if err := CheckRedshift("Model.ComovingVolumeElement", z); err != nil {
		return 0, err
	}
	return reached("Model.ComovingVolumeElement", z, mod.engine.ComovingVolumeElement(z))
}
