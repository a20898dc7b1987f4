package cosmo

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/cosmoconv/math/rand"
)

// CheckResult summarizes a round trip test of an inverse table.
type CheckResult struct {
	Measure Measure
	// Worst is the largest relative error |z' - z| / |z| and WorstZ is the
	// redshift where it occurred.
	Worst, WorstZ float64
}

// Check draws n redshifts log-uniformly from [zMin, zMax], converts each to
// measure m and back, and reports the largest relative error. Redshifts
// beyond a turning point of m are skipped, since they cannot be inverted.
// The same seed always draws the same redshifts.
func (mod *Model) Check(m Measure, n int, zMin, zMax float64, seed uint64) (CheckResult, error) {
	if !m.Valid() {
		return CheckResult{}, fmt.Errorf("cosmo: invalid measure %d", int(m))
	}
	if n < 0 {
		return CheckResult{}, fmt.Errorf("cosmo: check needs n >= 0 draws, got %d", n)
	}
	if !(zMin > 0) || !(zMax > zMin) || math.IsInf(zMax, 0) {
		return CheckResult{}, fmt.Errorf(
			"cosmo: check range [%g, %g] is not a finite, positive range", zMin, zMax,
		)
	}

	_, zHi, _, turnHi := mod.InversionLimit(m)
	zs := make([]float64, n)
	rand.New(rand.Xorshift, seed).LogUniformAt(zMin, zMax, zs)

	res := CheckResult{Measure: m}
	for _, z := range zs {
		if turnHi && z >= zHi {
			continue
		}
		v, err := mod.Forward(m, z)
		if err != nil {
			return res, err
		}
		zz, err := mod.Invert(m, v)
		if err != nil {
			return res, err
		}
		if rel := math.Abs(zz-z) / z; rel > res.Worst {
			res.Worst, res.WorstZ = rel, z
		}
	}
	return res, nil
}
