package cosmo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/cosmoconv/math/sort"
)

// SamplerConfig describes the redshift grid that the inverse tables are
// built on. The grid has three parts:
//
//   - NegativeSamples points log-spaced in 1 + z between 10^-NegativeDecades
//     and 1. These resolve the future, where every measure changes quickly
//     as z -> -1.
//   - LinearSamples points evenly spaced in [-LinearWidth, LinearWidth],
//     always including z = 0.
//   - LogSamples points log-spaced in z between ZMin and ZMax.
type SamplerConfig struct {
	NegativeSamples int
	NegativeDecades float64
	LinearSamples   int
	LinearWidth     float64
	LogSamples      int
	ZMin, ZMax      float64
}

// DefaultSamplerConfig returns a grid which inverts every distance to a
// relative accuracy better than 1e-3 over 1e-3 < z < 1e3.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		NegativeSamples: 160,
		NegativeDecades: 4,
		LinearSamples:   41,
		LinearWidth:     0.1,
		LogSamples:      200,
		ZMin:            1e-4,
		ZMax:            1e4,
	}
}

func (c SamplerConfig) validate() error {
	switch {
	case c.NegativeSamples < 2:
		return fmt.Errorf("cosmo: NegativeSamples = %d, but must be >= 2", c.NegativeSamples)
	case c.LinearSamples < 3:
		return fmt.Errorf("cosmo: LinearSamples = %d, but must be >= 3", c.LinearSamples)
	case c.LogSamples < 2:
		return fmt.Errorf("cosmo: LogSamples = %d, but must be >= 2", c.LogSamples)
	case !(c.NegativeDecades > 0) || math.IsInf(c.NegativeDecades, 0):
		return fmt.Errorf("cosmo: NegativeDecades = %g, but must be > 0", c.NegativeDecades)
	case !(c.LinearWidth > 0) || !(c.LinearWidth < 1):
		return fmt.Errorf("cosmo: LinearWidth = %g, but must be in (0, 1)", c.LinearWidth)
	case !(c.ZMin > 0) || !(c.ZMax > c.ZMin) || math.IsInf(c.ZMax, 0):
		return fmt.Errorf("cosmo: [ZMin, ZMax] = [%g, %g] is not a finite, "+
			"positive range", c.ZMin, c.ZMax)
	}
	return nil
}

// sampleTol is the separation below which two redshifts are merged.
const sampleTol = 1e-12

// Sample returns the sorted, deduplicated redshift grid described by c.
// Every returned redshift is finite and > -1.
func Sample(c SamplerConfig) ([]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	// The endpoint 1 + z = 1 is left to the linear band.
	neg := floats.LogSpan(
		make([]float64, c.NegativeSamples+1), math.Pow(10, -c.NegativeDecades), 1,
	)
	neg = neg[:c.NegativeSamples]
	for i := range neg {
		neg[i] -= 1
	}

	// Built from z = 0 outwards so that the present is sampled exactly.
	half := floats.Span(make([]float64, (c.LinearSamples+1)/2), 0, c.LinearWidth)
	lin := make([]float64, 0, 2*len(half))
	for _, z := range half {
		lin = append(lin, z)
		if z > 0 {
			lin = append(lin, -z)
		}
	}

	pos := floats.LogSpan(make([]float64, c.LogSamples), c.ZMin, c.ZMax)

	zs := make([]float64, 0, len(neg)+len(lin)+len(pos))
	zs = append(zs, neg...)
	zs = append(zs, lin...)
	zs = append(zs, pos...)

	zs = sort.Filter(zs, func(z float64) bool {
		return z > -1 && !math.IsInf(z, 0)
	})
	zs = sort.Quick(zs)
	return sort.Unique(zs, sampleTol), nil
}
