package cosmo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSampleDefault(t *testing.T) {
	zs, err := Sample(DefaultSamplerConfig())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(zs), 390)
	assert.Contains(t, zs, 0.0)
	assert.InDelta(t, -1+1e-4, zs[0], 1e-12)
	assert.InEpsilon(t, 1e4, zs[len(zs)-1], 1e-12)
	for i := 1; i < len(zs); i++ {
		require.Greater(t, zs[i], zs[i-1], "index %d", i)
	}
	for _, z := range zs {
		require.Greater(t, z, -1.0)
	}

	// The linear band is symmetric about z = 0.
	for _, z := range floats.Span(make([]float64, 21), 0, 0.1) {
		assert.Contains(t, zs, z)
		if z > 0 {
			assert.Contains(t, zs, -z)
		}
	}
}

func TestSampleDeduplicates(t *testing.T) {
	sc := DefaultSamplerConfig()
	sc.ZMin, sc.ZMax = 0.01, 0.1
	sc.LogSamples = 2
	zs, err := Sample(sc)
	require.NoError(t, err)

	// 0.1 is in both the linear band and the log band.
	n := 0
	for _, z := range zs {
		if math.Abs(z-0.1) < 1e-9 {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestSampleInvalid(t *testing.T) {
	tests := []func(*SamplerConfig){
		func(sc *SamplerConfig) { sc.NegativeSamples = 1 },
		func(sc *SamplerConfig) { sc.LinearSamples = 2 },
		func(sc *SamplerConfig) { sc.LogSamples = 0 },
		func(sc *SamplerConfig) { sc.NegativeDecades = 0 },
		func(sc *SamplerConfig) { sc.LinearWidth = 1 },
		func(sc *SamplerConfig) { sc.ZMin = 0 },
		func(sc *SamplerConfig) { sc.ZMax = sc.ZMin },
	}
	for i, modify := range tests {
		sc := DefaultSamplerConfig()
		modify(&sc)
		_, err := Sample(sc)
		assert.Error(t, err, "test %d", i)
	}
}
