package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanges(t *testing.T) {
	for _, gt := range []GeneratorType{Xorshift, Golang} {
		gen := New(gt, 1337)
		xs := make([]float64, 1000)
		gen.UniformAt(3, 7, xs)
		for _, x := range xs {
			assert.True(t, x >= 3 && x < 7, "%s: Uniform gave %g", gt, x)
		}

		gen.LogUniformAt(1e-3, 1e3, xs)
		below := 0
		for _, x := range xs {
			assert.True(t, x >= 1e-3 && x < 1e3*(1+1e-12), "%s: LogUniform gave %g", gt, x)
			if x < 1 {
				below++
			}
		}
		// Half the mass is below 1 in log space.
		assert.InDelta(t, 500, below, 100, gt.String())
	}
}

func TestSeedsAreReproducible(t *testing.T) {
	for _, gt := range []GeneratorType{Xorshift, Golang} {
		a, b := New(gt, 7), New(gt, 7)
		for i := 0; i < 10; i++ {
			assert.Equal(t, a.Uniform(0, 1), b.Uniform(0, 1), gt.String())
		}
		assert.NotEqual(t, New(gt, 8).Uniform(0, 1), New(gt, 7).Uniform(0, 1), gt.String())
	}
}

func TestNearbySeedsDiffer(t *testing.T) {
	seeds := []uint64{0, 1, 7, 8, 31, 32, 1 << 32}
	for _, gt := range []GeneratorType{Xorshift, Golang} {
		first := map[float64]uint64{}
		for _, seed := range seeds {
			gen := New(gt, seed)
			x := gen.Uniform(0, 1)
			prev, ok := first[x]
			assert.False(t, ok, "%s: seeds %d and %d share a first draw %g",
				gt, prev, seed, x)
			first[x] = seed
		}
	}
}

func TestUnknownGenerator(t *testing.T) {
	assert.Panics(t, func() { New(GeneratorType(9), 0) })
}

func BenchmarkUniformXorshift(b *testing.B) {
	gen := New(Xorshift, 0)
	for i := 0; i < b.N; i++ {
		gen.Uniform(0, 1)
	}
}
