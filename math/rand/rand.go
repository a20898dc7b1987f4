/*
package rand provides small, seedable pseudo random number generators used
for spot checks of tabulated functions.

	gen := New(Xorshift, 1337)
	zs := make([]float64, 100)
	gen.LogUniformAt(1e-3, 1e3, zs)

The same GeneratorType and seed always produce the same sequence.
*/
package rand

import (
	"fmt"
	"math"
)

// source produces values uniformly in [0, 1).
type source interface {
	Float64() float64
}

// GeneratorType selects the algorithm behind a Generator.
type GeneratorType uint8

const (
	// Xorshift is Marsaglia's xor128. It is the fastest choice.
	Xorshift GeneratorType = iota
	// Golang is the PCG generator of math/rand/v2.
	Golang
)

func (gt GeneratorType) String() string {
	switch gt {
	case Xorshift:
		return "xorshift"
	case Golang:
		return "golang"
	}
	return fmt.Sprintf("GeneratorType(%d)", int(gt))
}

// Generator is a random number generator. A Generator is not safe for
// concurrent use.
type Generator struct {
	src source
}

// New returns a generator of type gt seeded with seed.
func New(gt GeneratorType, seed uint64) *Generator {
	switch gt {
	case Xorshift:
		return &Generator{newXorshift(seed)}
	case Golang:
		return &Generator{newGolang(seed)}
	}
	panic(fmt.Sprintf("rand: unrecognized %s", gt))
}

// Uniform returns a float uniformly at random within the range [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	return gen.src.Float64()*(high-low) + low
}

// UniformAt fills target with floats drawn uniformly from [low, high).
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	for i := range target {
		target[i] = gen.Uniform(low, high)
	}
}

// LogUniformAt fills target with floats whose logarithms are uniform in
// [log(low), log(high)). Both limits must be positive.
func (gen *Generator) LogUniformAt(low, high float64, target []float64) {
	gen.UniformAt(math.Log(low), math.Log(high), target)
	for i := range target {
		target[i] = math.Exp(target[i])
	}
}
