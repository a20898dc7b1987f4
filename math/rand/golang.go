package rand

import "math/rand/v2"

func newGolang(seed uint64) source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
