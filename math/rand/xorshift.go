package rand

// xorshift is Marsaglia's (2003) xor128 generator.
type xorshift struct {
	w, x, y, z uint32
}

// newXorshift spreads seed over the whole state with two splitmix64 steps,
// so that nearby seeds give unrelated streams.
func newXorshift(seed uint64) *xorshift {
	s := seed
	lo, hi := splitmix64(&s), splitmix64(&s)
	gen := &xorshift{
		x: uint32(lo), y: uint32(lo >> 32),
		z: uint32(hi), w: uint32(hi >> 32),
	}
	// The all-zero state is a fixed point.
	if gen.x|gen.y|gen.z|gen.w == 0 {
		gen.x = 123456789
	}
	return gen
}

func splitmix64(s *uint64) uint64 {
	*s += 0x9e3779b97f4a7c15
	z := *s
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (gen *xorshift) next() uint32 {
	t := gen.x ^ (gen.x << 11)
	gen.x, gen.y, gen.z = gen.y, gen.z, gen.w
	gen.w ^= (gen.w >> 19) ^ (t ^ (t >> 8))
	return gen.w
}

// Float64 returns a value in [0, 1) built from the top 53 bits of two steps.
func (gen *xorshift) Float64() float64 {
	hi, lo := uint64(gen.next()>>5), uint64(gen.next()>>6)
	return float64(hi<<26|lo) / (1 << 53)
}
