package interpolate

type searcher struct {
	xs     []float64
	x0, dx float64
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.dx = (xs[len(xs)-1] - s.x0) / float64(len(xs)-1)
}

// search returns the index of the table segment containing x. Points outside
// the table map to the first or last segment.
func (s *searcher) search(x float64) int {
	n := len(s.xs)
	if x <= s.xs[0] {
		return 0
	} else if x >= s.xs[n-1] {
		return n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < n-1 && s.xs[guess] <= x && s.xs[guess+1] >= x {
		return guess
	}

	// Binary search.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
