package sort

// Slices shorter than this are handed to Shell.
const manualLen = 25

// Quick sorts a slice in place into increasing order via quicksort (and
// returns the result for convenience). NaNs are not supported.
func Quick(xs []float64) []float64 {
	if len(xs) < manualLen {
		return Shell(xs)
	}
	pivIdx := partition(xs)
	Quick(xs[:pivIdx])
	Quick(xs[pivIdx:])
	return xs
}

// order3 returns three values ordered from smallest to largest.
func order3(x, y, z float64) (min, mid, max float64) {
	if x > y {
		x, y = y, x
	}
	if y > z {
		y, z = z, y
	}
	if x > y {
		x, y = y, x
	}
	return x, y, z
}

// partition rearranges xs into two contiguous groups such that every element
// of the first group is no larger than every element of the second, and
// returns the length of the first group.
func partition(xs []float64) int {
	n, n2 := len(xs), len(xs)/2
	// The median of three is the pivot. The other two act as sentinels, so
	// the scans below need no bounds checks.
	min, mid, max := order3(xs[0], xs[n2], xs[n-1])
	xs[0], xs[n2], xs[n-1] = min, mid, max
	xs[1], xs[n2] = xs[n2], xs[1]

	lo, hi := 1, n-1
	for {
		lo++
		for xs[lo] < mid {
			lo++
		}
		hi--
		for xs[hi] > mid {
			hi--
		}
		if hi < lo {
			break
		}
		xs[lo], xs[hi] = xs[hi], xs[lo]
	}

	xs[1], xs[hi] = xs[hi], xs[1]
	return hi
}

// Shell sorts a slice in place via Shell's method with Knuth's gap sequence
// (and returns the result for convenience).
func Shell(xs []float64) []float64 {
	n := len(xs)
	inc := 1
	for inc <= n {
		inc = inc*3 + 1
	}
	for inc > 1 {
		inc /= 3
		for i := inc; i < n; i++ {
			v := xs[i]
			j := i
			for j >= inc && xs[j-inc] > v {
				xs[j] = xs[j-inc]
				j -= inc
			}
			xs[j] = v
		}
	}
	return xs
}
