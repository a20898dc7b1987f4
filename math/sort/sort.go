/*
package sort provides functions for sorting float64 slices without the
overhead of Go's interfaces.
*/
package sort

// Unique removes adjacent duplicates from a sorted slice in place and
// returns the shortened slice. Two values closer than tol are considered
// duplicates, and the first of them is kept.
func Unique(xs []float64, tol float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	n := 1
	for i := 1; i < len(xs); i++ {
		if xs[i]-xs[n-1] > tol {
			xs[n] = xs[i]
			n++
		}
	}
	return xs[:n]
}

// Filter removes every element of xs for which keep returns false, in place,
// and returns the shortened slice.
func Filter(xs []float64, keep func(float64) bool) []float64 {
	n := 0
	for _, x := range xs {
		if keep(x) {
			xs[n] = x
			n++
		}
	}
	return xs[:n]
}
