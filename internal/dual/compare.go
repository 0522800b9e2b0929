package dual

import "math"

// Tolerance is the absolute tolerance used by AlmostEqual.
const Tolerance = 1e-8

// AlmostEqual reports whether |a - b| < Tolerance.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// AlmostEqualSlices reports whether a and b have the same length and all
// elements are pairwise AlmostEqual.
func AlmostEqualSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !AlmostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
