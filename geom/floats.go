package geom

import "math"

// Epsilon is the tolerance used by every float comparison in this package,
// matching the tolerance the end-to-end GA scenarios are checked against.
const Epsilon = 1e-4

// FloatEquals reports whether a and b are within Epsilon of each other.
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// FloatLessThan reports whether a is less than b, outside of Epsilon.
func FloatLessThan(a, b float64) bool {
	return a < b-Epsilon
}

// FloatLessEqual reports whether a is less than or within Epsilon of b.
func FloatLessEqual(a, b float64) bool {
	return a <= b+Epsilon
}
