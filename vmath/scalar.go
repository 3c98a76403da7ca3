// Package vmath holds the float helpers shared by the simulation and its renderers
package vmath

import "math"

// DefaultEpsilon is the absolute tolerance used by callers comparing world coordinates
const DefaultEpsilon = 1e-9

// SafeDiv returns a/b, or (0, false) when b is zero or the quotient is not finite
func SafeDiv(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	q := a / b
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, false
	}
	return q, true
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearlyEqual compares with an absolute tolerance for small magnitudes and a relative one otherwise
func NearlyEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= eps
	}
	return diff <= eps*scale
}

// Remap linearly maps v from [inLo, inHi] to [outLo, outHi]
// A degenerate input range maps everything to outLo
func Remap(v, inLo, inHi, outLo, outHi float64) float64 {
	t, ok := SafeDiv(v-inLo, inHi-inLo)
	if !ok {
		return outLo
	}
	return outLo + t*(outHi-outLo)
}
