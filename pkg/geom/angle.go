package geom

import "math"

// Degrees returns atan2(dy, dx) in degrees.
func Degrees(dy, dx float64) float64 {
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// NormalizeDegrees folds a into the half-open range (-180, 180].
func NormalizeDegrees(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 360)
	for a > 180 {
		a -= 360
	}
	for a <= -180 {
		a += 360
	}
	return a
}

// RoundHalfUp rounds v to the nearest integer, resolving exact halves toward
// positive infinity.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundTo rounds v to the nearest multiple of step with half-up semantics.
// A non-positive step returns v unchanged.
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return RoundHalfUp(v/step) * step
}
