package vmath

import (
	"math"
)

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves a toward b by fraction t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or +1
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// WrapAngle normalizes an angle to (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a == 0 {
		// Mod maps +π to -π, keep the upper bound inclusive
		return math.Pi
	}
	return a - math.Pi
}

// AngleDelta returns the signed shortest rotation from a to b
func AngleDelta(a, b float64) float64 {
	return WrapAngle(b - a)
}

// LerpAngle moves angle a toward b by fraction t along the shortest arc
// Result is normalized to (-π, π]
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + AngleDelta(a, b)*t)
}
