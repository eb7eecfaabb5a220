package vmath

import "math"

// --- Scalars ---

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

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }

// Lerp interpolates between a and b by t (unclamped)
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Mod returns the non-negative remainder of a/m
func Mod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}

// ModInt returns the non-negative remainder of a/m
func ModInt(a, m int) int {
	if m <= 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Approach moves current toward target at rate per second, snapping within eps
func Approach(current, target, rate, dt, eps float64) float64 {
	if dt <= 0 {
		return current
	}
	next := current + (target-current)*(1-math.Exp(-rate*dt))
	if math.Abs(target-next) < eps {
		return target
	}
	return next
}

// --- Planar ---

// Dist returns the Euclidean length of (dx, dy)
func Dist(dx, dy float64) float64 { return math.Hypot(dx, dy) }
