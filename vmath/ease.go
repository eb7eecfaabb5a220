package vmath

import "math"

// EaseFunc maps linear progress in [0, 1] to eased progress
type EaseFunc func(t float64) float64

// Linear is the identity ease
func Linear(t float64) float64 { return Clamp01(t) }

// EaseOutCubic decelerates to zero velocity
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// EaseOutQuart decelerates harder than cubic (power3.out in timeline libraries)
func EaseOutQuart(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u*u
}

// EaseOutExpo decelerates exponentially, exact at both ends
func EaseOutExpo(t float64) float64 {
	t = Clamp01(t)
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseOutQuint decelerates harder than quart (power4.out in timeline libraries)
func EaseOutQuint(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u*u*u
}
