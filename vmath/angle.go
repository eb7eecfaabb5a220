package vmath

import "math"

// Angles in this package are degrees measured from 12 o'clock, increasing clockwise,
// in screen space (y grows downward).

// DegToRad converts degrees to radians
func DegToRad(d float64) float64 { return d * math.Pi / 180 }

// RadToDeg converts radians to degrees
func RadToDeg(r float64) float64 { return r * 180 / math.Pi }

// AngleTop0 returns the angle of (dx, dy) with 0 at the top, clockwise, in [0, 360)
func AngleTop0(dx, dy float64) float64 {
	deg := RadToDeg(math.Atan2(dy, dx)) + 90
	return Mod(deg, 360)
}

// AngularDistance returns the shortest unsigned distance between two angles, in [0, 180]
func AngularDistance(a, b float64) float64 {
	d := Mod(a-b, 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// PolarTop0 returns the screen-space point at radius r and top-0 angle deg around (cx, cy)
func PolarTop0(cx, cy, r, deg float64) (x, y float64) {
	rad := DegToRad(deg - 90)
	return cx + math.Cos(rad)*r, cy + math.Sin(rad)*r
}
