package geometry

// Rect is an axis-aligned box in css pixels
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the rect midpoint
func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Contains reports whether (x, y) lies inside the rect (right and bottom edges exclusive)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Inset shrinks the rect by d on every side
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Square returns the largest square centred in the rect
func (r Rect) Square() Rect {
	s := min(r.W, r.H)
	cx, cy := r.Center()
	return Rect{X: cx - s/2, Y: cy - s/2, W: s, H: s}
}
