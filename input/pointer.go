package input

import (
	"github.com/lixenwraith/ringdial/geometry"
)

// PointerState is the last pointer sample in page space and ring-polar form
type PointerState struct {
	X, Y    float64
	Angle   float64
	Dist    float64
	Present bool
}

// Sample records a page-space position against the current geometry
func (p *PointerState) Sample(g geometry.Geometry, x, y float64) {
	p.X, p.Y = x, y
	p.Angle, p.Dist = g.Polar(x, y)
	p.Present = true
}

// Reset marks the pointer absent
func (p *PointerState) Reset() {
	*p = PointerState{}
}

// DragState tracks one coarse-pointer rotation gesture
type DragState struct {
	Active         bool
	StartY         float64
	StartRotation  float64
	StartedInInner bool
}

// WheelDelta picks the larger-magnitude axis of a wheel sample; ties go to the horizontal axis
func WheelDelta(dx, dy float64) float64 {
	if abs(dy) > abs(dx) {
		return dy
	}
	return dx
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
