package input

import (
	"math"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/sector"
)

// Touch rotates the ring with vertical drags and wheel on coarse pointers
type Touch struct {
	Drag     DragState
	Rotation float64

	// Suppress blocks drag rotation while set (intro running, page leaving)
	Suppress bool
}

// Down starts a drag at the sample
func (t *Touch) Down(g geometry.Geometry, x, y float64) {
	_, dist := g.Polar(x, y)
	t.Drag = DragState{
		Active:         true,
		StartY:         y,
		StartRotation:  t.Rotation,
		StartedInInner: dist <= g.InnerR,
	}
}

// Move rotates by the vertical travel since Down. Returns the stepped index and true when the sample rotated the ring.
// Drags that began over the viewport never rotate
func (t *Touch) Move(l sector.Layout, y float64) (int, bool) {
	if !t.Drag.Active || t.Suppress || t.Drag.StartedInInner {
		return 0, false
	}
	dy := y - t.Drag.StartY
	t.Rotation = t.Drag.StartRotation - dy*constant.RotatePerPx
	return l.Step(t.Rotation), true
}

// Up ends the drag. Returns whether the drag began inside the viewport with negligible travel
func (t *Touch) Up(y float64) (tap bool) {
	if !t.Drag.Active {
		return false
	}
	tap = t.Drag.StartedInInner && math.Abs(y-t.Drag.StartY) < constant.TapSlopPx
	t.Drag.Active = false
	return tap
}

// Wheel rotates by the larger wheel axis and returns the stepped index
func (t *Touch) Wheel(l sector.Layout, dx, dy float64) int {
	t.Rotation -= WheelDelta(dx, dy) * constant.WheelFactor
	return l.Step(t.Rotation)
}

// Reset clears rotation and any drag
func (t *Touch) Reset() {
	t.Drag = DragState{}
	t.Rotation = 0
}
