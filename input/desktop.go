package input

import (
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/sector"
	"github.com/lixenwraith/ringdial/zone"
)

// Decision is what one pointer sample asks of the dial
type Decision struct {
	// Select is the sector under the pointer, valid when HasSelect
	Select    int
	HasSelect bool

	// Activated is true while the pointer rests over the viewport
	Activated bool
	// ActivationChanged reports a flip of Activated on this sample
	ActivationChanged bool
}

// Desktop turns fine-pointer hover into sector selection and viewport activation
type Desktop struct {
	Pointer PointerState
	Zones   *zone.Classifier

	activated bool
}

// NewDesktop creates a hover adapter for the geometry
func NewDesktop(g geometry.Geometry) *Desktop {
	return &Desktop{Zones: zone.NewClassifier(g)}
}

// SetGeometry updates zone thresholds after resize
func (d *Desktop) SetGeometry(g geometry.Geometry) { d.Zones.SetGeometry(g) }

// Activated reports whether the viewport is currently activated
func (d *Desktop) Activated() bool { return d.activated }

// Move samples the pointer, updates zones, then decides selection and activation
func (d *Desktop) Move(g geometry.Geometry, l sector.Layout, x, y float64) Decision {
	d.Pointer.Sample(g, x, y)
	d.Zones.Update(d.Pointer.Dist)

	var dec Decision
	if d.Zones.CanSwitch() {
		dec.Select = l.Index(d.Pointer.Angle)
		dec.HasSelect = true
	}

	on := d.Zones.InInner
	dec.ActivationChanged = on != d.activated
	d.activated = on
	dec.Activated = on
	return dec
}

// Leave resets pointer and zones. Returns true when activation was dropped
func (d *Desktop) Leave() bool {
	d.Pointer.Reset()
	d.Zones.Reset()
	was := d.activated
	d.activated = false
	return was
}
