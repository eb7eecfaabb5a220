package dial

import (
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/geometry"
)

func (d *Dial) inside(ev *event.Event) bool {
	return d.mount.Component.Contains(ev.X, ev.Y)
}

func (d *Dial) onMove(ev *event.Event) {
	if d.opts.Coarse {
		if idx, ok := d.touch.Move(d.sel.Layout(), ev.Y); ok {
			d.applyStepped(idx)
		}
		return
	}

	if !d.inside(ev) {
		if d.desktop.Pointer.Present {
			d.onLeave(ev)
		}
		return
	}

	dec := d.desktop.Move(d.geom, d.sel.Layout(), ev.X, ev.Y)
	if dec.HasSelect {
		d.apply(dec.Select)
	}
	if c := d.mount.Cursor; c != nil {
		c.SetPosition(ev.X, ev.Y)
	}
	d.setCursorPlay(dec.Activated)
}

func (d *Dial) onLeave(*event.Event) {
	d.desktop.Leave()
	d.pressInner = false
	d.setCursorPlay(false)
}

func (d *Dial) onDown(ev *event.Event) {
	d.kickMedia()
	if !d.inside(ev) {
		return
	}
	if d.opts.Coarse {
		d.touch.Down(d.geom, ev.X, ev.Y)
		return
	}
	d.pressInner = d.desktop.Zones.InInner
}

// onUp is page-wide so drags released outside the dial still end
func (d *Dial) onUp(ev *event.Event) {
	if d.opts.Coarse {
		if d.touch.Up(ev.Y) {
			d.Activate()
		}
		return
	}
	press := d.pressInner
	d.pressInner = false
	if press && d.inside(ev) && d.desktop.Zones.InInner {
		d.Activate()
	}
}

func (d *Dial) onWheel(ev *event.Event) {
	if !d.opts.Coarse || !d.inside(ev) {
		return
	}
	ev.PreventDefault()
	d.applyStepped(d.touch.Wheel(d.sel.Layout(), ev.DX, ev.DY))
}

func (d *Dial) onTouchMove(ev *event.Event) {
	if d.opts.Coarse && d.touch.Drag.Active {
		ev.PreventDefault()
	}
}

// onResize replaces the geometry wholesale before the next frame reads it
func (d *Dial) onResize(ev *event.Event) {
	if b := d.mount.Bounds; b != nil {
		d.mount.Component, d.mount.Viewport = b()
	}
	if ev.DPR > 0 {
		d.mount.DPR = ev.DPR
	}
	d.geom = geometry.Compute(d.mount.Component, d.mount.Viewport, d.mount.DPR)
	d.desktop.SetGeometry(d.geom)
	d.syncLayers()
}
