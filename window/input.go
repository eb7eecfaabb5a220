package window

import (
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/event"
)

// Touch is one active touch point in css pixels
type Touch struct {
	ID   int
	X, Y float64
}

// State is one tick of sampled host input
type State struct {
	Width, Height float64
	DPR           float64

	CursorX, CursorY float64
	InWindow         bool
	Left             bool
	WheelY           float64

	Touches []Touch

	Focused   bool
	Minimized bool
	Keys      []string
}

// Sampler turns consecutive input states into page events. Only the first touch is tracked
type Sampler struct {
	prev    State
	started bool

	tracked    bool
	x, y       float64
	pressed    bool
	touchID    int
	touching   bool
	tx, ty     float64
	visible    bool
	wasFocused bool
}

// Diff returns the events between the previous sample and s
func (sm *Sampler) Diff(s State) []event.Event {
	var out []event.Event

	if !sm.started || s.Width != sm.prev.Width || s.Height != sm.prev.Height || s.DPR != sm.prev.DPR {
		if s.Width > 0 && s.Height > 0 {
			out = append(out, event.Event{Type: event.EventResize, Width: s.Width, Height: s.Height, DPR: s.DPR})
		}
	}
	if !sm.started {
		sm.visible = true
		sm.wasFocused = s.Focused
	}

	if visible := !s.Minimized; visible != sm.visible {
		sm.visible = visible
		out = append(out, event.Event{Type: event.EventVisibility, Visible: visible})
	}

	out = sm.touch(out, s)
	if !sm.touching {
		out = sm.mouse(out, s)
	}

	if sm.wasFocused && !s.Focused && sm.tracked {
		sm.tracked = false
		out = append(out, event.Event{Type: event.EventPointerLeave})
	}
	sm.wasFocused = s.Focused

	for _, k := range s.Keys {
		out = append(out, event.Event{Type: event.EventKey, Key: k})
	}

	sm.prev = s
	sm.started = true
	return out
}

func (sm *Sampler) mouse(out []event.Event, s State) []event.Event {
	if !s.InWindow {
		if sm.tracked {
			sm.tracked = false
			out = append(out, event.Event{Type: event.EventPointerLeave})
		}
		if sm.pressed && !s.Left {
			sm.pressed = false
			out = append(out, event.Event{Type: event.EventPointerUp, X: sm.x, Y: sm.y})
		}
		return out
	}

	x, y := s.CursorX, s.CursorY
	if !sm.tracked || x != sm.x || y != sm.y {
		sm.tracked = true
		sm.x, sm.y = x, y
		out = append(out, event.Event{Type: event.EventPointerMove, X: x, Y: y})
	}

	switch {
	case s.Left && !sm.pressed:
		out = append(out, event.Event{Type: event.EventPointerDown, X: x, Y: y})
	case !s.Left && sm.pressed:
		out = append(out, event.Event{Type: event.EventPointerUp, X: x, Y: y})
	}
	sm.pressed = s.Left

	if s.WheelY != 0 {
		out = append(out, event.Event{Type: event.EventWheel, X: x, Y: y, DY: -s.WheelY * constant.WheelLinePx})
	}
	return out
}

func (sm *Sampler) touch(out []event.Event, s State) []event.Event {
	if sm.touching {
		for _, t := range s.Touches {
			if t.ID != sm.touchID {
				continue
			}
			if t.X != sm.tx || t.Y != sm.ty {
				sm.tx, sm.ty = t.X, t.Y
				out = append(out,
					event.Event{Type: event.EventPointerMove, X: t.X, Y: t.Y, Pointer: event.PointerTouch, ID: t.ID},
					event.Event{Type: event.EventTouchMove, X: t.X, Y: t.Y, Pointer: event.PointerTouch, ID: t.ID},
				)
			}
			return out
		}
		sm.touching = false
		return append(out, event.Event{Type: event.EventPointerUp, X: sm.tx, Y: sm.ty, Pointer: event.PointerTouch, ID: sm.touchID})
	}

	if len(s.Touches) == 0 {
		return out
	}
	t := s.Touches[0]
	sm.touching = true
	sm.touchID, sm.tx, sm.ty = t.ID, t.X, t.Y
	return append(out, event.Event{Type: event.EventPointerDown, X: t.X, Y: t.Y, Pointer: event.PointerTouch, ID: t.ID})
}
