package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/event"
)

// Translator converts tcell events into page events. Not safe for concurrent use
type Translator struct {
	DPR float64

	x, y    int
	tracked bool
	pressed bool
}

// NewTranslator creates a translator reporting resizes at dpr
func NewTranslator(dpr float64) *Translator {
	return &Translator{DPR: dpr}
}

// PageSize converts a cell grid to css pixels
func PageSize(cols, rows int) (w, h float64) {
	return float64(cols) * constant.TermCellWidth, float64(rows) * constant.TermCellHeight
}

// cellCenter returns the css position of a cell's centre
func cellCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * constant.TermCellWidth, (float64(y) + 0.5) * constant.TermCellHeight
}

// Translate returns the page events for one tcell event, nil when it maps to none
func (t *Translator) Translate(ev tcell.Event) []event.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		w, h := PageSize(cols, rows)
		return []event.Event{{Type: event.EventResize, Width: w, Height: h, DPR: t.DPR}}

	case *tcell.EventMouse:
		return t.mouse(ev)

	case *tcell.EventFocus:
		if ev.Focused {
			return nil
		}
		t.tracked = false
		return []event.Event{{Type: event.EventPointerLeave}}

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return []event.Event{{Type: event.EventQuit}}
		}
		if name := KeyName(ev); name != "" {
			return []event.Event{{Type: event.EventKey, Key: name}}
		}
	}
	return nil
}

func (t *Translator) mouse(ev *tcell.EventMouse) []event.Event {
	x, y := ev.Position()
	cx, cy := cellCenter(x, y)
	btn := ev.Buttons()

	var out []event.Event
	if !t.tracked || x != t.x || y != t.y {
		t.x, t.y, t.tracked = x, y, true
		out = append(out, event.Event{Type: event.EventPointerMove, X: cx, Y: cy})
	}

	down := btn&tcell.Button1 != 0
	switch {
	case down && !t.pressed:
		out = append(out, event.Event{Type: event.EventPointerDown, X: cx, Y: cy})
	case !down && t.pressed:
		out = append(out, event.Event{Type: event.EventPointerUp, X: cx, Y: cy})
	}
	t.pressed = down

	if btn&tcell.WheelUp != 0 {
		out = append(out, event.Event{Type: event.EventWheel, X: cx, Y: cy, DY: -constant.WheelLinePx})
	}
	if btn&tcell.WheelDown != 0 {
		out = append(out, event.Event{Type: event.EventWheel, X: cx, Y: cy, DY: constant.WheelLinePx})
	}
	return out
}
