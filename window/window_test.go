package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/status"
)

func types(evs []event.Event) []event.EventType {
	out := make([]event.EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func equalTypes(got []event.Event, want ...event.EventType) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Type != want[i] {
			return false
		}
	}
	return true
}

func base() State {
	return State{Width: 800, Height: 600, DPR: 1, Focused: true}
}

func TestSamplerFirstStateReportsSize(t *testing.T) {
	var sm Sampler
	evs := sm.Diff(base())
	if !equalTypes(evs, event.EventResize) {
		t.Fatalf("got %v", types(evs))
	}
	if evs[0].Width != 800 || evs[0].Height != 600 || evs[0].DPR != 1 {
		t.Errorf("resize %+v", evs[0])
	}
	if evs := sm.Diff(base()); len(evs) != 0 {
		t.Errorf("unchanged state produced %v", types(evs))
	}

	s := base()
	s.DPR = 2
	if evs := sm.Diff(s); !equalTypes(evs, event.EventResize) || evs[0].DPR != 2 {
		t.Errorf("dpr change %+v", evs)
	}
}

func TestSamplerMouseClick(t *testing.T) {
	var sm Sampler
	sm.Diff(base())

	s := base()
	s.InWindow, s.CursorX, s.CursorY = true, 100, 120
	if evs := sm.Diff(s); !equalTypes(evs, event.EventPointerMove) {
		t.Fatalf("enter %v", types(evs))
	}

	s.Left = true
	if evs := sm.Diff(s); !equalTypes(evs, event.EventPointerDown) || evs[0].X != 100 {
		t.Fatalf("press %+v", evs)
	}

	s.Left = false
	if evs := sm.Diff(s); !equalTypes(evs, event.EventPointerUp) {
		t.Fatalf("release %v", types(evs))
	}
}

func TestSamplerLeaveAndReleaseOutside(t *testing.T) {
	var sm Sampler
	sm.Diff(base())

	s := base()
	s.InWindow, s.Left, s.CursorX, s.CursorY = true, true, 10, 10
	sm.Diff(s)

	s.InWindow = false
	if evs := sm.Diff(s); !equalTypes(evs, event.EventPointerLeave) {
		t.Fatalf("leave %v", types(evs))
	}
	s.Left = false
	if evs := sm.Diff(s); !equalTypes(evs, event.EventPointerUp) || evs[0].X != 10 {
		t.Fatalf("release outside %+v", evs)
	}
}

func TestSamplerWheel(t *testing.T) {
	var sm Sampler
	s := base()
	s.InWindow = true
	sm.Diff(s)

	s.WheelY = 1
	evs := sm.Diff(s)
	if !equalTypes(evs, event.EventWheel) || evs[0].DY != -constant.WheelLinePx {
		t.Fatalf("wheel %+v", evs)
	}
}

func TestSamplerTouchSequence(t *testing.T) {
	var sm Sampler
	sm.Diff(base())

	s := base()
	s.Touches = []Touch{{ID: 7, X: 50, Y: 60}}
	evs := sm.Diff(s)
	if !equalTypes(evs, event.EventPointerDown) || evs[0].Pointer != event.PointerTouch || evs[0].ID != 7 {
		t.Fatalf("touch start %+v", evs)
	}

	s.Touches = []Touch{{ID: 7, X: 50, Y: 90}, {ID: 8, X: 0, Y: 0}}
	if evs := sm.Diff(s); !equalTypes(evs, event.EventPointerMove, event.EventTouchMove) {
		t.Fatalf("touch move %v", types(evs))
	}

	s.Touches = []Touch{{ID: 8, X: 0, Y: 0}}
	evs = sm.Diff(s)
	if !equalTypes(evs, event.EventPointerUp) || evs[0].Y != 90 {
		t.Fatalf("touch end %+v", evs)
	}
}

func TestSamplerFocusAndMinimize(t *testing.T) {
	var sm Sampler
	s := base()
	s.InWindow = true
	sm.Diff(s)

	s.Focused, s.InWindow = false, false
	if evs := sm.Diff(s); !equalTypes(evs, event.EventPointerLeave) {
		t.Fatalf("focus loss %v", types(evs))
	}

	s.Minimized = true
	evs := sm.Diff(s)
	if !equalTypes(evs, event.EventVisibility) || evs[0].Visible {
		t.Fatalf("minimize %+v", evs)
	}
	s.Minimized = false
	if evs := sm.Diff(s); !equalTypes(evs, event.EventVisibility) || !evs[0].Visible {
		t.Fatalf("restore %+v", evs)
	}
}

func TestSamplerKeys(t *testing.T) {
	var sm Sampler
	s := base()
	s.Keys = []string{"q", "enter"}
	evs := sm.Diff(s)
	if !equalTypes(evs, event.EventResize, event.EventKey, event.EventKey) || evs[1].Key != "q" || evs[2].Key != "enter" {
		t.Fatalf("keys %+v", evs)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyQ, "q"},
		{ebiten.KeyM, "m"},
		{ebiten.KeyDigit3, "3"},
		{ebiten.KeyEscape, "esc"},
		{ebiten.KeyArrowRight, "right"},
		{ebiten.KeySpace, "space"},
		{ebiten.KeyF5, ""},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

type recorder struct {
	events []event.EventType
	frames int
}

func (r *recorder) HandleEvent(ev *event.Event) { r.events = append(r.events, ev.Type) }
func (r *recorder) Frame(time.Duration)         { r.frames++ }

func TestUpdatePostsAndSteps(t *testing.T) {
	rec := &recorder{}
	mt := engine.NewManualTime(time.Unix(0, 0))
	states := []State{base(), {Width: 800, Height: 600, DPR: 1, Focused: true, Keys: []string{"q"}}}
	g := &Game{
		loop: engine.NewLoop(rec, engine.NewPausableClock(mt), 0),
		poll: func(*Game) State {
			s := states[0]
			states = states[1:]
			return s
		},
	}

	if err := g.Update(); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if len(rec.events) != 1 || rec.events[0] != event.EventResize || rec.frames != 1 {
		t.Fatalf("events %v frames %d", rec.events, rec.frames)
	}

	g.loop.Post(event.Event{Type: event.EventQuit})
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit update returned %v", err)
	}
}

func TestTitleFollowsStatus(t *testing.T) {
	reg := status.NewRegistry()
	var titles []string
	g := &Game{status: reg, setTitle: func(s string) { titles = append(titles, s) }}

	reg.Label(status.Page).Set("/")
	reg.Label(status.ActiveTitle).Set("Tidewater")
	g.syncTitle()
	g.syncTitle()
	reg.Label(status.ActiveTitle).Set("Northlight")
	g.syncTitle()

	want := []string{Title + " / · Tidewater", Title + " / · Northlight"}
	if len(titles) != len(want) || titles[0] != want[0] || titles[1] != want[1] {
		t.Errorf("titles %q, want %q", titles, want)
	}
}
