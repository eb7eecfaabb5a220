package app

import (
	"testing"
	"time"

	"github.com/lixenwraith/ringdial/config"
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/cursor"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/intro"
	"github.com/lixenwraith/ringdial/scene"
	"github.com/lixenwraith/ringdial/status"
)

type harness struct {
	app  *App
	loop *engine.Loop
	mt   *engine.ManualTime
}

func newHarness(t *testing.T, mutate func(cfg *config.Config), opts Options) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 320, 200
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	a, err := New(cfg, opts)
	if err != nil {
		t.Fatal(err)
	}
	mt := engine.NewManualTime(time.Unix(0, 0))
	l := engine.NewLoop(a, engine.NewPausableClock(mt), constant.FrameUpdateInterval)
	a.Boot(l)
	t.Cleanup(a.Close)
	return &harness{app: a, loop: l, mt: mt}
}

func skipIntro(cfg *config.Config) { cfg.SkipIntro = true }

// step advances the manual clock and runs one loop pass
func (h *harness) step(d time.Duration) bool {
	h.mt.Advance(d)
	return h.loop.Step()
}

func (h *harness) post(ev event.Event) {
	h.loop.Post(ev)
	h.step(constant.FrameUpdateInterval)
}

func (h *harness) key(k string) { h.post(event.Event{Type: event.EventKey, Key: k}) }

func (h *harness) click(x, y float64) {
	h.loop.Post(event.Event{Type: event.EventPointerDown, X: x, Y: y})
	h.loop.Post(event.Event{Type: event.EventPointerUp, X: x, Y: y})
	h.step(constant.FrameUpdateInterval)
}

func TestBootHomeRunsIntroToCompletion(t *testing.T) {
	h := newHarness(t, nil, Options{})
	a := h.app

	if a.Page().Name != scene.Home || !a.Dial().Alive() {
		t.Fatalf("boot page %q dial alive %v", a.Page().Name, a.Dial().Alive())
	}
	if a.Intro().Stage() != intro.StageTextReveal {
		t.Fatalf("stage %v, want text reveal", a.Intro().Stage())
	}
	if !a.Cursor().Locked() {
		t.Error("cursor not locked during intro")
	}

	h.post(event.Event{Type: event.EventMediaReady})
	for i := 0; i < 200 && a.Intro().Running(); i++ {
		h.step(constant.MaxFrameDelta)
	}
	if a.Intro().Stage() != intro.StageDone {
		t.Fatalf("intro stuck at %v", a.Intro().Stage())
	}
	if !a.Shared().Clock.Complete() || a.Cursor().Locked() {
		t.Error("intro completion did not release clock and cursor")
	}
	if a.LastFrame().Image == nil {
		t.Error("no frame rendered")
	}
}

func TestSkipIntroConfig(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	if h.app.Intro().Stage() != intro.StageDone || !h.app.Shared().Clock.Complete() {
		t.Errorf("skip-intro boot left stage %v", h.app.Intro().Stage())
	}
}

func TestAboutStartSkipsIntro(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) { cfg.Page = config.PageAbout }, Options{})
	a := h.app
	if a.Page().Name != scene.About || a.Dial().Alive() {
		t.Fatalf("page %q dial alive %v", a.Page().Name, a.Dial().Alive())
	}
	if a.Intro().Stage() != intro.StageDone {
		t.Errorf("intro %v on about page", a.Intro().Stage())
	}
	if a.ring.Hidden {
		t.Error("static ring hidden on about page")
	}
}

func TestPreloadGatesTickReveal(t *testing.T) {
	release := make(chan struct{})
	h := newHarness(t, nil, Options{Preload: func() { <-release }})
	a := h.app

	for range 20 {
		h.step(constant.MaxFrameDelta)
	}
	if a.Intro().Stage() != intro.StageWaitDeps {
		t.Fatalf("stage %v before dependencies loaded", a.Intro().Stage())
	}

	close(release)
	deadline := time.Now().Add(2 * time.Second)
	for a.Intro().Stage() == intro.StageWaitDeps && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
		h.step(constant.FrameUpdateInterval)
	}
	if a.Intro().Stage() != intro.StageTickReveal {
		t.Errorf("stage %v after dependencies loaded", a.Intro().Stage())
	}
}

func TestNavigationReplacesPageWithoutLeaks(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	a := h.app
	baseLayers := 3
	dialOnly := []event.EventType{event.EventPointerLeave, event.EventWheel, event.EventTouchMove}

	home := a.Page()
	a.Dial().Select(3)
	a.Navigate(scene.PathAbout)
	if a.Page() != home {
		t.Fatal("navigation ran inside the dispatch")
	}
	h.step(constant.FrameUpdateInterval)

	if a.Page().Name != scene.About || a.Dial().Alive() {
		t.Fatalf("page %q dial alive %v", a.Page().Name, a.Dial().Alive())
	}
	if !home.Cursor.Detached {
		t.Error("replaced page surface still attached")
	}
	for _, typ := range dialOnly {
		if n := a.Bus().HandlerCount(typ); n != 0 {
			t.Errorf("%v: %d handlers left after unmount", typ, n)
		}
	}
	if got := a.Canvas().Len(); got != baseLayers+1 {
		t.Errorf("canvas holds %d layers, want %d", got, baseLayers+1)
	}

	h.step(constant.FrameUpdateInterval)
	h.step(100 * time.Millisecond)
	if h.loop.Pending() != 0 {
		t.Errorf("%d timers pending after cursor refreshes", h.loop.Pending())
	}

	a.Navigate(scene.PathHome)
	h.step(constant.FrameUpdateInterval)
	if !a.Dial().Alive() || a.Dial().ActiveIndex() != 3 {
		t.Errorf("home restored alive=%v index=%d", a.Dial().Alive(), a.Dial().ActiveIndex())
	}
	if got := a.Canvas().Len(); got != baseLayers+3 {
		t.Errorf("canvas holds %d layers on home, want %d", got, baseLayers+3)
	}
	for _, typ := range dialOnly {
		if n := a.Bus().HandlerCount(typ); n != 1 {
			t.Errorf("%v: %d handlers after remount, want 1", typ, n)
		}
	}
}

func TestActivateOpensCaseStudy(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	a := h.app
	a.Dial().Select(2)
	h.key("enter")

	p := a.Page()
	if p.Name != scene.Case || p.Path != "/case-studies/field-notes" {
		t.Fatalf("page %q at %q", p.Name, p.Path)
	}
	if p.Background != "demo/03.gif" {
		t.Errorf("case background %q", p.Background)
	}
	if p.Heading != "Field Notes" {
		t.Errorf("case heading %q", p.Heading)
	}

	// enter on a case page goes back home, restoring the item
	h.key("enter")
	if a.Page().Name != scene.Home || a.Dial().ActiveIndex() != 2 {
		t.Errorf("back home page %q index %d", a.Page().Name, a.Dial().ActiveIndex())
	}
}

func TestKeyIntents(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	a := h.app

	h.key("right")
	h.key("right")
	h.key("left")
	if a.Dial().ActiveIndex() != 1 {
		t.Errorf("index %d after right right left", a.Dial().ActiveIndex())
	}

	h.key("m")
	if !a.Coarse() || !a.Dial().Coarse() || !a.Page().Cursor.Hidden {
		t.Error("toggle coarse did not reach dial and cursor layer")
	}
	h.key("m")
	if a.Coarse() || a.Page().Cursor.Hidden {
		t.Error("second toggle left coarse mode on")
	}

	h.key("tab")
	if a.Page().Name != scene.About {
		t.Errorf("tab from home went to %q", a.Page().Name)
	}
	h.key("tab")
	if a.Page().Name != scene.Home {
		t.Errorf("tab from about went to %q", a.Page().Name)
	}

	h.loop.Post(event.Event{Type: event.EventKey, Key: "q"})
	if h.step(constant.FrameUpdateInterval) {
		t.Error("loop still running after quit key")
	}
}

func TestSkipKeyEndsIntro(t *testing.T) {
	h := newHarness(t, nil, Options{})
	h.step(constant.MaxFrameDelta)
	h.key("space")
	if h.app.Intro().Stage() != intro.StageDone || h.app.Cursor().Locked() {
		t.Errorf("stage %v locked %v after skip", h.app.Intro().Stage(), h.app.Cursor().Locked())
	}
}

func TestNavLinks(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	a := h.app

	contact := a.Page().Nav[2].Bounds
	h.click(contact.Center())
	if a.External() != scene.PathContact || a.Page().Name != scene.Home {
		t.Errorf("contact click: external %q page %q", a.External(), a.Page().Name)
	}

	about := a.Page().Nav[1].Bounds
	h.click(about.Center())
	if a.Page().Name != scene.About {
		t.Errorf("about click landed on %q", a.Page().Name)
	}
}

func TestCursorFollowsRegions(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	a := h.app

	x, y := a.Page().Nav[1].Bounds.Center()
	h.post(event.Event{Type: event.EventPointerMove, X: x, Y: y})
	if got := a.Cursor().CurrentState().Kind; got != cursor.KindArrowWhiteOutline {
		t.Errorf("over nav: %v", got)
	}

	x, y = a.Page().ViewportBox.Center()
	h.post(event.Event{Type: event.EventPointerMove, X: x, Y: y})
	got := a.Cursor().CurrentState()
	if got.Kind != cursor.KindSolidOrange || got.Label != constant.CursorPlayLabel {
		t.Errorf("over viewport: %+v", got)
	}

	h.post(event.Event{Type: event.EventPointerMove, X: 1, Y: a.Page().Height - 1})
	if got := a.Cursor().CurrentState().Kind; got != cursor.KindDot {
		t.Errorf("over empty page: %v", got)
	}
}

func TestResizeRelayouts(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	a := h.app
	before := a.Dial().Geometry().ViewportR

	h.post(event.Event{Type: event.EventResize, Width: 640, Height: 400, DPR: 2})
	if w, hh, dpr := a.Canvas().Size(); w != 640 || hh != 400 || dpr != 2 {
		t.Errorf("canvas %vx%v@%v", w, hh, dpr)
	}
	g := a.Dial().Geometry()
	if g.ViewportR <= before || g.DPR != 2 {
		t.Errorf("dial geometry not recomputed: r %v → %v dpr %v", before, g.ViewportR, g.DPR)
	}
	if b := a.LastFrame().Image.Bounds(); b.Dx() != 1280 || b.Dy() != 800 {
		t.Errorf("frame %v, want 1280×800 backing", b)
	}
}

func TestPresenterReceivesFrames(t *testing.T) {
	var frames []Frame
	h := newHarness(t, skipIntro, Options{Presenter: PresenterFunc(func(f Frame) { frames = append(frames, f) })})
	h.step(constant.FrameUpdateInterval)
	h.step(constant.FrameUpdateInterval)
	if len(frames) != 2 {
		t.Fatalf("presented %d frames", len(frames))
	}
	if frames[0].Width != 320 || len(frames[0].Labels) == 0 {
		t.Errorf("frame %vx%v with %d labels", frames[0].Width, frames[0].Height, len(frames[0].Labels))
	}
}

func TestStatusPublishesFrameState(t *testing.T) {
	h := newHarness(t, skipIntro, Options{})
	a := h.app
	h.step(constant.FrameUpdateInterval)
	h.key("right")

	st := a.Status()
	if got := st.Counter(status.Frames).Get(); got != 2 {
		t.Errorf("frames %d, want 2", got)
	}
	if got := st.Counter(status.ActiveSector).Get(); got != 1 {
		t.Errorf("active %d, want 1", got)
	}
	if got := st.Label(status.Page).Get(); got != scene.PathHome {
		t.Errorf("page %q", got)
	}
	if got := st.Label(status.IntroStage).Get(); got != intro.StageDone.String() {
		t.Errorf("stage %q", got)
	}

	h.key("tab")
	if st.Counter(status.Navigations).Get() != 2 || st.Label(status.Page).Get() != scene.PathAbout {
		t.Errorf("after tab: navigations %d page %q", st.Counter(status.Navigations).Get(), st.Label(status.Page).Get())
	}
}

func TestTextInCellsHidesRasterLabels(t *testing.T) {
	var last Frame
	h := newHarness(t, skipIntro, Options{
		TextInCells: true,
		Presenter:   PresenterFunc(func(f Frame) { last = f }),
	})
	h.step(constant.FrameUpdateInterval)
	if h.app.text.IsVisible() {
		t.Error("text layer rendered into the raster")
	}
	if len(last.Labels) == 0 {
		t.Error("labels not handed to the host")
	}
}
