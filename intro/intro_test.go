package intro

import (
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/ringdial/constant"
)

type hookLog struct {
	complete   int
	attraction bool
	locked     bool
}

func (h *hookLog) hooks() Hooks {
	return Hooks{
		SetIntroComplete:     func() { h.complete++ },
		SetAttractionEnabled: func(on bool) { h.attraction = on },
		SetCursorLocked:      func(on bool) { h.locked = on },
	}
}

const step = 16 * time.Millisecond

func runFor(c *Choreographer, d time.Duration) {
	for t := time.Duration(0); t < d; t += step {
		c.Advance(step)
	}
}

func TestSequenceOrder(t *testing.T) {
	deps, media := false, false
	var h hookLog
	c := New(NewClock(), h.hooks(), Options{
		DepsReady:  func() bool { return deps },
		MediaReady: func() bool { return media },
	})

	if !c.Run(4) {
		t.Fatal("first Run refused")
	}
	if c.Stage() != StageTextReveal || !h.locked || h.attraction {
		t.Fatalf("start: stage %v locked=%v attraction=%v", c.Stage(), h.locked, h.attraction)
	}

	// 3 × 0.15 + 0.4 = 0.85 s of words
	runFor(c, 900*time.Millisecond)
	if c.Stage() != StageWaitDeps {
		t.Fatalf("after words: stage %v", c.Stage())
	}
	for i, w := range c.View().Words {
		if w.Alpha != 1 || w.Offset != 0 {
			t.Errorf("word %d not revealed: %+v", i, w)
		}
	}

	// blocked until dependencies report ready
	runFor(c, time.Second)
	if c.Stage() != StageWaitDeps || c.Clock().Time != 0 {
		t.Fatalf("advanced without deps: %v clock=%v", c.Stage(), c.Clock().Time)
	}
	deps = true
	c.Advance(step)
	if c.Stage() != StageTickReveal || !c.View().TicksVisible {
		t.Fatalf("deps ready: stage %v", c.Stage())
	}

	runFor(c, 4*time.Second)
	mid := c.Clock().Time
	if mid <= 0 || mid >= constant.IntroTotal {
		t.Fatalf("clock mid-reveal %v", mid)
	}
	// expo-out front-loads progress
	if mid < constant.IntroTotal*0.9 {
		t.Errorf("clock at half time %v, want > 90%% of total", mid)
	}

	runFor(c, 4*time.Second+step)
	if c.Stage() != StageNavReveal || h.complete == 0 {
		t.Fatalf("after ticks: stage %v complete=%d", c.Stage(), h.complete)
	}
	if h.attraction || !h.locked {
		t.Error("attraction enabled before the sequence finished")
	}

	runFor(c, 800*time.Millisecond)
	v := c.View()
	if v.Nav[0].Alpha != 1 || v.Nav[1].Alpha <= 0 || v.Nav[2].Alpha != 0 || v.DialUI != 1 {
		t.Errorf("nav stagger wrong at 0.8s: %+v dialUI=%v", v.Nav, v.DialUI)
	}

	runFor(c, 1400*time.Millisecond+step)
	if c.Stage() != StageMediaFade {
		t.Fatalf("after nav: stage %v", c.Stage())
	}
	runFor(c, time.Second)
	if c.Stage() != StageMediaFade || c.View().Background != 0 {
		t.Fatalf("faded before media ready: bg=%v", c.View().Background)
	}

	media = true
	runFor(c, 250*time.Millisecond)
	if c.Stage() != StageDone || c.Running() {
		t.Fatalf("final stage %v", c.Stage())
	}
	if !h.attraction || h.locked {
		t.Errorf("final hooks attraction=%v locked=%v", h.attraction, h.locked)
	}

	if c.Run(4) {
		t.Error("second Run accepted")
	}
}

func TestSkipEqualsComplete(t *testing.T) {
	var full hookLog
	a := New(NewClock(), full.hooks(), Options{})
	a.Run(3)
	runFor(a, 20*time.Second)
	if a.Stage() != StageDone {
		t.Fatalf("full run ended in %v", a.Stage())
	}

	var skipped hookLog
	b := New(NewClock(), skipped.hooks(), Options{})
	b.Run(3)
	runFor(b, 2*time.Second)
	b.Skip()

	if !reflect.DeepEqual(a.View(), b.View()) {
		t.Errorf("views differ:\n full %+v\n skip %+v", a.View(), b.View())
	}
	if *a.Clock() != *b.Clock() {
		t.Errorf("clocks differ: %+v vs %+v", *a.Clock(), *b.Clock())
	}
	if full.attraction != skipped.attraction || full.locked != skipped.locked {
		t.Errorf("hooks differ: %+v vs %+v", full, skipped)
	}
	if skipped.complete == 0 {
		t.Error("skip did not complete the dial intro")
	}
}

func TestSkipBeforeRunBlocksRun(t *testing.T) {
	var h hookLog
	c := New(nil, h.hooks(), Options{})
	c.Skip()
	if !c.HasRun() || c.Stage() != StageDone || !c.Clock().Complete() {
		t.Fatalf("skip state: stage=%v clock=%+v", c.Stage(), *c.Clock())
	}
	if c.Run(2) {
		t.Error("Run after Skip accepted")
	}
}

func TestReducedMotionJumpsClock(t *testing.T) {
	c := New(NewClock(), Hooks{}, Options{ReducedMotion: true})
	c.Run(0)
	c.Advance(step)
	if c.Clock().Time != constant.IntroTotal {
		t.Errorf("reduced clock %v, want total", c.Clock().Time)
	}
	if c.Stage() != StageNavReveal {
		t.Errorf("stage %v, want nav reveal", c.Stage())
	}
}

func TestClockProgress(t *testing.T) {
	var nilClock *Clock
	if nilClock.Progress() != 1 || !nilClock.Complete() {
		t.Error("nil clock should read complete")
	}
	c := NewClock()
	c.Time = c.Total / 4
	if c.Progress() != 0.25 || c.Complete() {
		t.Errorf("progress %v", c.Progress())
	}
}
