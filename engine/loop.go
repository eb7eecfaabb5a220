package engine

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/logging"
)

// Handler receives everything the loop delivers, always on the loop goroutine
type Handler interface {
	HandleEvent(ev *event.Event)
	Frame(dt time.Duration)
}

type timer struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
}

// Loop owns the frame ticker and the host event channel
//
// Architecture:
//   - One goroutine runs either Run (ticker driven) or Step (host driven), never both
//   - Hosts Post events from any goroutine; delivery happens in the same select as frames
//   - Hidden pages stop the ticker and pause the clock; timers are measured on that clock
type Loop struct {
	handler  Handler
	clock    *PausableClock
	interval time.Duration

	events   chan event.Event
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	// Loop goroutine only
	timers    []*timer
	seq       uint64
	visible   bool
	quit      bool
	lastFrame time.Duration
	frames    uint64
}

// NewLoop creates a visible loop. A zero interval uses FrameUpdateInterval
func NewLoop(h Handler, clock *PausableClock, interval time.Duration) *Loop {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if interval <= 0 {
		interval = constant.FrameUpdateInterval
	}
	return &Loop{
		handler:   h,
		clock:     clock,
		interval:  interval,
		events:    make(chan event.Event, constant.EventQueueSize),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
		visible:   true,
		lastFrame: clock.Elapsed(),
	}
}

// Clock returns the loop clock
func (l *Loop) Clock() *PausableClock { return l.clock }

// Post queues an event for the loop. It blocks while the queue is full and fails once the loop stopped
func (l *Loop) Post(ev event.Event) bool {
	select {
	case <-l.stop:
		return false
	default:
	}
	select {
	case l.events <- ev:
		return true
	case <-l.stop:
		return false
	}
}

// After schedules fn on the loop goroutine once d of running time has passed.
// Must be called from the loop goroutine; the returned cancel is idempotent
func (l *Loop) After(d time.Duration, fn func()) (cancel func()) {
	l.seq++
	t := &timer{due: l.clock.Elapsed() + d, seq: l.seq, fn: fn}
	l.timers = append(l.timers, t)
	return func() { t.cancelled = true }
}

// Pending returns the number of live timers
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Quit ends Run after the current event or frame. Loop goroutine only
func (l *Loop) Quit() { l.quit = true }

// Visible reports the page visibility as last delivered
func (l *Loop) Visible() bool { return l.visible }

// Frames returns the number of frames delivered
func (l *Loop) Frames() uint64 { return l.frames }

// Step drains queued events, fires due timers and renders one frame when visible.
// It returns false once quit was requested
func (l *Loop) Step() bool {
drain:
	for !l.quit {
		select {
		case ev := <-l.events:
			l.dispatch(&ev)
		default:
			break drain
		}
	}
	if l.quit {
		return false
	}
	l.runTimers()
	if l.visible {
		l.frame()
	}
	return !l.quit
}

// Run blocks until Quit, an EventQuit or Stop
func (l *Loop) Run() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.lastFrame = l.clock.Elapsed()
	for !l.quit {
		var tick <-chan time.Time
		if l.visible {
			tick = ticker.C
		}

		select {
		case <-l.stop:
			return

		case ev := <-l.events:
			wasVisible := l.visible
			l.dispatch(&ev)
			switch {
			case wasVisible && !l.visible:
				ticker.Stop()
			case !wasVisible && l.visible:
				ticker.Reset(l.interval)
			}

		case <-tick:
			l.runTimers()
			l.frame()
		}
	}
}

// Start runs the loop on its own goroutine
func (l *Loop) Start() {
	Go(l.Run)
}

// Stop ends the loop and waits for Run to return. Must not be called from the loop goroutine
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
	if l.running.Load() {
		<-l.done
	}
}

func (l *Loop) dispatch(ev *event.Event) {
	switch ev.Type {
	case event.EventVisibility:
		if ev.Visible != l.visible {
			l.visible = ev.Visible
			if l.visible {
				l.clock.Resume()
				l.lastFrame = l.clock.Elapsed()
			} else {
				l.clock.Pause()
			}
			logging.For("loop").Debug("visibility", "visible", l.visible)
		}
	case event.EventQuit:
		l.quit = true
	}
	l.handler.HandleEvent(ev)
}

func (l *Loop) frame() {
	now := l.clock.Elapsed()
	dt := min(now-l.lastFrame, constant.MaxFrameDelta)
	l.lastFrame = now
	l.frames++
	l.handler.Frame(dt)
}

// runTimers fires due timers in deadline order; timers added by a callback wait for the next pass
func (l *Loop) runTimers() {
	if len(l.timers) == 0 {
		return
	}
	now := l.clock.Elapsed()

	var due []*timer
	kept := l.timers[:0]
	for _, t := range l.timers {
		switch {
		case t.cancelled:
		case t.due <= now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	clear(l.timers[len(kept):])
	l.timers = kept

	slices.SortFunc(due, func(a, b *timer) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for _, t := range due {
		if !t.cancelled {
			t.fn()
		}
	}
}
