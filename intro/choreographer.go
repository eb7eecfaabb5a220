package intro

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/logging"
	"github.com/lixenwraith/ringdial/vmath"
)

// Stage is one step of the home intro sequence
type Stage uint8

const (
	StageIdle Stage = iota
	StageTextReveal
	StageWaitDeps
	StageTickReveal
	StageNavReveal
	StageMediaFade
	StageDone
)

var stageNames = [...]string{
	StageIdle:       "idle",
	StageTextReveal: "text_reveal",
	StageWaitDeps:   "wait_deps",
	StageTickReveal: "tick_reveal",
	StageNavReveal:  "nav_reveal",
	StageMediaFade:  "media_fade",
	StageDone:       "done",
}

// String returns the stage name
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// NavLinks is the number of navigation links revealed in sequence (logo, about, contact)
const NavLinks = 3

// Reveal is the transform of one sliding element: Offset is the remaining slide as a fraction of its size
type Reveal struct {
	Offset float64
	Alpha  float64
}

var (
	hiddenReveal  = Reveal{Offset: 1}
	visibleReveal = Reveal{Alpha: 1}
)

// View is what the page should show at this instant
type View struct {
	Words        []Reveal
	TextAlpha    float64
	TicksVisible bool
	Nav          [NavLinks]Reveal
	NavVisible   bool
	DialUI       float64
	Background   float64
}

// Hooks are the dial and cursor operations the intro drives
type Hooks struct {
	SetIntroComplete     func()
	SetAttractionEnabled func(bool)
	SetCursorLocked      func(bool)
}

// Options configure the choreographer
type Options struct {
	ReducedMotion bool

	// DepsReady gates the tick reveal
	DepsReady func() bool
	// MediaReady gates the background fade
	MediaReady func() bool
}

// Choreographer runs the intro as one sequential task advanced by the frame loop.
// It runs at most once for its lifetime; create one per process
type Choreographer struct {
	clock *Clock
	hooks Hooks
	opts  Options

	stage   Stage
	hasRun  bool
	elapsed time.Duration
	view    View

	log *slog.Logger
}

// New creates an idle choreographer driving the shared clock
func New(clock *Clock, hooks Hooks, opts Options) *Choreographer {
	if clock == nil {
		clock = NewClock()
	}
	return &Choreographer{
		clock: clock,
		hooks: hooks,
		opts:  opts,
		view:  finalView(0),
		log:   logging.For("intro"),
	}
}

// Clock returns the shared clock
func (c *Choreographer) Clock() *Clock { return c.clock }

// Stage returns the current stage
func (c *Choreographer) Stage() Stage { return c.stage }

// HasRun reports whether Run or Skip was ever called
func (c *Choreographer) HasRun() bool { return c.hasRun }

// Running reports whether a sequence is in progress
func (c *Choreographer) Running() bool { return c.stage != StageIdle && c.stage != StageDone }

// View returns the current page visibility
func (c *Choreographer) View() View { return c.view }

// Run starts the sequence for a heading of words. Returns false when the intro already ran
func (c *Choreographer) Run(words int) bool {
	if c.hasRun {
		return false
	}
	c.hasRun = true
	c.clock.Time = 0

	c.view = View{Words: make([]Reveal, max(words, 0))}
	for i := range c.view.Words {
		c.view.Words[i] = hiddenReveal
	}
	for i := range c.view.Nav {
		c.view.Nav[i] = hiddenReveal
	}

	c.call(c.hooks.SetAttractionEnabled, false)
	c.call(c.hooks.SetCursorLocked, true)
	c.enter(StageTextReveal)
	return true
}

// Skip jumps to the final state through the same routine as natural completion
func (c *Choreographer) Skip() {
	c.hasRun = true
	c.finish()
}

// Advance steps the active stage. Each stage hands over only when its completion signal fires
func (c *Choreographer) Advance(dt time.Duration) {
	if !c.Running() {
		return
	}
	c.elapsed += dt

	switch c.stage {
	case StageTextReveal:
		if c.revealText() {
			c.enter(StageWaitDeps)
			c.Advance(0)
		}

	case StageWaitDeps:
		if c.opts.DepsReady == nil || c.opts.DepsReady() {
			c.view.TicksVisible = true
			c.enter(StageTickReveal)
			c.Advance(0)
		}

	case StageTickReveal:
		if c.revealTicks() {
			if c.hooks.SetIntroComplete != nil {
				c.hooks.SetIntroComplete()
			}
			c.view.NavVisible = true
			c.enter(StageNavReveal)
		}

	case StageNavReveal:
		if c.revealNav() {
			c.enter(StageMediaFade)
			c.Advance(0)
		}

	case StageMediaFade:
		if c.opts.MediaReady != nil && !c.opts.MediaReady() {
			// the fade clock starts once media is decodable
			c.elapsed = 0
			return
		}
		if c.fadeMedia() {
			c.finish()
		}
	}
}

func (c *Choreographer) enter(s Stage) {
	c.log.Debug("intro stage", "from", c.stage, "to", s)
	c.stage = s
	c.elapsed = 0
}

func (c *Choreographer) revealText() bool {
	n := len(c.view.Words)
	d := constant.IntroWordDuration
	c.view.TextAlpha = vmath.EaseOutQuint(ratio(c.elapsed, d))
	for i := range c.view.Words {
		p := vmath.EaseOutQuint(ratio(c.elapsed-time.Duration(i)*constant.IntroWordStagger, d))
		c.view.Words[i] = Reveal{Offset: 1 - p, Alpha: p}
	}
	if n == 0 {
		c.view.TextAlpha = 1
		return true
	}
	return c.elapsed >= time.Duration(n-1)*constant.IntroWordStagger+d
}

func (c *Choreographer) revealTicks() bool {
	if c.opts.ReducedMotion {
		c.clock.Finish()
		return true
	}
	total := time.Duration(c.clock.Total * float64(time.Second))
	c.clock.Time = c.clock.Total * vmath.EaseOutExpo(ratio(c.elapsed, total))
	return c.elapsed >= total
}

func (c *Choreographer) revealNav() bool {
	d := constant.IntroNavDuration
	for i := range c.view.Nav {
		p := ratio(c.elapsed-time.Duration(i)*d, d)
		c.view.Nav[i] = Reveal{Offset: 1 - vmath.EaseOutQuart(p), Alpha: p}
	}
	c.view.DialUI = ratio(c.elapsed, constant.IntroDialUIDuration)
	return c.elapsed >= NavLinks*d
}

func (c *Choreographer) fadeMedia() bool {
	c.view.Background = ratio(c.elapsed, constant.IntroMediaFade)
	return c.elapsed >= constant.IntroMediaFade
}

// finish is the single terminal routine for both natural completion and skip
func (c *Choreographer) finish() {
	c.clock.Finish()
	c.view = finalView(len(c.view.Words))
	if c.hooks.SetIntroComplete != nil {
		c.hooks.SetIntroComplete()
	}
	c.call(c.hooks.SetAttractionEnabled, true)
	c.call(c.hooks.SetCursorLocked, false)
	c.enter(StageDone)
}

func (c *Choreographer) call(fn func(bool), v bool) {
	if fn != nil {
		fn(v)
	}
}

func finalView(words int) View {
	v := View{
		Words:        make([]Reveal, words),
		TextAlpha:    1,
		TicksVisible: true,
		NavVisible:   true,
		DialUI:       1,
		Background:   1,
	}
	for i := range v.Words {
		v.Words[i] = visibleReveal
	}
	for i := range v.Nav {
		v.Nav[i] = visibleReveal
	}
	return v
}

func ratio(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(elapsed) / float64(d))
}
