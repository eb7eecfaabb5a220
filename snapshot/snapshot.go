// Package snapshot renders the page headless to numbered PNG files: the intro, a scripted
// pointer sweep around the ring, and the about page with its static ring
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/ringdial/app"
	"github.com/lixenwraith/ringdial/config"
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/logging"
)

// StaticName is the file holding the about page render
const StaticName = "static.png"

var ErrNoFrames = errors.New("snapshot: frame count must be positive")

// Script timing
const (
	// introStep is the simulated time per intro frame; the loop caps larger steps anyway
	introStep = constant.MaxFrameDelta

	// sweepStep is the simulated time per sweep frame
	sweepStep = 33 * time.Millisecond

	// settleFrames run after a page switch before the static ring is written
	settleFrames = 10
)

// Report lists the files written
type Report struct {
	Frames []string
	Static string
}

type collector struct {
	last image.Image
}

func (c *collector) Present(f app.Frame) { c.last = f.Image }

type run struct {
	app  *app.App
	loop *engine.Loop
	mt   *engine.ManualTime
	out  *collector
	dir  string
	rep  Report
}

// Run writes cfg.Frames numbered frames and the static ring image into cfg.OutDir.
// Half the frames cover the intro, which is skipped if still running, the rest sweep the pointer
// once around the switch band
func Run(cfg *config.Config) (Report, error) {
	if cfg.Frames <= 0 {
		return Report{}, ErrNoFrames
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("snapshot: %w", err)
	}

	out := &collector{}
	a, err := app.New(cfg, app.Options{Presenter: out})
	if err != nil {
		return Report{}, err
	}
	defer a.Close()

	mt := engine.NewManualTime(time.Unix(0, 0))
	r := &run{
		app:  a,
		loop: engine.NewLoop(a, engine.NewPausableClock(mt), constant.FrameUpdateInterval),
		mt:   mt,
		out:  out,
		dir:  cfg.OutDir,
	}
	a.Boot(r.loop)
	// Media decodes in the background; headless output never waits on it
	r.post(event.Event{Type: event.EventMediaReady})

	if err := r.script(cfg.Frames); err != nil {
		return r.rep, err
	}
	logging.For("snapshot").Debug("written", "frames", len(r.rep.Frames), "dir", cfg.OutDir)
	return r.rep, nil
}

func (r *run) script(frames int) error {
	introFrames := frames / 2
	for i := 0; i < introFrames; i++ {
		if err := r.frame(introStep); err != nil {
			return err
		}
	}
	if r.app.Intro().Running() {
		r.post(event.Event{Type: event.EventKey, Key: "space"})
	}

	sweep := frames - introFrames
	for i := 0; i < sweep; i++ {
		if x, y, ok := r.sweepPoint(float64(i) / float64(sweep)); ok {
			r.post(event.Event{Type: event.EventPointerMove, X: x, Y: y})
		}
		if err := r.frame(sweepStep); err != nil {
			return err
		}
	}
	r.post(event.Event{Type: event.EventPointerLeave})

	return r.static()
}

// sweepPoint returns the page position at fraction t of one clockwise revolution through the switch band
func (r *run) sweepPoint(t float64) (x, y float64, ok bool) {
	d := r.app.Dial()
	if !d.Alive() {
		return 0, 0, false
	}
	g := d.Geometry()
	radius := (g.InnerR + g.SwitchMaxR) / 2
	a := t * 2 * math.Pi
	cx, cy := g.OriginX+g.CX, g.OriginY+g.CY
	return cx + radius*math.Sin(a), cy - radius*math.Cos(a), true
}

// static switches to the about page and writes its ring once the page has settled
func (r *run) static() error {
	r.post(event.Event{Type: event.EventKey, Key: "tab"})
	for i := 0; i < settleFrames; i++ {
		r.step(sweepStep)
	}
	path := filepath.Join(r.dir, StaticName)
	if err := writePNG(path, r.out.last); err != nil {
		return err
	}
	r.rep.Static = path
	return nil
}

func (r *run) post(ev event.Event) {
	r.loop.Post(ev)
}

func (r *run) step(d time.Duration) {
	r.mt.Advance(d)
	r.loop.Step()
}

func (r *run) frame(d time.Duration) error {
	r.step(d)
	path := filepath.Join(r.dir, fmt.Sprintf("frame_%04d.png", len(r.rep.Frames)))
	if err := writePNG(path, r.out.last); err != nil {
		return err
	}
	r.rep.Frames = append(r.rep.Frames, path)
	return nil
}

func writePNG(path string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("snapshot: no frame rendered for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
