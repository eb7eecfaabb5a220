package dial

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/cursor"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/input"
	"github.com/lixenwraith/ringdial/logging"
	"github.com/lixenwraith/ringdial/render"
	"github.com/lixenwraith/ringdial/scene"
	"github.com/lixenwraith/ringdial/sector"
	"github.com/lixenwraith/ringdial/vmath"
)

// Dial is one mounted ring selector. Init and Destroy may be repeated; all methods run on the loop goroutine
type Dial struct {
	alive bool
	mount Mount
	opts  Options

	geom    geometry.Geometry
	sel     *sector.Selector
	desktop *input.Desktop
	touch   input.Touch
	handles event.Group

	attraction        float64
	attractionEnabled bool
	introComplete     bool

	cursorPlay bool
	pressInner bool
	kicked     bool

	ticks *render.TickLayer
	disc  *render.MediaLayer

	// OnChange fires after the active sector changes
	OnChange sector.ChangeFunc
	// OnActivate receives the resolved link of the active item
	OnActivate func(path string)

	log *slog.Logger
}

// New creates an unmounted dial
func New(opts Options) *Dial {
	return &Dial{opts: opts, log: logging.For("dial")}
}

// Init mounts the dial. It returns false and leaves a running instance untouched when
// already alive or when the mount is not ready
func (d *Dial) Init(m Mount) bool {
	if d.alive {
		return false
	}
	if !m.Ready() {
		d.log.Debug("mount not ready", "canvas", m.Canvas != nil, "items", len(m.Items))
		return false
	}

	d.mount = m
	d.alive = true
	d.attraction = 0
	d.attractionEnabled = true
	d.introComplete = m.Clock.Complete()
	d.cursorPlay = false
	d.pressInner = false
	d.kicked = false
	d.touch.Reset()

	d.geom = geometry.Compute(m.Component, m.Viewport, m.DPR)
	d.desktop = input.NewDesktop(d.geom)

	var slots []sector.MediaSlot
	for _, s := range []MediaSlot{m.Foreground, m.Background} {
		if s != nil {
			slots = append(slots, s)
		}
	}
	d.sel = sector.NewSelector(m.Items, sector.Sinks{Title: m.Title, Meta: m.Meta, Media: slots}, d.opts.ReducedMotion)
	d.sel.OnChange = d.changed

	d.ticks = &render.TickLayer{}
	d.disc = render.NewDiscLayer()
	m.Canvas.Register(d.disc, constant.PriorityDisc)
	m.Canvas.Register(d.ticks, constant.PriorityTicks)

	bus := m.Bus
	d.handles.Add(
		bus.Subscribe(event.EventPointerMove, d.onMove),
		bus.Subscribe(event.EventPointerLeave, d.onLeave),
		bus.Subscribe(event.EventPointerDown, d.onDown),
		bus.Subscribe(event.EventPointerUp, d.onUp),
		bus.Subscribe(event.EventWheel, d.onWheel),
		bus.Subscribe(event.EventTouchMove, d.onTouchMove),
		bus.Subscribe(event.EventResize, d.onResize),
	)

	d.sel.Apply(0)
	d.syncLayers()
	d.log.Debug("dial mounted", "items", d.sel.Layout().N, "coarse", d.opts.Coarse)
	return true
}

// Destroy unmounts the dial: handlers, layers and cursor override are released. Idempotent
func (d *Dial) Destroy() {
	if !d.alive {
		return
	}
	d.alive = false
	d.handles.RemoveAll()
	d.mount.Canvas.Unregister(d.ticks)
	d.mount.Canvas.Unregister(d.disc)
	d.setCursorPlay(false)
	d.mount = Mount{}
	d.sel = nil
	d.desktop = nil
	d.log.Debug("dial destroyed")
}

// Alive reports whether the dial is mounted
func (d *Dial) Alive() bool { return d.alive }

// ActiveIndex returns the selected sector, 0 when unmounted
func (d *Dial) ActiveIndex() int {
	if !d.alive {
		return 0
	}
	return d.sel.Active()
}

// Geometry returns the current geometry
func (d *Dial) Geometry() geometry.Geometry { return d.geom }

// Rotation returns the coarse-pointer ring rotation in degrees
func (d *Dial) Rotation() float64 { return d.touch.Rotation }

// Attraction returns the current attraction ease
func (d *Dial) Attraction() float64 { return d.attraction }

// SetIntroComplete ends the intro overlay; ticks render fully from now on
func (d *Dial) SetIntroComplete() { d.introComplete = true }

// SetAttractionEnabled gates pointer attraction; disabled decays the ease to zero
func (d *Dial) SetAttractionEnabled(on bool) { d.attractionEnabled = on }

// SetCoarse switches the input model, dropping any gesture in progress
func (d *Dial) SetCoarse(on bool) {
	if d.opts.Coarse == on {
		return
	}
	d.opts.Coarse = on
	d.touch.Reset()
	if d.alive {
		d.desktop.Leave()
		d.setCursorPlay(false)
		d.ticks.Snapshot.Rotation = 0
	}
}

// Coarse reports the input model
func (d *Dial) Coarse() bool { return d.opts.Coarse }

// SetSuppressed blocks drag rotation (intro running, page leaving)
func (d *Dial) SetSuppressed(on bool) { d.touch.Suppress = on }

// Select applies an index directly (keyboard stepping)
func (d *Dial) Select(idx int) {
	if d.alive {
		d.apply(idx)
	}
}

// ResyncCursor re-presents the dial's cursor state after the cursor was unlocked over the dial
func (d *Dial) ResyncCursor() {
	if !d.alive || d.opts.Coarse {
		return
	}
	d.cursorPlay = false
	if d.desktop.Activated() {
		d.setCursorPlay(true)
	}
}

// Activate navigates to the active item's link
func (d *Dial) Activate() {
	if !d.alive {
		return
	}
	it, ok := d.sel.ActiveItem()
	if !ok {
		return
	}
	path := scene.ItemPath(it.Link)
	if path == "" {
		d.log.Debug("active item has no link", "index", it.Index)
		return
	}
	if d.OnActivate != nil {
		d.OnActivate(path)
	}
}

// Handoff captures the active index and foreground playback position for the next page
func (d *Dial) Handoff() engine.Handoff {
	h := engine.Handoff{Index: d.ActiveIndex()}
	if d.alive && d.mount.Foreground != nil {
		h.Position = d.mount.Foreground.Position()
	}
	return h
}

// Restore re-applies a handoff after Init
func (d *Dial) Restore(h engine.Handoff) {
	if !d.alive {
		return
	}
	d.apply(h.Index)
	if d.mount.Foreground != nil {
		d.mount.Foreground.Seek(h.Position)
	}
}

// Frame advances eases and media, then refreshes the layers for this frame
func (d *Dial) Frame(dt time.Duration) {
	if !d.alive {
		return
	}
	sec := dt.Seconds()

	target, rate := 0.0, constant.AttractionDecayRate
	if d.attracting() {
		target, rate = 1, constant.AttractionRiseRate
	}
	d.attraction = vmath.Approach(d.attraction, target, rate, sec, constant.AttractionEpsilon)

	d.sel.Advance(dt)
	for _, s := range []MediaSlot{d.mount.Foreground, d.mount.Background} {
		if s != nil {
			s.Advance(dt)
		}
	}
	d.syncLayers()
}

// attracting reports whether a qualifying pointer is present
func (d *Dial) attracting() bool {
	return !d.opts.Coarse && !d.opts.ReducedMotion && d.attractionEnabled && d.desktop.Pointer.Present
}

func (d *Dial) syncLayers() {
	mode := render.ModeDesktop
	if d.opts.Coarse {
		mode = render.ModeMobile
	}
	p := d.desktop.Pointer
	d.ticks.Snapshot = render.Snapshot{
		Mode:           mode,
		Geometry:       d.geom,
		Layout:         d.sel.Layout(),
		Fade:           d.sel.Fade(),
		Palette:        d.opts.Palette,
		PointerPresent: p.Present,
		PointerAngle:   p.Angle,
		PointerDist:    p.Dist,
		Attraction:     d.attraction,
		Rotation:       d.touch.Rotation,
		IntroActive:    !d.introComplete,
		IntroTime:      d.introTime(),
	}

	d.disc.CX = d.geom.OriginX + d.geom.CX
	d.disc.CY = d.geom.OriginY + d.geom.CY
	d.disc.R = d.geom.ViewportR
	if d.mount.Foreground != nil {
		d.disc.Frame = d.mount.Foreground.Frame()
	}
}

func (d *Dial) introTime() float64 {
	if d.mount.Clock == nil {
		return constant.IntroTotal
	}
	return d.mount.Clock.Time
}

func (d *Dial) apply(idx int) {
	d.sel.Apply(idx)
}

// applyStepped selects a coarse-pointer step with the highlight anchored at the top detent
func (d *Dial) applyStepped(idx int) {
	d.sel.ApplyAt(idx, d.sel.Layout().Detent(d.touch.Rotation))
}

func (d *Dial) changed(prev, next int) {
	d.log.Debug("sector", "from", prev, "to", next)
	if d.OnChange != nil {
		d.OnChange(prev, next)
	}
}

// setCursorPlay shows the PLAY highlight over the viewport; repeated requests are dropped
func (d *Dial) setCursorPlay(on bool) {
	if d.opts.Coarse || on == d.cursorPlay {
		return
	}
	d.cursorPlay = on
	c := d.mount.Cursor
	if c == nil {
		return
	}
	if on {
		c.SetState(cursor.KindSolidOrange, constant.CursorPlayLabel, false)
	} else {
		c.SetState(cursor.KindDot, "", false)
	}
}

// kickMedia retries playback once on the first press, for slots that refused autoplay
func (d *Dial) kickMedia() {
	if d.kicked {
		return
	}
	d.kicked = true
	for _, s := range []MediaSlot{d.mount.Foreground, d.mount.Background} {
		if s == nil {
			continue
		}
		if err := s.Play(); err != nil {
			d.log.Debug("media play", "err", err)
		}
	}
}
