// Package app composes one page at a time: region descriptors, the dial, the cursor machine,
// the intro, media slots and audio feedback. Every method runs on the loop goroutine.
package app

import (
	"image"
	"log/slog"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ringdial/audio"
	"github.com/lixenwraith/ringdial/config"
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/cursor"
	"github.com/lixenwraith/ringdial/dial"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/input"
	"github.com/lixenwraith/ringdial/intro"
	"github.com/lixenwraith/ringdial/logging"
	"github.com/lixenwraith/ringdial/media"
	"github.com/lixenwraith/ringdial/render"
	"github.com/lixenwraith/ringdial/scene"
	"github.com/lixenwraith/ringdial/sector"
	"github.com/lixenwraith/ringdial/status"
)

// Frame is one rendered page handed to the host
type Frame struct {
	Image  image.Image
	Labels []render.Label

	// Css page size and device pixel ratio of Image
	Width, Height, DPR float64
}

// Presenter shows rendered frames. Called on the loop goroutine
type Presenter interface {
	Present(f Frame)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(f Frame)

// Present implements Presenter
func (fn PresenterFunc) Present(f Frame) { fn(f) }

// Options are the host-provided collaborators
type Options struct {
	// Sound plays feedback; nil runs silent
	Sound *audio.SoundManager

	// Presenter receives every rendered frame; nil renders without presenting
	Presenter Presenter

	// Preload runs off the loop before the tick reveal may start; nil marks dependencies ready at boot
	Preload func()

	// TextInCells leaves labels out of the raster; the host draws Frame.Labels itself
	TextInCells bool
}

// App owns the page and every component mounted on it
type App struct {
	cfg   *config.Config
	opts  Options
	keys  *input.KeyTable
	items []sector.Item

	loop   *engine.Loop
	bus    *event.Bus
	shared *engine.Shared
	canvas *render.Orchestrator

	width, height, dpr float64
	palette            render.Palette
	textColor          colorful.Color
	coarse             bool

	loader *media.Loader
	fg, bg *media.Slot

	page   *scene.Page
	dial   *dial.Dial
	cursor *cursor.Machine
	intro  *intro.Choreographer

	backdrop *render.MediaLayer
	ring     *render.TickLayer
	text     *render.TextLayer

	handles       event.Group
	cancelInit    func()
	cancelRefresh []func()

	mediaReady bool
	downLink   string
	external   string
	last       Frame

	status  *status.Registry
	metrics metrics

	log *slog.Logger
}

// metrics caches the registry entries written every frame
type metrics struct {
	frames      *status.Counter
	navigations *status.Counter
	active      *status.Counter
	attraction  *status.Gauge
	rotation    *status.Gauge
	page        *status.Label
	title       *status.Label
	stage       *status.Label
	cursor      *status.Label
}

func newMetrics(r *status.Registry) metrics {
	return metrics{
		frames:      r.Counter(status.Frames),
		navigations: r.Counter(status.Navigations),
		active:      r.Counter(status.ActiveSector),
		attraction:  r.Gauge(status.Attraction),
		rotation:    r.Gauge(status.Rotation),
		page:        r.Label(status.Page),
		title:       r.Label(status.ActiveTitle),
		stage:       r.Label(status.IntroStage),
		cursor:      r.Label(status.CursorKind),
	}
}

// New builds the composition for a validated configuration. Nothing is shown until Boot
func New(cfg *config.Config, opts Options) (*App, error) {
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		opts:      opts,
		keys:      keys,
		items:     cfg.SectorItems(),
		bus:       event.NewBus(),
		shared:    engine.NewShared(),
		canvas:    render.NewOrchestrator(cfg.Width, cfg.Height, cfg.DPR),
		width:     cfg.Width,
		height:    cfg.Height,
		dpr:       cfg.DPR,
		palette:   render.ParsePalette(cfg.Palette.Cool, cfg.Palette.Warm, cfg.Palette.Static),
		textColor: render.MustHex(constant.WhiteHex),
		coarse:    cfg.Coarse,
		status:    status.NewRegistry(),
		log:       logging.For("app"),
	}
	a.metrics = newMetrics(a.status)
	a.canvas.SetBackground(render.ToRGBA(render.MustHex(constant.BackgroundHex), 1))

	a.loader = media.NewLoader(cfg.MediaFS(), media.DefaultWorkers)
	a.fg = media.NewSlot("foreground", a.loader)
	a.bg = media.NewSlot("background", a.loader)

	a.backdrop = render.NewBackgroundLayer()
	a.ring = &render.TickLayer{Hidden: true}
	a.text = &render.TextLayer{Hidden: opts.TextInCells}
	a.canvas.Register(a.backdrop, constant.PriorityBackground)
	a.canvas.Register(a.ring, constant.PriorityTicks)
	a.canvas.Register(a.text, constant.PriorityText)

	a.cursor = cursor.NewMachine(cursor.Options{ExternalControl: true, ReducedMotion: cfg.ReducedMotion})
	a.dial = dial.New(dial.Options{Coarse: cfg.Coarse, ReducedMotion: cfg.ReducedMotion, Palette: a.palette})
	a.dial.OnChange = a.sectorChanged
	a.dial.OnActivate = a.activated
	a.cursor.Resync = func(float64, float64) { a.dial.ResyncCursor() }

	a.intro = intro.New(a.shared.Clock, intro.Hooks{
		SetIntroComplete:     a.dial.SetIntroComplete,
		SetAttractionEnabled: a.dial.SetAttractionEnabled,
		SetCursorLocked:      a.cursor.SetLockedToDot,
	}, intro.Options{
		ReducedMotion: cfg.ReducedMotion,
		DepsReady:     a.shared.DepsReady,
		MediaReady:    a.backgroundReady,
	})

	// Subscribed ahead of the dial so page relayout and cursor resolution precede dial handling
	a.handles.Add(
		a.bus.Subscribe(event.EventPointerMove, a.onMove),
		a.bus.Subscribe(event.EventPointerDown, a.onDown),
		a.bus.Subscribe(event.EventPointerUp, a.onUp),
		a.bus.Subscribe(event.EventResize, a.onResize),
		a.bus.Subscribe(event.EventKey, a.onKey),
		a.bus.Subscribe(event.EventDepsReady, a.onDepsReady),
		a.bus.Subscribe(event.EventMediaReady, a.onMediaReady),
	)
	return a, nil
}

// Boot binds the loop and shows the configured start page. The intro runs only on a fresh home page
func (a *App) Boot(l *engine.Loop) {
	a.loop = l

	path := scene.PathHome
	if a.cfg.Page == config.PageAbout {
		path = scene.PathAbout
	}
	p, ok := scene.ForPath(path, a.width, a.height, a.cfg.Heading, a.items)
	if !ok {
		a.log.Error("start page unavailable", "path", path)
		return
	}
	a.show(p)
	a.startIntro(true)

	if a.opts.Preload == nil {
		a.shared.MarkDepsReady()
		return
	}
	preload := a.opts.Preload
	engine.Go(func() {
		preload()
		l.Post(event.Event{Type: event.EventDepsReady})
	})
}

// Close releases the page, the dial and the media workers
func (a *App) Close() {
	a.unmount()
	a.cursor.Destroy()
	a.handles.RemoveAll()
	a.loader.Close()
}

// HandleEvent implements engine.Handler
func (a *App) HandleEvent(ev *event.Event) {
	if a.page == nil {
		return
	}
	a.bus.Dispatch(ev)
}

// Frame implements engine.Handler: advances the intro, the dial and the cursor, then renders
func (a *App) Frame(dt time.Duration) {
	if a.page == nil {
		return
	}

	prev := a.intro.Stage()
	a.intro.Advance(dt)
	if st := a.intro.Stage(); st != prev {
		a.stageChanged(prev, st)
	}

	a.dial.SetSuppressed(a.intro.Running())
	a.dial.Frame(dt)
	if !a.page.HasDial() {
		a.bg.Advance(dt)
	}
	a.cursor.Advance(dt)

	a.syncLayers()
	a.publish()
	a.last = Frame{
		Image:  a.canvas.RenderFrame(),
		Labels: a.text.Labels,
		Width:  a.width,
		Height: a.height,
		DPR:    a.dpr,
	}
	if a.opts.Presenter != nil {
		a.opts.Presenter.Present(a.last)
	}
}

// publish writes this frame's state to the status registry
func (a *App) publish() {
	m := a.metrics
	m.frames.Add(1)
	m.active.Set(int64(a.dial.ActiveIndex()))
	m.attraction.Set(a.dial.Attraction())
	m.rotation.Set(a.dial.Rotation())
	m.title.Set(a.page.Title.Text())
	m.stage.Set(a.intro.Stage().String())
	m.cursor.Set(a.cursor.CurrentState().Kind.String())
}

// Status returns the runtime metrics registry; safe to read from any goroutine
func (a *App) Status() *status.Registry { return a.status }

// Bus returns the event bus hosts and tests dispatch through
func (a *App) Bus() *event.Bus { return a.bus }

// Shared returns the cross-component context
func (a *App) Shared() *engine.Shared { return a.shared }

// Page returns the current page
func (a *App) Page() *scene.Page { return a.page }

// Dial returns the home dial
func (a *App) Dial() *dial.Dial { return a.dial }

// Cursor returns the cursor machine
func (a *App) Cursor() *cursor.Machine { return a.cursor }

// Intro returns the choreographer
func (a *App) Intro() *intro.Choreographer { return a.intro }

// Canvas returns the render orchestrator
func (a *App) Canvas() *render.Orchestrator { return a.canvas }

// Coarse reports the active input model
func (a *App) Coarse() bool { return a.coarse }

// LastFrame returns the most recent rendered frame
func (a *App) LastFrame() Frame { return a.last }

// External returns the last link that leaves the site (mail, other hosts)
func (a *App) External() string { return a.external }

func (a *App) syncLayers() {
	p := a.page
	v := a.intro.View()
	a.text.Labels = p.Labels(v, a.textColor)

	switch {
	case p.HasDial():
		a.backdrop.Hidden = false
		a.backdrop.Opacity = v.Background
	case p.Background != "":
		a.backdrop.Hidden = false
		a.backdrop.Opacity = 1
	default:
		a.backdrop.Hidden = true
	}
	if !a.backdrop.Hidden {
		a.backdrop.Frame = a.bg.Frame()
	}
}

func (a *App) backgroundReady() bool { return a.mediaReady || a.bg.IsReady() }

func (a *App) stageChanged(from, to intro.Stage) {
	switch to {
	case intro.StageTickReveal:
		if a.opts.Sound != nil {
			a.opts.Sound.PlaySweep()
		}
	case intro.StageDone:
		if from == intro.StageTickReveal && a.opts.Sound != nil {
			a.opts.Sound.StopSweep()
		}
	}
}

func (a *App) sectorChanged(prev, next int) {
	// the first Apply of a mount reports prev -1 and is not a user change
	if prev < 0 || a.opts.Sound == nil {
		return
	}
	a.opts.Sound.PlayDetent()
}

func (a *App) activated(path string) {
	if a.opts.Sound != nil {
		a.opts.Sound.PlayChime()
	}
	a.Navigate(path)
}
