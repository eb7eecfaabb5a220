package app

import (
	"strings"
	"time"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/dial"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/render"
	"github.com/lixenwraith/ringdial/scene"
	"github.com/lixenwraith/ringdial/sector"
)

// Navigate replaces the page after the current dispatch returns. Links leaving the site are recorded, not followed
func (a *App) Navigate(path string) {
	if strings.Contains(path, ":") {
		a.external = path
		a.log.Info("external link", "path", path)
		return
	}
	if a.loop == nil {
		a.navigate(path)
		return
	}
	a.loop.After(0, func() { a.navigate(path) })
}

func (a *App) navigate(path string) {
	if a.page != nil && a.page.Path == path {
		return
	}
	p, ok := scene.ForPath(path, a.width, a.height, a.cfg.Heading, a.items)
	if !ok {
		a.log.Debug("no page for path", "path", path)
		return
	}
	a.log.Debug("navigate", "from", a.pagePath(), "to", path)
	a.skipIntro()
	a.show(p)
	a.startIntro(false)
}

func (a *App) pagePath() string {
	if a.page == nil {
		return ""
	}
	return a.page.Path
}

// show replaces the page: the old page is unmounted and detached before the new one mounts
func (a *App) show(p *scene.Page) {
	old := a.page
	if old != nil {
		if old.HasDial() && a.dial.Alive() {
			a.shared.SetHandoff(a.dial.Handoff())
		}
		a.unmount()
		old.Detach()
		a.canvas.Unregister(old.Cursor)
	}

	a.page = p
	a.metrics.page.Set(p.Path)
	a.metrics.navigations.Add(1)
	p.Cursor.Hidden = a.coarse
	a.canvas.Register(p.Cursor, constant.PriorityCursor)
	a.mount()

	if old == nil {
		if !a.cursor.Init(p) {
			a.log.Debug("cursor surface absent")
		}
		return
	}
	for _, d := range constant.CursorRefreshDelays {
		a.cancelRefresh = append(a.cancelRefresh, a.after(d, func() { a.cursor.Refresh(a.page) }))
	}
}

func (a *App) mount() {
	p := a.page
	a.ring.Hidden = true

	switch {
	case p.HasDial():
		if a.loop == nil {
			a.initDial()
			return
		}
		a.cancelInit = engine.Retry(a.loop, constant.InitRetryDelays, a.initDial)

	case !p.StaticRing.Empty():
		a.mountStatic()

	case p.Background != "":
		a.bg.SetPoster("")
		a.bg.SetSource(p.Background)
		if h, ok := a.shared.TakeHandoff(); ok {
			a.bg.Seek(h.Position)
			// kept so returning home restores the item
			a.shared.SetHandoff(h)
		}
	}
}

// mountStatic fits the non-interactive ring to the page's ring square
func (a *App) mountStatic() {
	box := a.page.StaticRing
	g := geometry.FitStatic(box.W, a.dpr)
	g.OriginX, g.OriginY = box.X, box.Y
	a.ring.Snapshot = render.Snapshot{
		Mode:     render.ModeStatic,
		Geometry: g,
		Layout:   sector.NewLayout(1),
		Palette:  a.palette,
	}
	a.ring.Hidden = box.Empty()
}

func (a *App) initDial() bool {
	p := a.page
	ok := a.dial.Init(dial.Mount{
		Component: p.DialBox,
		Viewport:  p.ViewportBox,
		DPR:       a.dpr,
		Bounds: func() (geometry.Rect, geometry.Rect) {
			return p.DialBox, p.ViewportBox
		},
		Items:      p.Items,
		Title:      &p.Title,
		Meta:       &p.Meta,
		Foreground: a.fg,
		Background: a.bg,
		Canvas:     a.canvas,
		Bus:        a.bus,
		Cursor:     a.cursor,
		Clock:      a.shared.Clock,
	})
	if !ok {
		return false
	}
	a.cancelInit = nil
	if h, ok := a.shared.TakeHandoff(); ok {
		a.dial.Restore(h)
	}
	a.dial.SetAttractionEnabled(!a.intro.Running())
	a.dial.SetSuppressed(a.intro.Running())
	return true
}

func (a *App) unmount() {
	if a.cancelInit != nil {
		a.cancelInit()
		a.cancelInit = nil
	}
	for _, cancel := range a.cancelRefresh {
		cancel()
	}
	a.cancelRefresh = nil
	a.dial.Destroy()
	a.ring.Hidden = true
}

// startIntro runs the intro on a fresh home page and skips it everywhere else
func (a *App) startIntro(fresh bool) {
	if a.intro.HasRun() {
		return
	}
	if !fresh || a.cfg.SkipIntro || a.cfg.ReducedMotion || !a.page.HasDial() {
		a.intro.Skip()
		return
	}
	a.intro.Run(len(a.page.Words()))
}

// skipIntro jumps a running intro to its final state
func (a *App) skipIntro() {
	if !a.intro.Running() {
		return
	}
	a.intro.Skip()
	if a.opts.Sound != nil {
		a.opts.Sound.StopSweep()
	}
}

func (a *App) setCoarse(on bool) {
	if a.coarse == on {
		return
	}
	a.coarse = on
	a.dial.SetCoarse(on)
	if a.page != nil {
		a.page.Cursor.Hidden = on
	}
	a.log.Debug("input model", "coarse", on)
}

// after schedules fn on the loop; without a loop fn runs now
func (a *App) after(d time.Duration, fn func()) (cancel func()) {
	if a.loop == nil {
		fn()
		return func() {}
	}
	return a.loop.After(d, fn)
}
