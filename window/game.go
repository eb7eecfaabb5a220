package window

import (
	"image"
	"image/draw"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ringdial/app"
	"github.com/lixenwraith/ringdial/engine"
	"github.com/lixenwraith/ringdial/status"
)

// Game adapts the loop to ebiten. Update, Draw and Layout all run on the game goroutine
type Game struct {
	loop    *engine.Loop
	sampler Sampler
	poll    func(g *Game) State

	status   *status.Registry
	title    string
	setTitle func(string)

	width, height float64
	scale         float64

	frame image.Image
	dirty bool
	rgba  *image.RGBA
	tex   *ebiten.Image
}

// Present implements app.Presenter
func (g *Game) Present(f app.Frame) {
	g.frame = f.Image
	g.dirty = true
}

// Update samples input, posts the resulting events and steps the loop once
func (g *Game) Update() error {
	for _, ev := range g.sampler.Diff(g.poll(g)) {
		g.loop.Post(ev)
	}
	if !g.loop.Step() {
		return ebiten.Termination
	}
	g.syncTitle()
	return nil
}

// syncTitle shows the page and active item in the window caption
func (g *Game) syncTitle() {
	if g.status == nil || g.setTitle == nil {
		return
	}
	title := Title
	if page := g.status.Label(status.Page).Get(); page != "" {
		title += " " + page
	}
	if item := g.status.Label(status.ActiveTitle).Get(); item != "" {
		title += " · " + item
	}
	if title != g.title {
		g.title = title
		g.setTitle(title)
	}
}

// Draw uploads the last frame and scales it over the screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	if g.dirty {
		g.upload()
		g.dirty = false
	}

	sb, tb := screen.Bounds(), g.tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	if tb.Dx() != sb.Dx() || tb.Dy() != sb.Dy() {
		op.GeoM.Scale(float64(sb.Dx())/float64(tb.Dx()), float64(sb.Dy())/float64(tb.Dy()))
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(g.tex, op)
}

// Layout keeps css size and device scale; the screen is backed at device resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = float64(outsideWidth), float64(outsideHeight)
	g.scale = deviceScale()
	return int(math.Round(g.width * g.scale)), int(math.Round(g.height * g.scale))
}

func (g *Game) upload() {
	b := g.frame.Bounds()
	rgba, ok := g.frame.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		if g.rgba == nil || g.rgba.Bounds().Size() != b.Size() {
			g.rgba = image.NewRGBA(image.Rectangle{Max: b.Size()})
		}
		draw.Draw(g.rgba, g.rgba.Bounds(), g.frame, b.Min, draw.Src)
		rgba = g.rgba
	}

	if g.tex == nil || g.tex.Bounds().Size() != b.Size() {
		if g.tex != nil {
			g.tex.Deallocate()
		}
		g.tex = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.tex.WritePixels(rgba.Pix)
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}
