package geometry

import (
	"math"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/vmath"
)

// Geometry is the full set of dial dimensions derived from one layout pass.
// All lengths are css pixels in canvas-local space; backing pixels are css × DPR.
// It is replaced wholesale on resize and never mutated in place.
type Geometry struct {
	// Canvas placement in page space
	OriginX, OriginY float64
	Width, Height    float64

	// Ring centre in canvas space
	CX, CY float64

	ViewportR  float64
	InnerR     float64
	BaseLen    float64
	MaxLen     float64
	TickWidth  float64
	Gap        float64
	SwitchMaxR float64
	NearR      float64
	RadFalloff float64

	DPR float64
}

// Compute derives geometry from the container box, the inner media viewport box and the device pixel ratio.
// A zero-area viewport falls back to the reference radius.
func Compute(container, viewport Rect, dpr float64) Geometry {
	if dpr <= 0 {
		dpr = 1
	}

	r := min(viewport.W, viewport.H) / 2
	if r <= 0 {
		r = constant.ReferenceRadius
	}

	g := fromRadius(r, dpr)
	g.OriginX, g.OriginY = container.X, container.Y
	g.Width, g.Height = container.W, container.H
	g.CX, g.CY = container.W/2, container.H/2
	return g
}

// FitStatic derives geometry for a non-interactive ring that exactly fills a square canvas of side size
func FitStatic(size, dpr float64) Geometry {
	if dpr <= 0 {
		dpr = 1
	}
	r := (size / 2) / constant.StaticExpand

	g := fromRadius(r, dpr)
	g.TickWidth = max(constant.MinTickWidth, g.TickWidth)
	g.Width, g.Height = size, size
	g.CX, g.CY = size/2, size/2
	return g
}

func fromRadius(r, dpr float64) Geometry {
	g := Geometry{
		ViewportR:  r,
		Gap:        r * constant.GapRatio,
		BaseLen:    r * constant.BaseLenRatio,
		MaxLen:     r * constant.MaxLenRatio,
		TickWidth:  r * constant.TickWidthRatio,
		NearR:      r * constant.NearRatio,
		RadFalloff: r * constant.RadFalloffRatio,
		DPR:        dpr,
	}
	g.InnerR = r + g.Gap
	g.SwitchMaxR = g.InnerR + g.BaseLen + g.MaxLen + r*constant.SwitchPadRatio
	return g
}

// Backing returns the canvas backing store size in device pixels
func (g Geometry) Backing() (int, int) {
	return int(math.Round(g.Width * g.DPR)), int(math.Round(g.Height * g.DPR))
}

// OuterBaseR is the resting outer radius of every tick
func (g Geometry) OuterBaseR() float64 { return g.InnerR + g.BaseLen }

// Local converts page coordinates to canvas-local coordinates
func (g Geometry) Local(x, y float64) (float64, float64) {
	return x - g.OriginX, y - g.OriginY
}

// Polar returns the top-0 clockwise angle and radial distance of a page-space point from the ring centre
func (g Geometry) Polar(x, y float64) (angle, dist float64) {
	lx, ly := g.Local(x, y)
	dx, dy := lx-g.CX, ly-g.CY
	return vmath.AngleTop0(dx, dy), math.Hypot(dx, dy)
}

// Valid reports whether the geometry was computed from a non-empty container
func (g Geometry) Valid() bool { return g.Width > 0 && g.Height > 0 && g.ViewportR > 0 }
