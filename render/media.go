package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/ringdial/constant"
)

// MediaLayer draws a cover-fitted frame, either over the whole canvas or clipped to a disc
type MediaLayer struct {
	Frame   image.Image
	Opacity float64
	Hidden  bool

	// Disc clips to a circle of radius R at (CX, CY) in css pixels and paints a backing disc
	Disc       bool
	CX, CY, R  float64
	DiscColor  gg.RGBA
	PaintEmpty bool

	cacheSrc image.Image
	cacheW   int
	cacheH   int
	scaled   *image.RGBA
}

// NewDiscLayer creates a media layer clipped to the viewport circle
func NewDiscLayer() *MediaLayer {
	return &MediaLayer{
		Disc:       true,
		Opacity:    1,
		DiscColor:  ToRGBA(MustHex(constant.DiscHex), 1),
		PaintEmpty: true,
	}
}

// NewBackgroundLayer creates a full-canvas media layer
func NewBackgroundLayer() *MediaLayer {
	return &MediaLayer{Opacity: 1}
}

// IsVisible implements VisibilityToggle
func (l *MediaLayer) IsVisible() bool { return !l.Hidden }

// Render fills the target area with the frame sampled through a brush
func (l *MediaLayer) Render(ctx Context) {
	dc := ctx.DC
	dpr := ctx.DPR

	// Work in backing pixels so brush sampling matches the pixmap
	dc.Identity()

	var x, y, w, h float64
	if l.Disc {
		if l.R <= 0 {
			return
		}
		x, y = (l.CX-l.R)*dpr, (l.CY-l.R)*dpr
		w, h = 2*l.R*dpr, 2*l.R*dpr
		if l.PaintEmpty {
			dc.SetRGBA(l.DiscColor.R, l.DiscColor.G, l.DiscColor.B, l.DiscColor.A)
			dc.DrawCircle(l.CX*dpr, l.CY*dpr, l.R*dpr)
			_ = dc.Fill()
		}
	} else {
		w, h = ctx.Width*dpr, ctx.Height*dpr
	}

	if l.Frame == nil || l.Opacity <= 0 {
		return
	}
	pw, ph := int(math.Ceil(w)), int(math.Ceil(h))
	if pw <= 0 || ph <= 0 {
		return
	}
	scaled := l.cover(pw, ph)
	ox, oy := int(math.Floor(x)), int(math.Floor(y))
	opacity := min(l.Opacity, 1)

	brush := gg.NewCustomBrush(func(px, py float64) gg.RGBA {
		ix, iy := int(px)-ox, int(py)-oy
		if ix < 0 || iy < 0 || ix >= pw || iy >= ph {
			return gg.RGBA{}
		}
		return straight(scaled.RGBAAt(ix, iy), opacity)
	}).WithName("media")
	dc.SetFillBrush(brush)

	if l.Disc {
		dc.DrawCircle(l.CX*dpr, l.CY*dpr, l.R*dpr)
	} else {
		dc.DrawRectangle(0, 0, w, h)
	}
	_ = dc.Fill()
}

// cover scales the frame to fill w × h, cropping the centre. Reuses the last result for the same frame and size
func (l *MediaLayer) cover(w, h int) *image.RGBA {
	if l.scaled != nil && l.cacheSrc == l.Frame && l.cacheW == w && l.cacheH == h {
		return l.scaled
	}

	src := l.Frame.Bounds()
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw == 0 || sh == 0 {
		l.scaled = image.NewRGBA(image.Rect(0, 0, w, h))
		l.cacheSrc, l.cacheW, l.cacheH = l.Frame, w, h
		return l.scaled
	}
	scale := math.Max(float64(w)/sw, float64(h)/sh)
	cw, ch := float64(w)/scale, float64(h)/scale
	cx := float64(src.Min.X) + (sw-cw)/2
	cy := float64(src.Min.Y) + (sh-ch)/2
	crop := image.Rect(int(cx), int(cy), int(math.Ceil(cx+cw)), int(math.Ceil(cy+ch))).Intersect(src)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), l.Frame, crop, xdraw.Src, nil)

	l.cacheSrc, l.cacheW, l.cacheH = l.Frame, w, h
	l.scaled = dst
	return dst
}

// straight converts a premultiplied pixel to a straight-alpha canvas color
func straight(c color.RGBA, opacity float64) gg.RGBA {
	if c.A == 0 {
		return gg.RGBA{}
	}
	a := float64(c.A) / 255
	return gg.RGBA{
		R: float64(c.R) / 255 / a,
		G: float64(c.G) / 255 / a,
		B: float64(c.B) / 255 / a,
		A: a * opacity,
	}
}
