package render

import (
	"github.com/gogpu/gg"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/cursor"
)

// CursorLayer draws the companion cursor. It implements cursor.Surface for hosts without a native cursor element
type CursorLayer struct {
	visual   cursor.Visual
	has      bool
	Hidden   bool
	Detached bool
}

// Attached implements cursor.Surface
func (l *CursorLayer) Attached() bool { return !l.Detached }

// Apply implements cursor.Surface
func (l *CursorLayer) Apply(v cursor.Visual) {
	l.visual = v
	l.has = true
}

// Visual returns the last applied visual
func (l *CursorLayer) Visual() (cursor.Visual, bool) { return l.visual, l.has }

// IsVisible implements VisibilityToggle
func (l *CursorLayer) IsVisible() bool { return !l.Hidden && l.has }

// Render draws fill, border, arrow icon and label, in that order
func (l *CursorLayer) Render(ctx Context) {
	v := l.visual
	if v.Size <= 0 {
		return
	}
	dc := ctx.DC
	r := v.Size / 2

	if v.FillAlpha > 0 {
		c := ToRGBA(v.Fill, v.FillAlpha)
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.DrawCircle(v.X, v.Y, r)
		_ = dc.Fill()
	}
	if v.BorderAlpha > 0 && v.BorderWidth > 0 {
		c := ToRGBA(v.Border, v.BorderAlpha)
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.SetLineWidth(v.BorderWidth)
		dc.DrawCircle(v.X, v.Y, r-v.BorderWidth/2)
		_ = dc.Stroke()
	}
	if v.IconAlpha > 0 {
		drawArrows(dc, v)
	}
	if v.LabelAlpha > 0 && v.Label != "" {
		drawLabel(ctx, Label{
			Text:  v.Label,
			X:     v.X,
			Y:     v.Y,
			AX:    0.5,
			AY:    0.35,
			Size:  constant.CursorLabelSize,
			Color: MustHex(constant.LabelHex),
			Alpha: v.LabelAlpha,
		})
	}
}

// drawArrows strokes a left and right chevron inside the ring
func drawArrows(dc *gg.Context, v cursor.Visual) {
	c := ToRGBA(v.IconColor, v.IconAlpha)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(v.BorderWidth)
	dc.SetLineCap(gg.LineCapRound)

	arm := v.Size * 0.08
	off := v.Size * 0.22
	for _, dir := range [2]float64{-1, 1} {
		tip := v.X + dir*off
		back := tip - dir*arm
		dc.MoveTo(back, v.Y-arm)
		dc.LineTo(tip, v.Y)
		dc.LineTo(back, v.Y+arm)
		_ = dc.Stroke()
	}
}
