package render

import (
	"github.com/gogpu/gg"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/vmath"
)

// TickLayer strokes the ring from a per-frame snapshot
type TickLayer struct {
	Snapshot Snapshot
	Hidden   bool
}

// IsVisible implements VisibilityToggle
func (l *TickLayer) IsVisible() bool { return !l.Hidden }

// Render draws every tick radially outward from the inner radius
func (l *TickLayer) Render(ctx Context) {
	s := l.Snapshot
	g := s.Geometry
	if !g.Valid() {
		return
	}
	dc := ctx.DC
	dc.Translate(g.OriginX, g.OriginY)

	// Mobile rotates the whole layer as a rigid body
	if s.Mode == ModeMobile && s.Rotation != 0 {
		dc.RotateAbout(vmath.DegToRad(s.Rotation), g.CX, g.CY)
	}

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(g.TickWidth)

	for i := range constant.TickCount {
		st := Style(i, s)
		if st.Alpha <= 0 || st.Scale <= 0 {
			continue
		}
		x1, y1 := vmath.PolarTop0(g.CX, g.CY, g.InnerR, st.Angle)
		x2, y2 := vmath.PolarTop0(g.CX, g.CY, g.InnerR+st.Length*st.Scale, st.Angle)

		c := ToRGBA(st.Color, st.Alpha)
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.DrawLine(x1, y1, x2, y2)
		_ = dc.Stroke()
	}
}
