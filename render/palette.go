package render

import (
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/logging"
	"github.com/lixenwraith/ringdial/vmath"
)

// Palette holds the tick reference colors
type Palette struct {
	Cool   colorful.Color
	Warm   colorful.Color
	Static colorful.Color
}

// DefaultPalette returns the teal/orange reference palette
func DefaultPalette() Palette {
	return Palette{
		Cool:   MustHex(constant.CoolHex),
		Warm:   MustHex(constant.WarmHex),
		Static: MustHex(constant.StaticHex),
	}
}

// ParsePalette overrides palette entries from hex strings; empty or invalid entries keep defaults
func ParsePalette(cool, warm, static string) Palette {
	p := DefaultPalette()
	set := func(dst *colorful.Color, s string) {
		if s == "" {
			return
		}
		c, err := colorful.Hex(s)
		if err != nil {
			logging.For("render").Debug("invalid palette color", "hex", s, "err", err)
			return
		}
		*dst = c
	}
	set(&p.Cool, cool)
	set(&p.Warm, warm)
	set(&p.Static, static)
	return p
}

// Blend returns the linear RGB blend from cool to warm by warmth in [0, 1]
func (p Palette) Blend(warmth float64) colorful.Color {
	return p.Cool.BlendRgb(p.Warm, vmath.Clamp01(warmth)).Clamped()
}

// MustHex parses a #RRGGBB constant, falling back to black
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// ToRGBA converts a color and alpha into a canvas color
func ToRGBA(c colorful.Color, alpha float64) gg.RGBA {
	c = c.Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: vmath.Clamp01(alpha)}
}
