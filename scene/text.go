package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/intro"
	"github.com/lixenwraith/ringdial/render"
)

// Approximate advance of the label face, as a fraction of its size
const (
	glyphAdvance = 0.55
	wordSpace    = 0.3
)

func headingSize(h float64) float64 {
	return min(max(h*0.035, 6), 28)
}

// Labels lays out the page text as it should appear under an intro view
func (p *Page) Labels(v intro.View, c colorful.Color) []render.Label {
	var out []render.Label
	nh := navHeight(p.Height)

	// Heading words slide up from their own baseline
	size := headingSize(p.Height)
	x := nh * 0.4
	y := nh + size
	for i, w := range p.Words() {
		r := reveal(v.Words, i)
		out = append(out, render.Label{
			Text: w, X: x, Y: y + r.Offset*size, AY: 0.5,
			Size: size, Color: c, Alpha: r.Alpha * v.TextAlpha,
		})
		x += (float64(len([]rune(w)))*glyphAdvance + wordSpace) * size
	}

	for i, n := range p.Nav {
		r := v.Nav[i]
		if !v.NavVisible {
			r = intro.Reveal{Offset: 1}
		}
		cx, cy := n.Bounds.Center()
		out = append(out, render.Label{
			Text: n.Label, X: cx, Y: cy + r.Offset*n.Bounds.H, AX: 0.5, AY: 0.5,
			Size: constant.NavSize, Color: c, Alpha: r.Alpha,
		})
	}

	switch p.Name {
	case Home:
		if p.HasDial() {
			base := p.DialBox.Y + p.DialBox.H
			cx, _ := p.DialBox.Center()
			out = append(out,
				render.Label{Text: p.Title.Text(), X: cx, Y: base + constant.TitleSize, AX: 0.5, AY: 0.5,
					Size: constant.TitleSize, Color: c, Alpha: v.DialUI},
				render.Label{Text: p.Meta.Text(), X: cx, Y: base + 2.2*constant.TitleSize, AX: 0.5, AY: 0.5,
					Size: constant.MetaSize, Color: c, Alpha: v.DialUI},
			)
		}
	case About:
		if card, ok := p.region("card"); ok {
			out = append(out, render.Label{Text: "hello@ringdial.dev", X: card.Bounds.X + card.Bounds.W*0.1,
				Y: card.Bounds.Y + card.Bounds.H*0.3, AY: 0.5, Size: constant.TitleSize, Color: c, Alpha: 1})
		}
		if back, ok := p.region("back"); ok {
			out = append(out, backLabel(back, c))
		}
	case Case:
		out = append(out, render.Label{Text: p.Meta.Text(), X: nh * 0.4, Y: nh + 2.5*size, AY: 0.5,
			Size: constant.MetaSize, Color: c, Alpha: v.TextAlpha})
		if back, ok := p.region("back"); ok {
			out = append(out, backLabel(back, c))
		}
	}
	return out
}

func backLabel(r Region, c colorful.Color) render.Label {
	cx, cy := r.Bounds.Center()
	return render.Label{Text: "Back", X: cx, Y: cy, AX: 0.5, AY: 0.5, Size: constant.NavSize, Color: c, Alpha: 1}
}

// reveal returns word i's reveal, fully shown when the view carries no entry for it
func reveal(words []intro.Reveal, i int) intro.Reveal {
	if i < len(words) {
		return words[i]
	}
	return intro.Reveal{Alpha: 1}
}
