package render

import (
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/ringdial/logging"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontFaces  = make(map[float64]text.Face)
	fontMu     sync.Mutex
)

// Face returns the label face at a backing pixel size, nil when the font failed to load
func Face(size float64) text.Face {
	fontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			logging.For("render").Debug("font load failed", "err", err)
			return
		}
		fontSource = src
	})
	if fontSource == nil || size <= 0 {
		return nil
	}

	fontMu.Lock()
	defer fontMu.Unlock()
	if f, ok := fontFaces[size]; ok {
		return f
	}
	f := fontSource.Face(size)
	fontFaces[size] = f
	return f
}

// Label is one run of text in css pixels. AX/AY anchor the run (0,0 top-left, 0.5,0.5 centre)
type Label struct {
	Text   string
	X, Y   float64
	AX, AY float64
	Size   float64
	Color  colorful.Color
	Alpha  float64
}

// TextLayer draws page labels
type TextLayer struct {
	Labels []Label
	Hidden bool
}

// IsVisible implements VisibilityToggle
func (l *TextLayer) IsVisible() bool { return !l.Hidden }

// Render draws each label with alpha above zero
func (l *TextLayer) Render(ctx Context) {
	for _, lb := range l.Labels {
		drawLabel(ctx, lb)
	}
}

func drawLabel(ctx Context, lb Label) {
	if lb.Text == "" || lb.Alpha <= 0 {
		return
	}
	face := Face(ctx.Backing(lb.Size))
	if face == nil {
		return
	}
	dc := ctx.DC
	dc.SetFont(face)
	c := ToRGBA(lb.Color, lb.Alpha)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.DrawStringAnchored(lb.Text, ctx.Backing(lb.X), ctx.Backing(lb.Y), lb.AX, lb.AY)
}
