package terminal

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/ringdial/app"
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/render"
)

// upperHalf paints the top pixel as foreground and the bottom one as background
const upperHalf = '▀'

// Presenter draws app frames onto a tcell screen
type Presenter struct {
	screen tcell.Screen
	mode   ColorMode
	buf    *image.RGBA
}

// NewPresenter creates a presenter for screen
func NewPresenter(screen tcell.Screen, mode ColorMode) *Presenter {
	return &Presenter{screen: screen, mode: mode}
}

// Present implements app.Presenter
func (p *Presenter) Present(f app.Frame) {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 || f.Image == nil {
		return
	}

	px := p.downsample(f.Image, cols, rows*2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := px.RGBAAt(x, 2*y), px.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(cellColor(p.mode, RGB{top.R, top.G, top.B})).
				Background(cellColor(p.mode, RGB{bottom.R, bottom.G, bottom.B}))
			p.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}

	for _, lb := range f.Labels {
		p.drawLabel(px, lb, cols, rows)
	}
	p.screen.Show()
}

// downsample scales src to w x h, reusing the buffer between frames
func (p *Presenter) downsample(src image.Image, w, h int) *image.RGBA {
	if p.buf == nil || p.buf.Bounds().Dx() != w || p.buf.Bounds().Dy() != h {
		p.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	xdraw.BiLinear.Scale(p.buf, p.buf.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return p.buf
}

// labelCell returns the first cell of a label run, anchored like the raster text
func labelCell(lb render.Label, runes int) (col, row int) {
	col = int(math.Round(lb.X/constant.TermCellWidth - lb.AX*float64(runes)))
	row = int(math.Floor((lb.Y + (0.5-lb.AY)*lb.Size) / constant.TermCellHeight))
	return col, row
}

func (p *Presenter) drawLabel(px *image.RGBA, lb render.Label, cols, rows int) {
	if lb.Text == "" || lb.Alpha < constant.TermLabelAlpha {
		return
	}
	runes := []rune(lb.Text)
	col, row := labelCell(lb, len(runes))
	if row < 0 || row >= rows {
		return
	}
	r, g, b := lb.Color.RGB255()
	fg := cellColor(p.mode, RGB{r, g, b})
	for i, ch := range runes {
		x := col + i
		if x < 0 || x >= cols {
			continue
		}
		top, bottom := px.RGBAAt(x, 2*row), px.RGBAAt(x, 2*row+1)
		bg := RGB{
			uint8((int(top.R) + int(bottom.R)) / 2),
			uint8((int(top.G) + int(bottom.G)) / 2),
			uint8((int(top.B) + int(bottom.B)) / 2),
		}
		p.screen.SetContent(x, row, ch, nil, tcell.StyleDefault.Foreground(fg).Background(cellColor(p.mode, bg)))
	}
}
