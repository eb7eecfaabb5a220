package render

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/logging"
)

// Priority orders layers, lower draws first
type Priority int

// Context provides frame state for layers, passed by value.
// DC carries a dpr scale so layers draw in css pixels; text is drawn in backing pixels
type Context struct {
	DC     *gg.Context
	DPR    float64
	Width  float64
	Height float64
}

// Backing converts css pixels to backing pixels
func (c Context) Backing(v float64) float64 { return v * c.DPR }

// Layer is implemented by everything drawn on the canvas
type Layer interface {
	Render(ctx Context)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator owns the canvas and coordinates the layer pipeline
type Orchestrator struct {
	dc         *gg.Context
	dpr        float64
	width      float64
	height     float64
	background gg.RGBA
	layers     []layerEntry
	regCount   int
}

// NewOrchestrator creates a canvas of css size width × height at dpr
func NewOrchestrator(width, height, dpr float64) *Orchestrator {
	if dpr <= 0 {
		dpr = 1
	}
	bw, bh := backing(width, height, dpr)
	return &Orchestrator{
		dc:         gg.NewContext(bw, bh),
		dpr:        dpr,
		width:      width,
		height:     height,
		background: ToRGBA(MustHex(constant.BackgroundHex), 1),
		layers:     make([]layerEntry, 0, 8),
	}
}

// SetBackground replaces the clear color
func (o *Orchestrator) SetBackground(c gg.RGBA) { o.background = c }

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority Priority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Unregister removes every entry of a layer
func (o *Orchestrator) Unregister(l Layer) {
	kept := o.layers[:0]
	for _, e := range o.layers {
		if e.layer != l {
			kept = append(kept, e)
		}
	}
	clear(o.layers[len(kept):])
	o.layers = kept
}

// Len returns the number of registered layers
func (o *Orchestrator) Len() int { return len(o.layers) }

// Resize replaces the backing store when css size or dpr change
func (o *Orchestrator) Resize(width, height, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	o.width, o.height, o.dpr = width, height, dpr
	bw, bh := backing(width, height, dpr)
	if bw == o.dc.Width() && bh == o.dc.Height() {
		return
	}
	if err := o.dc.Resize(bw, bh); err != nil {
		logging.For("render").Debug("canvas resize failed, recreating", "w", bw, "h", bh, "err", err)
		o.dc = gg.NewContext(bw, bh)
	}
}

// Size returns css size and dpr
func (o *Orchestrator) Size() (width, height, dpr float64) {
	return o.width, o.height, o.dpr
}

// Canvas exposes the drawing context
func (o *Orchestrator) Canvas() *gg.Context { return o.dc }

// RenderFrame executes the pipeline: clear, render visible layers in priority order
func (o *Orchestrator) RenderFrame() image.Image {
	o.dc.ClearWithColor(o.background)

	ctx := Context{DC: o.dc, DPR: o.dpr, Width: o.width, Height: o.height}
	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		o.dc.Push()
		o.dc.Identity()
		o.dc.Scale(o.dpr, o.dpr)
		entry.layer.Render(ctx)
		o.dc.Pop()
	}
	return o.dc.Image()
}

// EncodePNG writes the last frame
func (o *Orchestrator) EncodePNG(w io.Writer) error {
	return o.dc.EncodePNG(w)
}

func backing(width, height, dpr float64) (int, int) {
	bw := int(math.Round(width * dpr))
	bh := int(math.Round(height * dpr))
	return max(bw, 1), max(bh, 1)
}
