package dial

import (
	"image"
	"time"

	"github.com/lixenwraith/ringdial/cursor"
	"github.com/lixenwraith/ringdial/event"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/intro"
	"github.com/lixenwraith/ringdial/render"
	"github.com/lixenwraith/ringdial/sector"
)

// Item is one content entry bound to a sector
type Item = sector.Item

// MediaSlot is a swappable, playable media element
type MediaSlot interface {
	sector.MediaSlot
	Play() error
	Frame() image.Image
	Position() time.Duration
	Seek(pos time.Duration)
	Advance(dt time.Duration)
}

// Cursor is the companion cursor the dial drives while the pointer is over it
type Cursor interface {
	SetPosition(x, y float64)
	SetState(kind cursor.Kind, label string, showIcon bool)
}

// Mount is everything the dial reads from its page. A mount missing the canvas,
// the viewport or items is not ready and Init refuses it
type Mount struct {
	// Component and Viewport are page-space boxes of the dial container and the inner media circle
	Component geometry.Rect
	Viewport  geometry.Rect
	DPR       float64

	// Bounds re-reads both boxes after a resize; nil keeps the mounted boxes
	Bounds func() (component, viewport geometry.Rect)

	Items []Item

	Title sector.TextSink
	Meta  sector.TextSink

	Foreground MediaSlot
	Background MediaSlot

	// Canvas receives the dial layers; nil means no canvas
	Canvas *render.Orchestrator
	Bus    *event.Bus

	// Cursor is optional; coarse pointers never drive it
	Cursor Cursor

	// Clock is the shared intro progress; nil means no intro
	Clock *intro.Clock
}

// Ready reports whether the mount carries everything Init needs
func (m Mount) Ready() bool {
	return m.Canvas != nil && m.Bus != nil && !m.Component.Empty() && !m.Viewport.Empty() && len(m.Items) > 0
}
