package sector

import (
	"time"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/vmath"
)

// Item is one content entry bound to a sector
type Item struct {
	Index  int
	Title  string
	Meta   string
	Media  string
	Poster string
	Link   string
}

// TextSink receives displayed text
type TextSink interface {
	SetText(s string)
}

// MediaSlot is a media element whose poster and source can be swapped
type MediaSlot interface {
	Source() string
	SetPoster(url string)
	SetSource(url string)
}

// Sinks are the presentation targets updated on every sector change
type Sinks struct {
	Title TextSink
	Meta  TextSink
	Media []MediaSlot
}

// ChangeFunc is called after the active sector changes
type ChangeFunc func(prev, next int)

// Selector owns the active index and the highlight fade
type Selector struct {
	layout  Layout
	items   []Item
	sinks   Sinks
	active  int
	fade    Fade
	reduced bool

	OnChange ChangeFunc
}

// NewSelector creates a selector over items (truncated to MaxItems). Nothing is applied until the first Apply
func NewSelector(items []Item, sinks Sinks, reducedMotion bool) *Selector {
	if len(items) > constant.MaxItems {
		items = items[:constant.MaxItems]
	}
	return &Selector{
		layout:  NewLayout(len(items)),
		items:   items,
		sinks:   sinks,
		active:  -1,
		reduced: reducedMotion,
	}
}

// Layout returns the sector layout
func (s *Selector) Layout() Layout { return s.layout }

// Items returns the bound items
func (s *Selector) Items() []Item { return s.items }

// Active returns the active index, or 0 before the first Apply
func (s *Selector) Active() int { return max(s.active, 0) }

// ActiveItem returns the active item, ok is false with no items
func (s *Selector) ActiveItem() (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	return s.items[s.Active()], true
}

// Apply selects idx (wrapped into range), highlighting its sector centre
func (s *Selector) Apply(idx int) bool {
	return s.ApplyAt(idx, s.layout.Center(vmath.ModInt(idx, s.layout.N)))
}

// ApplyAt selects idx with the highlight anchored at centre (ring-frame degrees). Returns false when unchanged
func (s *Selector) ApplyAt(idx int, centre float64) bool {
	if len(s.items) == 0 {
		return false
	}
	idx = vmath.ModInt(idx, s.layout.N)
	if idx == s.active {
		return false
	}

	prev := s.active
	s.active = idx
	it := s.items[idx]

	if s.sinks.Title != nil {
		s.sinks.Title.SetText(it.Title)
	}
	if s.sinks.Meta != nil {
		s.sinks.Meta.SetText(it.Meta)
	}
	for _, slot := range s.sinks.Media {
		if slot == nil {
			continue
		}
		// Poster first so the slot never shows an empty frame
		if it.Poster != "" {
			slot.SetPoster(it.Poster)
		}
		if it.Media != "" && slot.Source() != it.Media {
			slot.SetSource(it.Media)
		}
	}

	d := constant.HighlightFade
	if s.reduced {
		d = 0
	}
	s.fade.Start(centre, d)

	if s.OnChange != nil {
		s.OnChange(prev, idx)
	}
	return true
}

// Advance steps the highlight fade
func (s *Selector) Advance(dt time.Duration) { s.fade.Advance(dt) }

// Fade returns a frozen copy of the highlight fade
func (s *Selector) Fade() FadeState { return s.fade.Snapshot() }

// SetReducedMotion toggles instantaneous highlight changes
func (s *Selector) SetReducedMotion(on bool) { s.reduced = on }
