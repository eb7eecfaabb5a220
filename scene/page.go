package scene

import (
	"strings"

	"github.com/lixenwraith/ringdial/cursor"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/intro"
	"github.com/lixenwraith/ringdial/render"
	"github.com/lixenwraith/ringdial/sector"
)

// Page names
const (
	Home  = "home"
	About = "about"
	Case  = "case"
)

// Paths
const (
	PathHome    = "/"
	PathAbout   = "/about"
	PathContact = "mailto:hello@ringdial.dev"
)

// Region is an interactive box on a page. Regions are kept in document order, parents before children
type Region struct {
	ID     string
	Parent string
	Bounds geometry.Rect
	State  cursor.State

	// Dial marks the dial component; the dial owns the cursor state inside it
	Dial bool

	// Link is navigated to on activation, empty when inert
	Link string
}

// NavLink is one navigation entry revealed by the intro (logo, about, contact)
type NavLink struct {
	ID     string
	Label  string
	Link   string
	Bounds geometry.Rect
}

// TextSink holds text presented on the page
type TextSink struct {
	text string
}

// SetText implements sector.TextSink
func (t *TextSink) SetText(s string) { t.text = s }

// Text returns the current text
func (t *TextSink) Text() string { return t.text }

// Page is one replaceable document: region descriptors for hit testing, the dial mount boxes,
// text sinks and the cursor surface
type Page struct {
	Name    string
	Path    string
	Width   float64
	Height  float64
	Heading string

	Nav     [intro.NavLinks]NavLink
	Regions []Region

	// Dial mount; DialBox is empty on pages without a dial
	DialBox     geometry.Rect
	ViewportBox geometry.Rect
	Items       []sector.Item
	Title       TextSink
	Meta        TextSink

	// StaticRing is the square holding a non-interactive ring, empty when absent
	StaticRing geometry.Rect

	// Background media shown behind the page; empty when none
	Background string

	Cursor *render.CursorLayer

	layout func(p *Page)
}

// HasDial reports whether the page mounts a dial
func (p *Page) HasDial() bool { return !p.DialBox.Empty() }

// Words returns the heading split for the staggered reveal
func (p *Page) Words() []string { return strings.Fields(p.Heading) }

// Resize lays the page out again for a new size
func (p *Page) Resize(w, h float64) {
	p.Width, p.Height = w, h
	if p.layout != nil {
		p.layout(p)
	}
}

// HitTest implements cursor.Document: the chain of regions under (x, y), outermost first
func (p *Page) HitTest(x, y float64) []cursor.Region {
	deepest := -1
	for i, r := range p.Regions {
		if r.Bounds.Contains(x, y) {
			deepest = i
		}
	}
	if deepest < 0 {
		return nil
	}

	var chain []cursor.Region
	for r, ok := p.Regions[deepest], true; ok; r, ok = p.region(r.Parent) {
		chain = append(chain, cursor.Region{ID: r.ID, State: r.State, Dial: r.Dial})
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Surface implements cursor.Document
func (p *Page) Surface() cursor.Surface {
	if p.Cursor == nil {
		return nil
	}
	return p.Cursor
}

// LinkAt returns the link of the innermost linked region under (x, y)
func (p *Page) LinkAt(x, y float64) (string, bool) {
	for i := len(p.Regions) - 1; i >= 0; i-- {
		r := p.Regions[i]
		if r.Link != "" && r.Bounds.Contains(x, y) {
			return r.Link, true
		}
	}
	return "", false
}

// Detach marks the page replaced; its cursor surface reports detached from now on
func (p *Page) Detach() {
	if p.Cursor != nil {
		p.Cursor.Detached = true
	}
}

func (p *Page) region(id string) (Region, bool) {
	if id == "" {
		return Region{}, false
	}
	for _, r := range p.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}
