package scene

import (
	"strings"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/cursor"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/render"
	"github.com/lixenwraith/ringdial/sector"
)

// Layout proportions
const (
	navRatio    = 0.08
	navMin      = 8.0
	navMax      = 64.0
	footerRatio = 0.1

	// dialSpan is container half-size over viewport radius; keeps the switch band inside the container
	dialSpan = 1.75
)

var (
	stateNav     = cursor.State{Kind: cursor.KindArrowWhiteOutline, ShowIcon: true}
	stateContact = cursor.State{Kind: cursor.KindSolidOrange, Label: "SAY HI"}
	stateBack    = cursor.State{Kind: cursor.KindArrowOrangeOutline, ShowIcon: true}
	stateCard    = cursor.State{Kind: cursor.KindArrowWhiteOutline, ShowIcon: true}
	stateCopy    = cursor.State{Kind: cursor.KindSolidOrange, Label: "COPY"}
)

// NewHome creates the home page with a dial over items
func NewHome(w, h float64, heading string, items []sector.Item) *Page {
	p := &Page{
		Name:    Home,
		Path:    PathHome,
		Heading: heading,
		Items:   items,
		Cursor:  &render.CursorLayer{},
		layout:  layoutHome,
	}
	p.Resize(w, h)
	return p
}

// NewAbout creates the about page with a static ring and a nested card
func NewAbout(w, h float64) *Page {
	p := &Page{
		Name:    About,
		Path:    PathAbout,
		Heading: "A small studio for moving pictures",
		Cursor:  &render.CursorLayer{},
		layout:  layoutAbout,
	}
	p.Resize(w, h)
	return p
}

// NewCase creates a case study page for an item, its media filling the background
func NewCase(w, h float64, path string, it sector.Item) *Page {
	p := &Page{
		Name:       Case,
		Path:       path,
		Heading:    it.Title,
		Background: it.Media,
		Cursor:     &render.CursorLayer{},
		layout:     layoutCase,
	}
	p.Meta.SetText(it.Meta)
	p.Resize(w, h)
	return p
}

// ForPath builds the page a path navigates to. ok is false for paths outside the site
func ForPath(path string, w, h float64, heading string, items []sector.Item) (*Page, bool) {
	switch {
	case path == PathHome || path == "":
		return NewHome(w, h, heading, items), true
	case path == PathAbout:
		return NewAbout(w, h), true
	case strings.HasPrefix(path, constant.CaseStudyPrefix):
		for _, it := range items {
			if ItemPath(it.Link) == path {
				return NewCase(w, h, path, it), true
			}
		}
		return NewCase(w, h, path, sector.Item{Title: strings.TrimPrefix(path, constant.CaseStudyPrefix)}), true
	}
	return nil, false
}

// ItemPath resolves an item link: bare slugs live under the case study prefix
func ItemPath(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	if strings.HasPrefix(link, "/") || strings.Contains(link, ":") {
		return link
	}
	return constant.CaseStudyPrefix + link
}

func navHeight(h float64) float64 {
	return min(max(h*navRatio, navMin), navMax)
}

// layoutNav places logo left and about, contact right, and returns their regions
func layoutNav(p *Page) []Region {
	nh := navHeight(p.Height)
	pad := nh * 0.4
	bh := nh * 0.5
	bw := nh * 1.6

	p.Nav[0] = NavLink{ID: "nav-logo", Label: "ringdial", Link: PathHome,
		Bounds: geometry.Rect{X: pad, Y: pad, W: bw * 1.5, H: bh}}
	p.Nav[1] = NavLink{ID: "nav-about", Label: "About", Link: PathAbout,
		Bounds: geometry.Rect{X: p.Width - pad - 2*bw - pad, Y: pad, W: bw, H: bh}}
	p.Nav[2] = NavLink{ID: "nav-contact", Label: "Contact", Link: PathContact,
		Bounds: geometry.Rect{X: p.Width - pad - bw, Y: pad, W: bw, H: bh}}

	regions := make([]Region, 0, len(p.Nav))
	for i, n := range p.Nav {
		st := stateNav
		if i == 2 {
			st = stateContact
		}
		regions = append(regions, Region{ID: n.ID, Bounds: n.Bounds, State: st, Link: n.Link})
	}
	return regions
}

func layoutHome(p *Page) {
	regions := layoutNav(p)
	nh := navHeight(p.Height)
	footer := p.Height * footerRatio

	area := geometry.Rect{X: 0, Y: nh, W: p.Width, H: p.Height - nh - footer}
	p.DialBox = area.Square()
	p.ViewportBox = p.DialBox.Inset(p.DialBox.W / 2 * (1 - 1/dialSpan))

	p.Regions = append(regions, Region{ID: "dial", Bounds: p.DialBox, Dial: true})
}

func layoutAbout(p *Page) {
	regions := layoutNav(p)
	nh := navHeight(p.Height)

	body := geometry.Rect{X: 0, Y: nh, W: p.Width, H: p.Height - nh}
	half := body.W / 2

	card := geometry.Rect{X: body.X + half*0.1, Y: body.Y + body.H*0.3, W: half * 0.8, H: body.H * 0.4}
	button := geometry.Rect{X: card.X + card.W*0.1, Y: card.Y + card.H*0.6, W: card.W * 0.5, H: card.H * 0.25}
	back := geometry.Rect{X: body.X + half*0.1, Y: body.Y + body.H*0.08, W: half * 0.3, H: body.H * 0.1}

	p.StaticRing = geometry.Rect{X: half, Y: body.Y, W: half, H: body.H}.Square().Inset(body.H * 0.05)
	p.DialBox, p.ViewportBox = geometry.Rect{}, geometry.Rect{}

	p.Regions = append(regions,
		Region{ID: "back", Bounds: back, State: stateBack, Link: PathHome},
		Region{ID: "card", Bounds: card, State: stateCard},
		Region{ID: "copy", Parent: "card", Bounds: button, State: stateCopy},
	)
}

func layoutCase(p *Page) {
	regions := layoutNav(p)
	nh := navHeight(p.Height)
	back := geometry.Rect{X: nh * 0.4, Y: p.Height - nh*1.4, W: nh * 2, H: nh}
	p.DialBox, p.ViewportBox, p.StaticRing = geometry.Rect{}, geometry.Rect{}, geometry.Rect{}
	p.Regions = append(regions, Region{ID: "back", Bounds: back, State: stateBack, Link: PathHome})
}
