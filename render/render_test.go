package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/sector"
)

const eps = 1e-9

func testSnapshot(mode Mode) Snapshot {
	g := geometry.Compute(
		geometry.Rect{W: 600, H: 600},
		geometry.Rect{X: 47, Y: 47, W: 506, H: 506},
		1,
	)
	return Snapshot{
		Mode:       mode,
		Geometry:   g,
		Layout:     sector.NewLayout(8),
		Palette:    DefaultPalette(),
		Attraction: 1,
	}
}

func TestStyleRestingDesktop(t *testing.T) {
	s := testSnapshot(ModeDesktop)
	for i := range constant.TickCount {
		st := Style(i, s)
		if st.Influence != 0 || st.Length != s.Geometry.BaseLen || st.Warmth != 0 {
			t.Fatalf("tick %d resting style %+v", i, st)
		}
		if st.Alpha != 1 || st.Scale != 1 {
			t.Fatalf("tick %d alpha=%v scale=%v outside intro", i, st.Alpha, st.Scale)
		}
	}
}

func TestStylePointerOnTick(t *testing.T) {
	s := testSnapshot(ModeDesktop)
	s.PointerPresent = true
	s.PointerAngle = TickAngle(10)
	s.PointerDist = s.Geometry.InnerR

	st := Style(10, s)
	if math.Abs(st.Influence-1) > eps {
		t.Errorf("influence %v, want 1", st.Influence)
	}
	if math.Abs(st.Length-s.Geometry.MaxLen) > eps {
		t.Errorf("length %v, want max %v", st.Length, s.Geometry.MaxLen)
	}
	if st.Color != s.Palette.Blend(1) {
		t.Errorf("color %v, want warm", st.Color)
	}

	s.Attraction = 0.5
	if got := Style(10, s).Influence; math.Abs(got-0.5) > eps {
		t.Errorf("half attraction influence %v, want 0.5", got)
	}

	// beyond the angular falloff nothing is attracted
	far := Style(10+8, s)
	if far.Influence != 0 {
		t.Errorf("tick 30° away influenced %v", far.Influence)
	}
}

func TestInfluenceBounded(t *testing.T) {
	s := testSnapshot(ModeDesktop)
	s.PointerPresent = true
	for d := 0.0; d < 600; d += 7 {
		for a := 0.0; a < 360; a += 11 {
			s.PointerAngle, s.PointerDist = a, d
			for i := range constant.TickCount {
				st := Style(i, s)
				if st.Influence < 0 || st.Influence > 1 {
					t.Fatalf("influence %v out of range at a=%v d=%v", st.Influence, a, d)
				}
				if st.Length < s.Geometry.BaseLen-eps || st.Length > s.Geometry.MaxLen+eps {
					t.Fatalf("length %v out of range", st.Length)
				}
			}
		}
	}
}

func TestRadialFalloff(t *testing.T) {
	s := testSnapshot(ModeDesktop)
	s.PointerPresent = true
	s.PointerAngle = TickAngle(0)
	g := s.Geometry

	// inside the near band the radial term stays at 1
	s.PointerDist = g.OuterBaseR() + g.NearR
	if got := Influence(TickAngle(0), s); math.Abs(got-1) > eps {
		t.Errorf("influence at near band edge %v, want 1", got)
	}
	s.PointerDist = g.OuterBaseR() + g.NearR + g.RadFalloff
	if got := Influence(TickAngle(0), s); got > eps {
		t.Errorf("influence past falloff %v, want 0", got)
	}
}

func TestWarmthIsMaxOfHighlightAndInfluence(t *testing.T) {
	s := testSnapshot(ModeDesktop)
	var f sector.Fade
	f.Start(0, 0)
	s.Fade = f.Snapshot()

	// tick 72 sits at 12 o'clock, the centre of sector 0
	top := Style(constant.IntroStartTick, s)
	if top.Warmth != 1 || top.Length != s.Geometry.BaseLen {
		t.Errorf("highlighted tick warmth=%v length=%v", top.Warmth, top.Length)
	}
	bottom := Style(constant.IntroStartTick-48, s)
	if bottom.Warmth != 0 {
		t.Errorf("opposite tick warmth %v", bottom.Warmth)
	}
}

func TestMobileHasNoAttraction(t *testing.T) {
	s := testSnapshot(ModeMobile)
	s.PointerPresent = true
	s.PointerAngle = TickAngle(5)
	s.PointerDist = s.Geometry.InnerR
	st := Style(5, s)
	if st.Influence != 0 || st.Length != s.Geometry.BaseLen {
		t.Errorf("mobile tick attracted: %+v", st)
	}
}

func TestStaticIsUniform(t *testing.T) {
	s := testSnapshot(ModeStatic)
	s.PointerPresent = true
	s.PointerDist = s.Geometry.InnerR
	s.IntroActive = true
	first := Style(0, s)
	for i := range constant.TickCount {
		st := Style(i, s)
		if st.Color != s.Palette.Static || st.Length != first.Length || st.Alpha != 1 {
			t.Fatalf("static tick %d differs: %+v", i, st)
		}
	}
}

func TestIntroOrder(t *testing.T) {
	if RingOrder(constant.IntroStartTick) != 0 {
		t.Fatalf("tick %d should start the reveal", constant.IntroStartTick)
	}
	if IntroStart(constant.IntroStartTick+1) <= IntroStart(constant.IntroStartTick) {
		t.Error("reveal does not proceed clockwise")
	}
	last := constant.IntroStartTick - 1
	if math.Abs(IntroStart(last)-(constant.IntroTotal-constant.IntroTickDuration)) > 1e-9 {
		t.Errorf("last tick starts at %v", IntroStart(last))
	}

	if p := IntroProgress(last, IntroStart(last)); p != 0 {
		t.Errorf("progress at start %v, want 0", p)
	}
	if p := IntroProgress(last, constant.IntroTotal); p != 1 {
		t.Errorf("progress at total %v, want 1", p)
	}

	s := testSnapshot(ModeDesktop)
	s.IntroActive = true
	s.IntroTime = 0
	if st := Style(last, s); st.Alpha != 0 || st.Scale != 0 {
		t.Errorf("unrevealed tick alpha=%v scale=%v", st.Alpha, st.Scale)
	}
}

func TestStyleIsPure(t *testing.T) {
	s := testSnapshot(ModeDesktop)
	s.PointerPresent = true
	s.PointerAngle = 33
	s.PointerDist = s.Geometry.InnerR + 4
	for i := range constant.TickCount {
		if Style(i, s) != Style(i, s) {
			t.Fatalf("tick %d style not deterministic", i)
		}
	}
}

type recordLayer struct {
	name   string
	log    *[]string
	hidden bool
}

func (l *recordLayer) Render(Context)  { *l.log = append(*l.log, l.name) }
func (l *recordLayer) IsVisible() bool { return !l.hidden }

func TestOrchestratorOrder(t *testing.T) {
	var log []string
	o := NewOrchestrator(40, 20, 2)
	o.Register(&recordLayer{name: "cursor", log: &log}, constant.PriorityCursor)
	o.Register(&recordLayer{name: "ticks-a", log: &log}, constant.PriorityTicks)
	o.Register(&recordLayer{name: "bg", log: &log}, constant.PriorityBackground)
	o.Register(&recordLayer{name: "ticks-b", log: &log}, constant.PriorityTicks)
	hidden := &recordLayer{name: "hidden", log: &log, hidden: true}
	o.Register(hidden, constant.PriorityDisc)

	img := o.RenderFrame()
	want := []string{"bg", "ticks-a", "ticks-b", "cursor"}
	if len(log) != len(want) {
		t.Fatalf("rendered %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("rendered %v, want %v", log, want)
		}
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("backing %v, want 80x40", b)
	}

	o.Unregister(hidden)
	if o.Len() != 4 {
		t.Errorf("len %d after unregister", o.Len())
	}

	o.Resize(50, 10, 1)
	if b := o.RenderFrame().Bounds(); b.Dx() != 50 || b.Dy() != 10 {
		t.Errorf("resized backing %v", b)
	}
}

func greenAt(img image.Image, x, y int) uint32 {
	_, g, _, _ := img.At(x, y).RGBA()
	return g >> 8
}

func TestTickLayerDrawsStaticRing(t *testing.T) {
	g := geometry.FitStatic(200, 1)
	o := NewOrchestrator(200, 200, 1)
	o.Register(&TickLayer{Snapshot: Snapshot{
		Mode:     ModeStatic,
		Geometry: g,
		Layout:   sector.NewLayout(1),
		Palette:  DefaultPalette(),
	}}, constant.PriorityTicks)
	img := o.RenderFrame()

	// top tick runs from innerR up to the canvas edge along x = centre
	y := int(g.CY - g.InnerR - g.BaseLen/2)
	var peak uint32
	for x := 97; x <= 103; x++ {
		peak = max(peak, greenAt(img, x, y))
	}
	if peak < 60 {
		t.Errorf("no tick pixels at top, peak green %d", peak)
	}
	if got := greenAt(img, 100, 100); got > 20 {
		t.Errorf("centre painted, green %d", got)
	}
}

func TestMediaDiscClipsFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := range 8 {
		for x := range 16 {
			frame.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	disc := NewDiscLayer()
	disc.Frame = frame
	disc.CX, disc.CY, disc.R = 50, 50, 30

	o := NewOrchestrator(100, 100, 1)
	o.Register(disc, constant.PriorityDisc)
	img := o.RenderFrame()

	r, _, _, _ := img.At(50, 50).RGBA()
	if r>>8 < 200 {
		t.Errorf("disc centre red %d, want frame colour", r>>8)
	}
	r, _, _, _ = img.At(2, 2).RGBA()
	if r>>8 > 40 {
		t.Errorf("corner red %d, frame leaked outside disc", r>>8)
	}

	disc.Opacity = 0
	img = o.RenderFrame()
	r, _, _, _ = img.At(50, 50).RGBA()
	if r>>8 > 40 {
		t.Errorf("zero opacity still drew frame, red %d", r>>8)
	}
}

func TestStraightAlpha(t *testing.T) {
	c := straight(color.RGBA{R: 64, G: 0, B: 0, A: 128}, 0.5)
	if math.Abs(c.R-0.5) > 0.01 || math.Abs(c.A-0.25) > 0.01 {
		t.Errorf("straight = %+v", c)
	}
	if straight(color.RGBA{}, 1) != (straight(color.RGBA{}, 0)) {
		t.Error("transparent pixel not normalised")
	}
}

func TestParsePaletteKeepsDefaultsOnError(t *testing.T) {
	p := ParsePalette("nothex", "#112233", "")
	d := DefaultPalette()
	if p.Cool != d.Cool || p.Static != d.Static {
		t.Error("invalid entries replaced defaults")
	}
	if p.Warm == d.Warm {
		t.Error("valid warm override ignored")
	}
}
