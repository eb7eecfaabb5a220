package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/geometry"
	"github.com/lixenwraith/ringdial/sector"
	"github.com/lixenwraith/ringdial/vmath"
)

// Mode selects how the tick ring is styled
type Mode uint8

const (
	// ModeDesktop keeps the ring fixed and applies pointer attraction
	ModeDesktop Mode = iota
	// ModeMobile rotates the ring as a rigid body, no attraction
	ModeMobile
	// ModeStatic draws a uniform, non-interactive ring
	ModeStatic
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeMobile:
		return "mobile"
	case ModeStatic:
		return "static"
	}
	return "unknown"
}

// Snapshot is the complete state one frame's tick styling may read
type Snapshot struct {
	Mode     Mode
	Geometry geometry.Geometry
	Layout   sector.Layout
	Fade     sector.FadeState
	Palette  Palette

	// Pointer in polar form relative to the ring centre
	PointerPresent bool
	PointerAngle   float64
	PointerDist    float64

	// Attraction ease scalar in [0, 1]
	Attraction float64

	// Mobile ring rotation in degrees
	Rotation float64

	// Intro overlay
	IntroActive bool
	IntroTime   float64
}

// TickStyle is the computed appearance of one tick
type TickStyle struct {
	// Angle is the ring-frame angle (top-0, clockwise)
	Angle     float64
	Length    float64
	Influence float64
	Warmth    float64
	Color     colorful.Color
	Alpha     float64
	Scale     float64
}

// TickAngle returns the ring-frame angle of tick i. Tick 0 sits at 3 o'clock
func TickAngle(i int) float64 {
	return vmath.Mod(float64(i)*constant.TickStep+90, 360)
}

// RingOrder returns the clockwise position of tick i counted from the 12 o'clock tick
func RingOrder(i int) int {
	return vmath.ModInt(i-constant.IntroStartTick, constant.TickCount)
}

// IntroStart returns the intro clock time at which tick i starts revealing
func IntroStart(i int) float64 {
	return float64(RingOrder(i)) * constant.IntroTickStagger
}

// IntroProgress returns the eased reveal of tick i at intro clock time t
func IntroProgress(i int, t float64) float64 {
	return vmath.EaseOutCubic((t - IntroStart(i)) / constant.IntroTickDuration)
}

// Influence returns the pointer attraction for a tick at ring angle, before easing
func Influence(angle float64, s Snapshot) float64 {
	if !s.PointerPresent {
		return 0
	}
	g := s.Geometry

	dAng := vmath.AngularDistance(angle, s.PointerAngle)
	iAng := math.Max(0, 1-dAng/constant.AttractionAngularFalloff)
	if iAng == 0 {
		return 0
	}

	dEdge := math.Min(math.Abs(s.PointerDist-g.InnerR), math.Abs(s.PointerDist-g.OuterBaseR()))
	iRad := 1.0
	if g.RadFalloff > 0 {
		iRad = math.Max(0, 1-math.Max(0, dEdge-g.NearR)/g.RadFalloff)
	}
	return iAng * iRad
}

// Style computes tick i from the snapshot alone. No tick reads another tick or a previous frame
func Style(i int, s Snapshot) TickStyle {
	g := s.Geometry
	st := TickStyle{
		Angle:  TickAngle(i),
		Length: g.BaseLen,
		Alpha:  1,
		Scale:  1,
	}

	switch s.Mode {
	case ModeStatic:
		st.Color = s.Palette.Static

	case ModeMobile:
		st.Warmth = s.Fade.Mix(s.Layout, st.Angle)
		st.Color = s.Palette.Blend(st.Warmth)

	default:
		st.Influence = Influence(st.Angle, s) * vmath.Clamp01(s.Attraction)
		highlight := s.Fade.Mix(s.Layout, st.Angle)
		st.Warmth = math.Max(st.Influence, highlight)
		st.Length = g.BaseLen + (g.MaxLen-g.BaseLen)*st.Influence
		st.Color = s.Palette.Blend(st.Warmth)
	}

	if s.IntroActive && s.Mode != ModeStatic {
		p := IntroProgress(i, s.IntroTime)
		st.Alpha = p
		st.Scale = p
	}
	return st
}
