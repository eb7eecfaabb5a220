package sector

import (
	"math"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/vmath"
)

// Layout divides the ring into N equal wedges, sector i centred at i·Width
type Layout struct {
	N int
}

// NewLayout creates a layout for n items, capped at MaxItems. n < 1 yields a single sector
func NewLayout(n int) Layout {
	n = min(n, constant.MaxItems)
	if n < 1 {
		n = 1
	}
	return Layout{N: n}
}

// Width returns the angular width of one sector in degrees
func (l Layout) Width() float64 { return 360 / float64(l.N) }

// Center returns the angular centre of sector i
func (l Layout) Center(i int) float64 { return float64(vmath.ModInt(i, l.N)) * l.Width() }

// Index maps a top-0 clockwise angle to the sector containing it
func (l Layout) Index(angle float64) int {
	w := l.Width()
	idx := int(math.Floor(vmath.Mod(angle+w/2, 360) / w))
	return min(max(idx, 0), l.N-1)
}

// Step maps an accumulated rotation in degrees to the detent index
func (l Layout) Step(rotation float64) int {
	return vmath.ModInt(int(roundHalfUp(rotation/l.Width())), l.N)
}

// Detent returns the ring-frame angle that sits at 12 o'clock for a given rotation
func (l Layout) Detent(rotation float64) float64 {
	w := l.Width()
	return vmath.Mod(-roundHalfUp(rotation/w)*w, 360)
}

// Weight shapes the highlight of a tick at angle for a sector centred at centre:
// full inside the flat zone, linear taper to zero at the sector edges, zero outside
func (l Layout) Weight(angle, centre float64) float64 {
	d := vmath.AngularDistance(angle, centre)
	half := l.Width() / 2
	flat := math.Min(constant.HighlightFlatHalf, half)

	switch {
	case d <= flat:
		return 1
	case d >= half:
		return 0
	default:
		return 1 - (d-flat)/(half-flat)
	}
}

// roundHalfUp rounds .5 toward positive infinity
func roundHalfUp(x float64) float64 { return math.Floor(x + 0.5) }
