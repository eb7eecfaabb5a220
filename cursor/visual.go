package cursor

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/vmath"
)

// Visual is the presented cursor at one instant, centred on (X, Y) in page space
type Visual struct {
	X, Y float64

	Size        float64
	Fill        colorful.Color
	FillAlpha   float64
	Border      colorful.Color
	BorderAlpha float64
	BorderWidth float64

	Label      string
	LabelAlpha float64
	IconAlpha  float64
	IconColor  colorful.Color
}

func (v *Visual) setTarget(t Target) {
	v.Size = t.Size
	v.Fill, v.FillAlpha = t.Fill, t.FillAlpha
	v.Border, v.BorderAlpha = t.Border, t.BorderAlpha
	v.LabelAlpha = t.LabelAlpha
	v.IconAlpha = t.IconAlpha
	v.IconColor = t.Border
}

// tween animates the visual between two targets with an out-ease
type tween struct {
	from     Target
	to       Target
	elapsed  time.Duration
	duration time.Duration
}

func (tw *tween) start(from, to Target, d time.Duration) {
	tw.from, tw.to = from, to
	tw.elapsed = 0
	tw.duration = d
}

func (tw *tween) done() bool { return tw.elapsed >= tw.duration }

func (tw *tween) advance(dt time.Duration) {
	if tw.done() {
		return
	}
	tw.elapsed = min(tw.elapsed+dt, tw.duration)
}

// current returns the interpolated target
func (tw *tween) current() Target {
	if tw.duration <= 0 || tw.done() {
		return tw.to
	}
	p := vmath.EaseOutQuart(float64(tw.elapsed) / float64(tw.duration))
	return Target{
		Size:        vmath.Lerp(tw.from.Size, tw.to.Size, p),
		Fill:        tw.from.Fill.BlendRgb(tw.to.Fill, p),
		FillAlpha:   vmath.Lerp(tw.from.FillAlpha, tw.to.FillAlpha, p),
		Border:      tw.from.Border.BlendRgb(tw.to.Border, p),
		BorderAlpha: vmath.Lerp(tw.from.BorderAlpha, tw.to.BorderAlpha, p),
		LabelAlpha:  vmath.Lerp(tw.from.LabelAlpha, tw.to.LabelAlpha, p),
		IconAlpha:   vmath.Lerp(tw.from.IconAlpha, tw.to.IconAlpha, p),
	}
}

func transitionFor(reduced bool) time.Duration {
	if reduced {
		return 0
	}
	return constant.CursorTransition
}
