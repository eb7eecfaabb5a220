package sector

import (
	"time"

	"github.com/lixenwraith/ringdial/vmath"
)

// Fade cross-fades the highlight between two sector centres (ring-frame degrees)
type Fade struct {
	from, to float64
	hasFrom  bool
	hasTo    bool
	elapsed  time.Duration
	duration time.Duration
	progress float64
}

// Start begins a linear fade from the current target to a new centre. A non-positive duration completes immediately
func (f *Fade) Start(to float64, d time.Duration) {
	f.from, f.hasFrom = f.to, f.hasTo
	f.to, f.hasTo = to, true
	f.elapsed = 0
	f.duration = d
	if d <= 0 {
		f.progress = 1
		return
	}
	f.progress = 0
}

// Advance moves the fade forward by dt
func (f *Fade) Advance(dt time.Duration) {
	if f.progress >= 1 || dt <= 0 {
		return
	}
	f.elapsed += dt
	f.progress = vmath.Clamp01(float64(f.elapsed) / float64(f.duration))
}

// Progress returns linear fade progress in [0, 1]
func (f *Fade) Progress() float64 { return f.progress }

// Done reports whether the fade has settled on its target
func (f *Fade) Done() bool { return f.progress >= 1 }

// Mix returns the highlight mix for a tick at angle
func (f *Fade) Mix(l Layout, angle float64) float64 {
	if !f.hasTo {
		return 0
	}
	cur := l.Weight(angle, f.to)
	if f.progress >= 1 {
		return cur
	}
	prev := 0.0
	if f.hasFrom {
		prev = l.Weight(angle, f.from)
	}
	return vmath.Lerp(prev, cur, f.progress)
}

// Snapshot freezes the fade for a pure per-tick evaluation
func (f *Fade) Snapshot() FadeState {
	return FadeState{From: f.from, To: f.to, HasFrom: f.hasFrom, HasTo: f.hasTo, Progress: f.progress}
}

// FadeState is an immutable copy of a Fade at one instant
type FadeState struct {
	From, To       float64
	HasFrom, HasTo bool
	Progress       float64
}

// Mix evaluates the frozen fade for a tick at angle
func (s FadeState) Mix(l Layout, angle float64) float64 {
	f := Fade{from: s.From, to: s.To, hasFrom: s.HasFrom, hasTo: s.HasTo, progress: s.Progress}
	return f.Mix(l, angle)
}
