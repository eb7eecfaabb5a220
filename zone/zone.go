// Package zone classifies pointer radial distance into the inner viewport and the
// switching band using separate enter and exit thresholds per boundary.
package zone

import (
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/geometry"
)

// Thresholds are the four hysteresis radii for one geometry
type Thresholds struct {
	InnerR      float64
	InnerEnter  float64
	InnerExit   float64
	SwitchEnter float64
	SwitchExit  float64
}

// ThresholdsFor derives hysteresis radii from geometry
func ThresholdsFor(g geometry.Geometry) Thresholds {
	r := g.ViewportR
	return Thresholds{
		InnerR:      g.InnerR,
		InnerEnter:  g.InnerR - r*constant.InnerEnterRatio,
		InnerExit:   g.InnerR + r*constant.InnerExitRatio,
		SwitchEnter: g.SwitchMaxR - r*constant.SwitchEnterRatio,
		SwitchExit:  g.SwitchMaxR + r*constant.SwitchExitRatio,
	}
}

// Classifier holds zone membership. Flags change only when the opposite threshold is crossed
type Classifier struct {
	InInner  bool
	InSwitch bool

	th Thresholds
}

// NewClassifier creates a classifier for the given geometry
func NewClassifier(g geometry.Geometry) *Classifier {
	return &Classifier{th: ThresholdsFor(g)}
}

// SetGeometry swaps thresholds after resize, keeping current membership
func (c *Classifier) SetGeometry(g geometry.Geometry) {
	c.th = ThresholdsFor(g)
}

// Thresholds returns the active hysteresis radii
func (c *Classifier) Thresholds() Thresholds { return c.th }

// Update applies one radial distance sample
func (c *Classifier) Update(dist float64) {
	if !c.InInner && dist <= c.th.InnerEnter {
		c.InInner = true
	} else if c.InInner && dist >= c.th.InnerExit {
		c.InInner = false
	}

	if !c.InSwitch && dist <= c.th.SwitchEnter && dist > c.th.InnerR {
		c.InSwitch = true
	} else if c.InSwitch && (dist >= c.th.SwitchExit || dist <= c.th.InnerR) {
		c.InSwitch = false
	}
}

// CanSwitch reports whether hover may change the active sector
func (c *Classifier) CanSwitch() bool { return c.InSwitch && !c.InInner }

// Reset clears both flags (pointer left the component)
func (c *Classifier) Reset() {
	c.InInner = false
	c.InSwitch = false
}
