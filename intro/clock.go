package intro

import (
	"github.com/lixenwraith/ringdial/constant"
	"github.com/lixenwraith/ringdial/vmath"
)

// Clock is the shared reveal progress read by the dial every frame. Owned by the loop goroutine
type Clock struct {
	Time  float64
	Total float64
}

// NewClock creates a clock at zero
func NewClock() *Clock {
	return &Clock{Total: constant.IntroTotal}
}

// Progress returns Time/Total in [0, 1]
func (c *Clock) Progress() float64 {
	if c == nil || c.Total <= 0 {
		return 1
	}
	return vmath.Clamp01(c.Time / c.Total)
}

// Complete reports whether the clock reached its total
func (c *Clock) Complete() bool { return c == nil || c.Time >= c.Total }

// Finish jumps to the end
func (c *Clock) Finish() {
	if c != nil {
		c.Time = c.Total
	}
}
